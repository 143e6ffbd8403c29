package controllers

import (
	"errors"

	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/models"
	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/services/courses"
	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// isValidationError reports whether the service rejected the payload rather
// than the store failing.
func isValidationError(err error) bool {
	var ve validator.ValidationErrors
	return errors.As(err, &ve)
}

// CreateCourse godoc
// @Summary      Create a new course
// @Description  Create a new course with its syllabus
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body models.Course true "Course object"
// @Success      201  {object}  models.CourseResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /courses [post]
func CreateCourse(c *fiber.Ctx) error {
	var request models.Course
	if err := c.BodyParser(&request); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	course, err := courses.CreateCourse(&request)
	if err != nil {
		if isValidationError(err) {
			return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(models.CourseResponse{Course: *course})
}

// GetAllCourses godoc
// @Summary      List courses
// @Description  List courses with combinable filters, search and skip/limit
// @Tags         courses
// @Produce      json
// @Param        search          query  string  false  "Free-text search"
// @Param        category        query  string  false  "students, professionals or corporates"
// @Param        courseCategory  query  string  false  "Subject label"
// @Param        level           query  string  false  "Course level"
// @Param        mode            query  string  false  "Delivery mode"
// @Param        featured        query  bool    false  "Featured only"
// @Param        trending        query  bool    false  "Trending only"
// @Param        skip            query  int     false  "Items to skip"
// @Param        limit           query  int     false  "Max items"
// @Success      200  {object}  models.CourseListResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /courses [get]
func GetAllCourses(c *fiber.Ctx) error {
	var filters models.CourseFilters
	if err := c.QueryParser(&filters); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query: "+err.Error())
	}
	coursesList, err := courses.GetAllCourses(filters)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(models.CourseListResponse{Courses: coursesList})
}

// GetCourseByID godoc
// @Summary      Get a course by ID
// @Description  Get a course by ID
// @Tags         courses
// @Produce      json
// @Param        id   path  string  true  "Course ID"
// @Success      200  {object}  models.CourseResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /courses/{id} [get]
func GetCourseByID(c *fiber.Ctx) error {
	idParam := c.Params("id")
	id, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID")
	}
	course, err := courses.GetCourseByID(id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.HandleError(c, fiber.StatusNotFound, "Course not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(models.CourseResponse{Course: *course})
}

// UpdateCourse godoc
// @Summary      Update a course
// @Description  Replace the full course document, including the syllabus
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id     path  string        true  "Course ID"
// @Param        body   body  models.Course true  "Course object"
// @Success      200  {object}  models.CourseResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /courses/{id} [put]
func UpdateCourse(c *fiber.Ctx) error {
	idParam := c.Params("id")
	id, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID")
	}
	var request models.Course
	if err := c.BodyParser(&request); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	updated, err := courses.UpdateCourse(id, request)
	if err != nil {
		if isValidationError(err) {
			return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
		}
		if err == mongo.ErrNoDocuments {
			return utils.HandleError(c, fiber.StatusNotFound, "Course not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(models.CourseResponse{Course: *updated})
}

// DeleteCourse godoc
// @Summary      Delete a course
// @Description  Delete a course by ID
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Course ID"
// @Success      200
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /courses/{id} [delete]
func DeleteCourse(c *fiber.Ctx) error {
	idParam := c.Params("id")
	id, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID")
	}
	err = courses.DeleteCourse(id)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.SendStatus(fiber.StatusOK)
}
