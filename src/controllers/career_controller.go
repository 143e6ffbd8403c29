package controllers

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/models"
	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/services/careers"
	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const resumeDir = "./uploads/resumes"

var allowedResumeExts = map[string]bool{".pdf": true, ".doc": true, ".docx": true}

// CreateApplicant godoc
// @Summary      Submit a job application
// @Description  Multipart form with applicant fields and a resume file
// @Tags         careers
// @Accept       multipart/form-data
// @Produce      json
// @Param        name       formData  string  true   "Applicant name"
// @Param        email      formData  string  true   "Email"
// @Param        phone      formData  string  false  "Phone"
// @Param        position   formData  string  true   "Position applied for"
// @Param        coverLetter formData string  false  "Cover letter"
// @Param        portfolioUrl formData string false  "Portfolio URL"
// @Param        resume     formData  file    true   "Resume file (pdf/doc/docx)"
// @Success      201  {object}  models.ApplicantResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /careers [post]
func CreateApplicant(c *fiber.Ctx) error {
	applicant := models.Applicant{
		Name:         c.FormValue("name"),
		Email:        c.FormValue("email"),
		Phone:        c.FormValue("phone"),
		Position:     c.FormValue("position"),
		CoverLetter:  c.FormValue("coverLetter"),
		PortfolioURL: c.FormValue("portfolioUrl"),
	}

	file, err := c.FormFile("resume")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Resume file is required")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedResumeExts[ext] {
		return utils.HandleError(c, fiber.StatusBadRequest, "Resume must be a pdf, doc or docx file")
	}

	if err := os.MkdirAll(resumeDir, 0o755); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	storedName := uuid.New().String() + ext
	if err := c.SaveFile(file, filepath.Join(resumeDir, storedName)); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	applicant.Resume = models.ResumeFile{
		FileName:     storedName,
		OriginalName: file.Filename,
	}

	created, err := careers.CreateApplicant(&applicant)
	if err != nil {
		// Drop the stored file so a rejected submission leaves nothing behind.
		if rmErr := os.Remove(filepath.Join(resumeDir, storedName)); rmErr != nil {
			log.Println("⚠️ Failed to remove orphan resume:", rmErr)
		}
		if isValidationError(err) {
			return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(models.ApplicantResponse{Applicant: *created})
}

// GetAllApplicants godoc
// @Summary      List job applicants
// @Description  List job applications, newest first
// @Tags         careers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.ApplicantListResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /careers [get]
func GetAllApplicants(c *fiber.Ctx) error {
	applicants, err := careers.GetAllApplicants()
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(models.ApplicantListResponse{Applicants: applicants})
}

// UpdateApplicantStatus godoc
// @Summary      Update applicant status
// @Description  Set one of: pending, reviewing, shortlisted, rejected, hired
// @Tags         careers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "Applicant ID"
// @Param        body  body  object{status=string}  true  "New status"
// @Success      200  {object}  models.ApplicantResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /careers/{id}/status [patch]
func UpdateApplicantStatus(c *fiber.Ctx) error {
	idParam := c.Params("id")
	id, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID")
	}

	var request struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&request); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	applicant, err := careers.UpdateApplicantStatus(id, request.Status)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.HandleError(c, fiber.StatusNotFound, "Applicant not found")
		}
		if strings.HasPrefix(err.Error(), "invalid status") {
			return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(models.ApplicantResponse{Applicant: *applicant})
}
