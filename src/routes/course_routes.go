package routes

import (
	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/controllers"
	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// courseRoutes - public catalog reads, admin-gated writes
func courseRoutes(api fiber.Router) {
	courseRoutes := api.Group("/courses")
	courseRoutes.Get("/", controllers.GetAllCourses)
	courseRoutes.Get("/:id", controllers.GetCourseByID)
	courseRoutes.Post("/", middleware.AuthJWT, controllers.CreateCourse)
	courseRoutes.Put("/:id", middleware.AuthJWT, controllers.UpdateCourse)
	courseRoutes.Delete("/:id", middleware.AuthJWT, controllers.DeleteCourse)
}
