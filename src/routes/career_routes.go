package routes

import (
	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/controllers"
	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// careerRoutes - public application, admin listing and status updates
func careerRoutes(api fiber.Router) {
	careerRoutes := api.Group("/careers")
	careerRoutes.Post("/", controllers.CreateApplicant)
	careerRoutes.Get("/", middleware.AuthJWT, controllers.GetAllApplicants)
	careerRoutes.Patch("/:id/status", middleware.AuthJWT, controllers.UpdateApplicantStatus)
}
