package routes

import (
	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/controllers"
	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// leadRoutes - public submission, admin listing and export
func leadRoutes(api fiber.Router) {
	leadRoutes := api.Group("/leads")
	leadRoutes.Post("/", controllers.CreateLead)
	leadRoutes.Get("/", middleware.AuthJWT, controllers.GetAllLeads)
	leadRoutes.Get("/export", middleware.AuthJWT, controllers.ExportLeadsCSV)
}
