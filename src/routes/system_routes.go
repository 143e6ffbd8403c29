package routes

import (
	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func systemRoutes(api fiber.Router) {
	systemRoutes := api.Group("/system")
	systemRoutes.Get("/status", controllers.GetSystemStatus)
}
