package routes

import (
	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func authRoutes(api fiber.Router) {
	authRoutes := api.Group("/auth")
	authRoutes.Post("/login", controllers.Login)
}
