package routes

import (
	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/controllers"
	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func notificationRoutes(api fiber.Router) {
	notificationRoutes := api.Group("/notifications", middleware.AuthJWT)
	notificationRoutes.Get("/", controllers.GetAllNotifications)
	notificationRoutes.Patch("/:id/read", controllers.MarkNotificationRead)
}
