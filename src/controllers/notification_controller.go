package controllers

import (
	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/models"
	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/services/notifications"
	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetAllNotifications godoc
// @Summary      List admin notifications
// @Description  List lead notifications, newest first
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query  int  false  "Max items"
// @Success      200  {object}  models.NotificationListResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /notifications [get]
func GetAllNotifications(c *fiber.Ctx) error {
	var params models.ListParams
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query: "+err.Error())
	}
	items, err := notifications.GetAllNotifications(params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(models.NotificationListResponse{Notifications: items})
}

// MarkNotificationRead godoc
// @Summary      Mark a notification read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Notification ID"
// @Success      200
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /notifications/{id}/read [patch]
func MarkNotificationRead(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID")
	}
	if err := notifications.MarkRead(id); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.SendStatus(fiber.StatusOK)
}
