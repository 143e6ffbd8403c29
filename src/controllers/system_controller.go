package controllers

import (
	"os"

	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/database"
	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// GetSystemStatus godoc
// @Summary      System status
// @Description  Health check with maintenance flag and database state
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /system/status [get]
func GetSystemStatus(c *fiber.Ctx) error {
	_, err := os.Stat(middleware.SentinelPath())
	maintenance := err == nil

	dbState := "connected"
	if !database.IsConnected() {
		dbState = "disconnected"
	}

	return c.JSON(fiber.Map{
		"status":      "ok",
		"maintenance": maintenance,
		"database":    dbState,
	})
}
