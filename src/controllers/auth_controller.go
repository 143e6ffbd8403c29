package controllers

import (
	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/models"
	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/services/admins"
	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/utils"

	"github.com/gofiber/fiber/v2"
)

// Login godoc
// @Summary      Admin login
// @Description  Exchange admin credentials for a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body models.LoginRequest true "Credentials"
// @Success      200  {object}  models.LoginResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/login [post]
func Login(c *fiber.Ctx) error {
	var request models.LoginRequest
	if err := c.BodyParser(&request); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	response, err := admins.Login(request)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, err.Error())
	}
	return c.JSON(response)
}
