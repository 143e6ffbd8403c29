package controllers

import (
	"time"

	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/models"
	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/services/leads"
	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateLead godoc
// @Summary      Submit a lead form
// @Description  Capture an interest form submission from the public site
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        body body models.Lead true "Lead form fields"
// @Success      201  {object}  models.LeadResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /leads [post]
func CreateLead(c *fiber.Ctx) error {
	var request models.Lead
	if err := c.BodyParser(&request); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	lead, err := leads.CreateLead(&request)
	if err != nil {
		if isValidationError(err) {
			return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(models.LeadResponse{Lead: *lead})
}

// GetAllLeads godoc
// @Summary      List leads
// @Description  List captured leads, newest first
// @Tags         leads
// @Produce      json
// @Security     BearerAuth
// @Param        skip   query  int  false  "Items to skip"
// @Param        limit  query  int  false  "Max items"
// @Success      200  {object}  models.LeadListResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /leads [get]
func GetAllLeads(c *fiber.Ctx) error {
	var params models.ListParams
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query: "+err.Error())
	}
	leadsList, err := leads.GetAllLeads(params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(models.LeadListResponse{Leads: leadsList})
}

// ExportLeadsCSV godoc
// @Summary      Export leads as CSV
// @Description  Download every captured lead as a CSV file
// @Tags         leads
// @Produce      text/csv
// @Security     BearerAuth
// @Success      200  {string}  string  "CSV file"
// @Failure      500  {object}  models.ErrorResponse
// @Router       /leads/export [get]
func ExportLeadsCSV(c *fiber.Ctx) error {
	leadsList, err := leads.GetAllLeads(models.ListParams{})
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	data, err := leads.WriteLeadsCSV(leadsList)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	filename := "leads_" + time.Now().Format("20060102") + ".csv"
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
