package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/growupanand/convoform/src/models"
	"github.com/growupanand/convoform/src/services/conversations"
	"github.com/growupanand/convoform/src/services/forms"
	"github.com/growupanand/convoform/src/services/sheets"
	"github.com/growupanand/convoform/src/utils"
)

// GoogleSheetsAuth godoc
// @Summary      Start the Google Sheets consent flow
// @Tags         integrations
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /integrations/google/auth [get]
func GoogleSheetsAuth(c *fiber.Ctx) error {
	orgID, err := orgIDFromLocals(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"url": sheets.AuthURL(orgID.Hex()),
	})
}

// GoogleSheetsCallback godoc
// @Summary      OAuth callback storing the Google token
// @Tags         integrations
// @Produce      json
// @Param        code  query string true "Authorization code"
// @Param        state query string true "Organization id"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  models.ErrorResponse
// @Router       /integrations/google/callback [get]
func GoogleSheetsCallback(c *fiber.Ctx) error {
	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		return utils.HandleError(c, utils.BadRequest("missing code or state"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), 30*time.Second)
	defer cancel()

	if err := sheets.HandleCallback(ctx, state, code); err != nil {
		return utils.HandleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Google Sheets connected"})
}

// ExportConversationsToSheets godoc
// @Summary      Export a form's conversations to a new Google Sheet
// @Tags         integrations
// @Produce      json
// @Param        formId path string true "Form ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /integrations/google/export/{formId} [post]
func ExportConversationsToSheets(c *fiber.Ctx) error {
	orgID, err := orgIDFromLocals(c)
	if err != nil {
		return utils.HandleError(c, err)
	}
	formID, err := paramObjectID(c, "formId")
	if err != nil {
		return utils.HandleError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), 60*time.Second)
	defer cancel()

	form, err := forms.GetFormByID(ctx, formID, orgID)
	if err != nil {
		return utils.HandleError(c, err)
	}

	// export caps at one page of 1000; larger forms need a paged export
	params := models.DefaultPagination()
	params.Limit = 1000
	params.Order = "asc"
	items, _, err := conversations.GetConversations(ctx, formID, orgID, params)
	if err != nil {
		return utils.HandleError(c, err)
	}

	spreadsheetID, err := sheets.ExportConversations(ctx, orgID.Hex(), form, items)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"spreadsheetId": spreadsheetID})
}
