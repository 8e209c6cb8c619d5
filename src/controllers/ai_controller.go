package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/growupanand/convoform/src/models"
	"github.com/growupanand/convoform/src/services/ai"
	"github.com/growupanand/convoform/src/services/forms"
	"github.com/growupanand/convoform/src/utils"
)

// GenerateFormRequest is the body for the AI form-generation endpoint.
type GenerateFormRequest struct {
	WorkspaceID  string `json:"workspaceId" validate:"required"`
	FormOverview string `json:"formOverview" validate:"required,min=10,max=2000"`
}

// GenerateForm godoc
// @Summary      Generate a form from a plain-text overview
// @Description  A single model call produces the form schema; on success the form is saved unpublished in the workspace
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        body body GenerateFormRequest true "Overview"
// @Success      201  {object}  models.FormWithFields
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /ai/generateForm [post]
func GenerateForm(c *fiber.Ctx) error {
	orgID, err := orgIDFromLocals(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	var req GenerateFormRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, utils.BadRequest("Invalid input: "+err.Error()))
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, err)
	}

	workspaceID, err := primitive.ObjectIDFromHex(req.WorkspaceID)
	if err != nil {
		return utils.HandleError(c, utils.BadRequest("invalid workspaceId"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), 90*time.Second)
	defer cancel()

	generated, err := getAIClient().GenerateForm(ctx, req.FormOverview)
	if err != nil {
		if errors.Is(err, ai.ErrInvalidFormOverview) {
			return utils.HandleError(c, utils.BadRequest("Invalid form overview"))
		}
		return utils.HandleError(c, utils.Internal(err))
	}

	createReq := models.CreateFormRequest{
		WorkspaceID:   req.WorkspaceID,
		Name:          generated.Name,
		Overview:      req.FormOverview,
		WelcomeScreen: generated.WelcomeScreen,
	}
	for _, field := range generated.Fields {
		createReq.Fields = append(createReq.Fields, models.CreateFormFieldRequest{
			FieldName:          field.FieldName,
			FieldDescription:   field.FieldDescription,
			InputType:          field.InputType,
			FieldConfiguration: field.FieldConfiguration,
		})
	}

	form, err := forms.CreateForm(ctx, orgID, workspaceID, &createReq)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(form)
}
