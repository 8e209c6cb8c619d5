package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/growupanand/convoform/src/models"
	"github.com/growupanand/convoform/src/services/forms"
	"github.com/growupanand/convoform/src/utils"
)

// AddFormField godoc
// @Summary      Add a field to a form
// @Description  The new field is appended to the end of the asking order
// @Tags         formFields
// @Accept       json
// @Produce      json
// @Param        id path string true "Form ID"
// @Param        body body models.CreateFormFieldRequest true "Field"
// @Success      201  {object}  models.FormField
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /forms/{id}/fields [post]
func AddFormField(c *fiber.Ctx) error {
	orgID, err := orgIDFromLocals(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	formID, err := paramObjectID(c, "id")
	if err != nil {
		return utils.HandleError(c, err)
	}

	var req models.CreateFormFieldRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, utils.BadRequest("Invalid input: "+err.Error()))
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	field, err := forms.AddField(ctx, formID, orgID, &req)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(field)
}

// UpdateFormField godoc
// @Summary      Update a form field
// @Description  The input type is fixed at creation; only name, description and configuration change
// @Tags         formFields
// @Accept       json
// @Produce      json
// @Param        fieldId path string true "Field ID"
// @Param        body body models.UpdateFormFieldRequest true "Fields to update"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /formFields/{fieldId} [put]
func UpdateFormField(c *fiber.Ctx) error {
	orgID, err := orgIDFromLocals(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	fieldID, err := paramObjectID(c, "fieldId")
	if err != nil {
		return utils.HandleError(c, err)
	}

	var req models.UpdateFormFieldRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, utils.BadRequest("Invalid input: "+err.Error()))
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	if err := forms.UpdateField(ctx, fieldID, orgID, &req); err != nil {
		return utils.HandleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Field updated successfully"})
}

// DeleteFormField godoc
// @Summary      Delete a form field
// @Description  The field is also removed from the form's asking order
// @Tags         formFields
// @Produce      json
// @Param        fieldId path string true "Field ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /formFields/{fieldId} [delete]
func DeleteFormField(c *fiber.Ctx) error {
	orgID, err := orgIDFromLocals(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	fieldID, err := paramObjectID(c, "fieldId")
	if err != nil {
		return utils.HandleError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	if err := forms.DeleteField(ctx, fieldID, orgID); err != nil {
		return utils.HandleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Field deleted successfully"})
}
