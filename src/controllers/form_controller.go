package controllers

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/growupanand/convoform/src/models"
	"github.com/growupanand/convoform/src/services/forms"
	"github.com/growupanand/convoform/src/utils"
)

// CreateForm godoc
// @Summary      Create a new form
// @Description  Creates a form with its fields inside a workspace
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        body body models.CreateFormRequest true "Form and fields"
// @Success      201  {object}  models.FormWithFields
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /forms [post]
func CreateForm(c *fiber.Ctx) error {
	orgID, err := orgIDFromLocals(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	var req models.CreateFormRequest
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

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	form, err := forms.CreateForm(ctx, orgID, workspaceID, &req)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(form)
}

// GetForms godoc
// @Summary      List forms in a workspace
// @Tags         forms
// @Produce      json
// @Param        workspaceId query string true "Workspace ID"
// @Param        page  query int false "Page number" default(1)
// @Param        limit query int false "Items per page" default(10)
// @Success      200  {object}  models.PaginatedResponse
// @Failure      400  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /forms [get]
func GetForms(c *fiber.Ctx) error {
	orgID, err := orgIDFromLocals(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	workspaceID, err := primitive.ObjectIDFromHex(c.Query("workspaceId"))
	if err != nil {
		return utils.HandleError(c, utils.BadRequest("invalid workspaceId"))
	}

	params := models.DefaultPagination()
	params.Page, _ = strconv.Atoi(c.Query("page", strconv.Itoa(params.Page)))
	params.Limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(params.Limit)))
	params.Search = c.Query("search", params.Search)
	params.SortBy = c.Query("sortBy", params.SortBy)
	params.Order = c.Query("order", params.Order)
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 || params.Limit > 100 {
		params.Limit = 10
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	items, total, err := forms.GetForms(ctx, orgID, workspaceID, params)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(models.NewPaginatedResponse(items, total, params))
}

// GetFormByID godoc
// @Summary      Get a form with its fields in asking order
// @Tags         forms
// @Produce      json
// @Param        id path string true "Form ID"
// @Success      200  {object}  models.FormWithFields
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /forms/{id} [get]
func GetFormByID(c *fiber.Ctx) error {
	orgID, err := orgIDFromLocals(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	formID, err := paramObjectID(c, "id")
	if err != nil {
		return utils.HandleError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	form, err := forms.GetFormByID(ctx, formID, orgID)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(form)
}

// UpdateForm godoc
// @Summary      Update a form's name, overview or welcome screen
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        id path string true "Form ID"
// @Param        body body models.UpdateFormRequest true "Fields to update"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /forms/{id} [put]
func UpdateForm(c *fiber.Ctx) error {
	orgID, err := orgIDFromLocals(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	formID, err := paramObjectID(c, "id")
	if err != nil {
		return utils.HandleError(c, err)
	}

	var req models.UpdateFormRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, utils.BadRequest("Invalid input: "+err.Error()))
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	if err := forms.UpdateForm(ctx, formID, orgID, &req); err != nil {
		return utils.HandleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Form updated successfully"})
}

// PublishForm godoc
// @Summary      Publish a form so respondents can open it
// @Tags         forms
// @Produce      json
// @Param        id path string true "Form ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /forms/{id}/publish [post]
func PublishForm(c *fiber.Ctx) error {
	return setFormPublished(c, true)
}

// UnpublishForm godoc
// @Summary      Unpublish a form
// @Tags         forms
// @Produce      json
// @Param        id path string true "Form ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /forms/{id}/unpublish [post]
func UnpublishForm(c *fiber.Ctx) error {
	return setFormPublished(c, false)
}

func setFormPublished(c *fiber.Ctx, published bool) error {
	orgID, err := orgIDFromLocals(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	formID, err := paramObjectID(c, "id")
	if err != nil {
		return utils.HandleError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	if err := forms.SetPublished(ctx, formID, orgID, published); err != nil {
		return utils.HandleError(c, err)
	}

	message := "Form unpublished"
	if published {
		message = "Form published"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": message})
}

// DeleteForm godoc
// @Summary      Delete a form and its fields
// @Description  Conversations already collected are kept
// @Tags         forms
// @Produce      json
// @Param        id path string true "Form ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /forms/{id} [delete]
func DeleteForm(c *fiber.Ctx) error {
	orgID, err := orgIDFromLocals(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	formID, err := paramObjectID(c, "id")
	if err != nil {
		return utils.HandleError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	if err := forms.DeleteForm(ctx, formID, orgID); err != nil {
		return utils.HandleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Form deleted successfully"})
}

// ReorderFormFields godoc
// @Summary      Reorder the asking order of a form's fields
// @Description  Unknown or duplicate ids are dropped and missing fields are appended in creation order
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        id path string true "Form ID"
// @Param        body body models.ReorderFieldsRequest true "New order"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /forms/{id}/reorder [put]
func ReorderFormFields(c *fiber.Ctx) error {
	orgID, err := orgIDFromLocals(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	formID, err := paramObjectID(c, "id")
	if err != nil {
		return utils.HandleError(c, err)
	}

	var req models.ReorderFieldsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, utils.BadRequest("Invalid input: "+err.Error()))
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, err)
	}

	orderIDs := make([]primitive.ObjectID, 0, len(req.FormFieldsOrders))
	for _, raw := range req.FormFieldsOrders {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return utils.HandleError(c, utils.BadRequest("invalid field id: "+raw))
		}
		orderIDs = append(orderIDs, id)
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	saved, err := forms.ReorderFields(ctx, formID, orgID, orderIDs)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"formFieldsOrders": saved})
}
