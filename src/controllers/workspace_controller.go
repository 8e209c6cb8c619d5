package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/growupanand/convoform/src/models"
	"github.com/growupanand/convoform/src/services/workspaces"
	"github.com/growupanand/convoform/src/utils"
)

// CreateWorkspace godoc
// @Summary      Create a workspace
// @Tags         workspaces
// @Accept       json
// @Produce      json
// @Param        body body models.CreateWorkspaceRequest true "Workspace"
// @Success      201  {object}  models.Workspace
// @Failure      400  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /workspaces [post]
func CreateWorkspace(c *fiber.Ctx) error {
	orgID, err := orgIDFromLocals(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	var req models.CreateWorkspaceRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, utils.BadRequest("Invalid input: "+err.Error()))
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	workspace, err := workspaces.CreateWorkspace(ctx, orgID, &req)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(workspace)
}

// GetWorkspaces godoc
// @Summary      List the caller's workspaces
// @Tags         workspaces
// @Produce      json
// @Success      200  {array}  models.Workspace
// @Failure      401  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /workspaces [get]
func GetWorkspaces(c *fiber.Ctx) error {
	orgID, err := orgIDFromLocals(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	list, err := workspaces.GetWorkspaces(ctx, orgID)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(list)
}

// GetWorkspaceByID godoc
// @Summary      Get a workspace
// @Tags         workspaces
// @Produce      json
// @Param        id path string true "Workspace ID"
// @Success      200  {object}  models.Workspace
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /workspaces/{id} [get]
func GetWorkspaceByID(c *fiber.Ctx) error {
	orgID, err := orgIDFromLocals(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	workspaceID, err := paramObjectID(c, "id")
	if err != nil {
		return utils.HandleError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	workspace, err := workspaces.GetWorkspaceByID(ctx, workspaceID, orgID)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(workspace)
}

// RenameWorkspace godoc
// @Summary      Rename a workspace
// @Tags         workspaces
// @Accept       json
// @Produce      json
// @Param        id path string true "Workspace ID"
// @Param        body body models.RenameWorkspaceRequest true "New name"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /workspaces/{id} [put]
func RenameWorkspace(c *fiber.Ctx) error {
	orgID, err := orgIDFromLocals(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	workspaceID, err := paramObjectID(c, "id")
	if err != nil {
		return utils.HandleError(c, err)
	}

	var req models.RenameWorkspaceRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, utils.BadRequest("Invalid input: "+err.Error()))
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.HandleError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	if err := workspaces.RenameWorkspace(ctx, workspaceID, orgID, req.Name); err != nil {
		return utils.HandleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Workspace renamed successfully"})
}

// DeleteWorkspace godoc
// @Summary      Delete an empty workspace
// @Description  Fails while the workspace still holds forms
// @Tags         workspaces
// @Produce      json
// @Param        id path string true "Workspace ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /workspaces/{id} [delete]
func DeleteWorkspace(c *fiber.Ctx) error {
	orgID, err := orgIDFromLocals(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	workspaceID, err := paramObjectID(c, "id")
	if err != nil {
		return utils.HandleError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	if err := workspaces.DeleteWorkspace(ctx, workspaceID, orgID); err != nil {
		return utils.HandleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Workspace deleted successfully"})
}
