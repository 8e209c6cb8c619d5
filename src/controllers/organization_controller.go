package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/growupanand/convoform/src/services/organizations"
	"github.com/growupanand/convoform/src/utils"
)

// GetOrganization godoc
// @Summary      Get the caller's organization
// @Tags         organizations
// @Produce      json
// @Success      200  {object}  models.Organization
// @Failure      401  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /organizations/me [get]
func GetOrganization(c *fiber.Ctx) error {
	orgID, err := orgIDFromLocals(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	org, err := organizations.GetOrganizationByID(ctx, orgID)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(org)
}

// GetOrganizationUsage godoc
// @Summary      Usage counters against the plan quota
// @Description  Conversation count is organization-wide, the same number the submission guard checks
// @Tags         organizations
// @Produce      json
// @Success      200  {object}  models.OrganizationUsage
// @Failure      401  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /organizations/me/usage [get]
func GetOrganizationUsage(c *fiber.Ctx) error {
	orgID, err := orgIDFromLocals(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	usage, err := organizations.GetUsage(ctx, orgID)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(usage)
}
