package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/growupanand/convoform/src/controllers"
	"github.com/growupanand/convoform/src/middleware"
)

func organizationRoutes(router fiber.Router) {
	organizations := router.Group("/organizations")
	organizations.Use(middleware.AuthJWT)
	organizations.Get("/me", controllers.GetOrganization)
	organizations.Get("/me/usage", controllers.GetOrganizationUsage)
}
