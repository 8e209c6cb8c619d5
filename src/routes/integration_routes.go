package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/growupanand/convoform/src/controllers"
	"github.com/growupanand/convoform/src/middleware"
)

func integrationRoutes(router fiber.Router) {
	google := router.Group("/integrations/google")

	// Google redirects here without our JWT
	google.Get("/callback", controllers.GoogleSheetsCallback)

	google.Get("/auth", middleware.AuthJWT, controllers.GoogleSheetsAuth)
	google.Post("/export/:formId", middleware.AuthJWT, controllers.ExportConversationsToSheets)
}
