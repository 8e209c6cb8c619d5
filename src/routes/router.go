package routes

import (
	"github.com/gofiber/fiber/v2"
)

func InitRoutes(app *fiber.App) {
	api := app.Group("/api")

	authRoutes(api)
	formRoutes(api)
	formFieldRoutes(api)
	conversationRoutes(api)
	aiRoutes(api)
	organizationRoutes(api)
	workspaceRoutes(api)
	webhookRoutes(api)
	integrationRoutes(api)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
