package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/growupanand/convoform/src/controllers"
)

// authenticated by shared secret, not JWT
func webhookRoutes(router fiber.Router) {
	webhook := router.Group("/webhook")
	webhook.Post("/conversation", controllers.ConversationWebhook)
}
