package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/growupanand/convoform/src/controllers"
	"github.com/growupanand/convoform/src/middleware"
)

func conversationRoutes(router fiber.Router) {
	conversations := router.Group("/conversations")
	conversations.Use(middleware.AuthJWT)
	conversations.Get("/stats", controllers.GetConversationStats)
	conversations.Get("/:id", controllers.GetConversationByID)
}
