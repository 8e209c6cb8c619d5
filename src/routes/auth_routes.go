package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/growupanand/convoform/src/controllers"
)

func authRoutes(router fiber.Router) {
	auth := router.Group("/auth")

	auth.Post("/register", controllers.Register)
	auth.Post("/login", controllers.Login)
}
