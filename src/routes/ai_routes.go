package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/growupanand/convoform/src/controllers"
	"github.com/growupanand/convoform/src/middleware"
)

func aiRoutes(router fiber.Router) {
	ai := router.Group("/ai")
	ai.Use(middleware.AuthJWT)
	ai.Post("/generateForm", controllers.GenerateForm)
}
