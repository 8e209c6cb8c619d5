package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/growupanand/convoform/src/controllers"
	"github.com/growupanand/convoform/src/middleware"
)

func formFieldRoutes(router fiber.Router) {
	fields := router.Group("/formFields")
	fields.Use(middleware.AuthJWT)
	fields.Put("/:fieldId", controllers.UpdateFormField)
	fields.Delete("/:fieldId", controllers.DeleteFormField)
}
