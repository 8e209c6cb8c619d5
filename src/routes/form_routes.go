package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/growupanand/convoform/src/controllers"
	"github.com/growupanand/convoform/src/middleware"
)

func formRoutes(router fiber.Router) {
	forms := router.Group("/forms")
	forms.Use(middleware.AuthJWT)
	forms.Post("/", controllers.CreateForm)
	forms.Get("/", controllers.GetForms)
	forms.Get("/:id", controllers.GetFormByID)
	forms.Put("/:id", controllers.UpdateForm)
	forms.Delete("/:id", controllers.DeleteForm)
	forms.Post("/:id/publish", controllers.PublishForm)
	forms.Post("/:id/unpublish", controllers.UnpublishForm)
	forms.Put("/:id/reorder", controllers.ReorderFormFields)
	forms.Post("/:id/fields", controllers.AddFormField)
	forms.Get("/:formId/conversations", controllers.GetConversations)

	// public respondent endpoint, rate limited per IP
	form := router.Group("/form")
	form.Post("/:formId/conversation",
		middleware.RateLimit(30, time.Minute),
		controllers.AnswerConversation)
}
