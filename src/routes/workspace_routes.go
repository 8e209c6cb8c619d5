package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/growupanand/convoform/src/controllers"
	"github.com/growupanand/convoform/src/middleware"
)

func workspaceRoutes(router fiber.Router) {
	workspaces := router.Group("/workspaces")
	workspaces.Use(middleware.AuthJWT)
	workspaces.Post("/", controllers.CreateWorkspace)
	workspaces.Get("/", controllers.GetWorkspaces)
	workspaces.Get("/:id", controllers.GetWorkspaceByID)
	workspaces.Put("/:id", controllers.RenameWorkspace)
	workspaces.Delete("/:id", controllers.DeleteWorkspace)
}
