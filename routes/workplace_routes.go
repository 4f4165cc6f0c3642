package routes

import (
	"github.com/leonardoresende2010-coder/cism-repositorio/handlers"
	"github.com/leonardoresende2010-coder/cism-repositorio/middleware"
	"github.com/gofiber/fiber/v2"
)

func WorkplaceRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	workplaces := api.Group("/workplaces", middleware.Protected())
	workplaces.Post("", handlers.CreateWorkplace)
	workplaces.Get("", handlers.ListWorkplaces)
	workplaces.Put("/:workplaceId", handlers.UpdateWorkplace)
	workplaces.Delete("/:workplaceId", handlers.DeleteWorkplace)
}
