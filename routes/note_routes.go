package routes

import (
	"github.com/leonardoresende2010-coder/cism-repositorio/handlers"
	"github.com/leonardoresende2010-coder/cism-repositorio/middleware"
	"github.com/gofiber/fiber/v2"
)

func NoteRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	notes := api.Group("/notes", middleware.Protected())
	notes.Post("", handlers.CreateNote)
	notes.Get("/question/:questionId", handlers.ListNotesForQuestion)
	notes.Delete("/:noteId", handlers.DeleteNote)

	groups := api.Group("/study-groups", middleware.Protected())
	groups.Post("", handlers.CreateStudyGroup)
	groups.Get("", handlers.ListMyStudyGroups)
	groups.Put("/:groupId", handlers.UpdateStudyGroup)
	groups.Delete("/:groupId", handlers.DeleteStudyGroup)
}
