package routes

import (
	"github.com/leonardoresende2010-coder/cism-repositorio/handlers"
	"github.com/leonardoresende2010-coder/cism-repositorio/middleware"
	"github.com/gofiber/fiber/v2"
)

func ProgressRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	progress := api.Group("/progress", middleware.Protected())
	progress.Post("", handlers.SaveProgress)
	progress.Get("", handlers.ListProgress)
	progress.Get("/stats/:quizId", handlers.GetProgressStats)
	progress.Delete("/quiz/:quizId", handlers.ResetQuizProgress)
	progress.Delete("", handlers.ResetAllProgress)
}
