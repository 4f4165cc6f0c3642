package routes

import (
	"github.com/leonardoresende2010-coder/cism-repositorio/handlers"
	"github.com/leonardoresende2010-coder/cism-repositorio/middleware"
	"github.com/gofiber/fiber/v2"
)

func QuizRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	quizzes := api.Group("/quizzes", middleware.Protected())
	quizzes.Get("", handlers.ListQuizzes)
	quizzes.Get("/:quizId", handlers.GetQuiz)
	quizzes.Delete("/:quizId", handlers.DeleteQuiz)

	questions := api.Group("/questions", middleware.Protected())
	questions.Patch("/:questionId/explanation", handlers.UpdateQuestionExplanation)
	questions.Post("/:questionId/redetect", handlers.RedetectDivergence)

	ai := api.Group("/ai", middleware.Protected())
	ai.Post("/analyze-divergence", handlers.AnalyzeDivergence)
}
