package handlers

import (
	"encoding/json"
	"log"

	"github.com/leonardoresende2010-coder/cism-repositorio/database"
	"github.com/leonardoresende2010-coder/cism-repositorio/models"
	"github.com/leonardoresende2010-coder/cism-repositorio/parser"
	"github.com/leonardoresende2010-coder/cism-repositorio/services"
	"github.com/gofiber/fiber/v2"
)

type AnalyzeDivergenceRequest struct {
	QuestionID string `json:"question_id" validate:"required,uuid4"`
}

// AnalyzeDivergence sends a question to the AI auditor for a second opinion
// on whether its explanation contradicts the answer key. The stored heuristic
// flags are left untouched; the verdict is saved on the caller's progress
// record and returned.
func AnalyzeDivergence(c *fiber.Ctx) error {
	var req AnalyzeDivergenceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	question, fiberErr := loadOwnedQuestionByID(c, req.QuestionID)
	if fiberErr != nil {
		return fiberErr
	}

	var options []parser.Option
	if err := json.Unmarshal([]byte(question.Options), &options); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to decode question options"})
	}

	verdict, err := services.AnalyzeDivergence(c.Context(), services.DivergenceAuditRequest{
		QuestionText:  question.Text,
		Options:       options,
		CorrectAnswer: question.CorrectAnswer,
		Explanation:   question.Explanation,
	})
	if err != nil {
		log.Printf("🔥 AI divergence audit failed for question %s: %v", question.ID, err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "AI analysis is unavailable right now"})
	}

	analysisJSON, err := json.Marshal(verdict)
	if err == nil {
		analysis := string(analysisJSON)
		userID := currentUserID(c)
		var progress models.UserProgress
		result := database.DB.Where("user_id = ? AND question_id = ?", userID, question.ID).First(&progress)
		if result.Error == nil {
			database.DB.Model(&progress).Update("ai_analysis", analysis)
		} else {
			progress = models.UserProgress{UserID: userID, QuestionID: question.ID, AIAnalysis: &analysis}
			database.DB.Create(&progress)
		}
	}

	return c.JSON(verdict)
}
