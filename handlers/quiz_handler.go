package handlers

import (
	"encoding/json"
	"log"

	"github.com/leonardoresende2010-coder/cism-repositorio/database"
	"github.com/leonardoresende2010-coder/cism-repositorio/models"
	"github.com/leonardoresende2010-coder/cism-repositorio/parser"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func ListQuizzes(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var quizzes []models.Quiz
	query := database.DB.Where("user_id = ?", userID).Order("created_at DESC")
	if v := c.Query("workplace_id"); v != "" {
		workplaceID, err := uuid.Parse(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid workplace ID"})
		}
		query = query.Where("workplace_id = ?", workplaceID)
	}
	if err := query.Find(&quizzes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch quizzes"})
	}

	return c.JSON(fiber.Map{"quizzes": quizzes})
}

func GetQuiz(c *fiber.Ctx) error {
	quiz, fiberErr := loadOwnedQuiz(c)
	if fiberErr != nil {
		return fiberErr
	}

	if err := database.DB.
		Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("number ASC") }).
		Preload("Blocks", func(db *gorm.DB) *gorm.DB { return db.Order("start_index ASC") }).
		First(quiz, "id = ?", quiz.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch quiz"})
	}

	return c.JSON(quiz)
}

func DeleteQuiz(c *fiber.Ctx) error {
	quiz, fiberErr := loadOwnedQuiz(c)
	if fiberErr != nil {
		return fiberErr
	}

	if err := database.DB.Select("Questions", "Blocks").Delete(quiz).Error; err != nil {
		log.Printf("🔥 Error deleting quiz %s: %v", quiz.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete quiz"})
	}

	return c.JSON(fiber.Map{"message": "Quiz deleted"})
}

type UpdateExplanationRequest struct {
	Explanation string `json:"explanation" validate:"required"`
}

// UpdateQuestionExplanation replaces a question's explanation and immediately
// re-runs the heuristic divergence check against the new text.
func UpdateQuestionExplanation(c *fiber.Ctx) error {
	question, fiberErr := loadOwnedQuestion(c)
	if fiberErr != nil {
		return fiberErr
	}

	var req UpdateExplanationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	question.Explanation = req.Explanation
	if err := applyDivergence(question); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to evaluate explanation"})
	}

	if err := database.DB.Save(question).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update question"})
	}

	return c.JSON(question)
}

// RedetectDivergence re-runs the heuristic divergence check on a question's
// stored explanation and persists the outcome.
func RedetectDivergence(c *fiber.Ctx) error {
	question, fiberErr := loadOwnedQuestion(c)
	if fiberErr != nil {
		return fiberErr
	}

	if err := applyDivergence(question); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to evaluate explanation"})
	}

	if err := database.DB.Model(question).Select("is_divergent", "explanation_answer").Updates(question).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update question"})
	}

	return c.JSON(fiber.Map{
		"question_id":        question.ID,
		"is_divergent":       question.IsDivergent,
		"explanation_answer": question.ExplanationAnswer,
	})
}

func applyDivergence(question *models.Question) error {
	var options []parser.Option
	if err := json.Unmarshal([]byte(question.Options), &options); err != nil {
		return err
	}

	isDivergent, explanationAnswer := parser.DetectDivergence(question.CorrectAnswer, question.Explanation, options)
	question.IsDivergent = isDivergent
	if explanationAnswer != "" {
		question.ExplanationAnswer = &explanationAnswer
	} else {
		question.ExplanationAnswer = nil
	}
	return nil
}

func loadOwnedQuiz(c *fiber.Ctx) (*models.Quiz, error) {
	quizID, err := uuid.Parse(c.Params("quizId"))
	if err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid quiz ID"})
	}

	var quiz models.Quiz
	if err := database.DB.First(&quiz, "id = ?", quizID).Error; err != nil {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quiz not found"})
	}

	if quiz.UserID != currentUserID(c) && !isAdmin(c) {
		return nil, c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not own this quiz"})
	}
	return &quiz, nil
}

func loadOwnedQuestion(c *fiber.Ctx) (*models.Question, error) {
	return loadOwnedQuestionByID(c, c.Params("questionId"))
}

func loadOwnedQuestionByID(c *fiber.Ctx, raw string) (*models.Question, error) {
	questionID, err := uuid.Parse(raw)
	if err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid question ID"})
	}

	var question models.Question
	if err := database.DB.First(&question, "id = ?", questionID).Error; err != nil {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Question not found"})
	}

	var quiz models.Quiz
	if err := database.DB.First(&quiz, "id = ?", question.QuizID).Error; err != nil {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quiz not found"})
	}
	if quiz.UserID != currentUserID(c) && !isAdmin(c) {
		return nil, c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not own this question"})
	}
	return &question, nil
}

func isAdmin(c *fiber.Ctx) bool {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	role, _ := claims["role"].(string)
	return role == "admin"
}
