package handlers

import (
	"encoding/json"
	"log"
	"math"

	"github.com/leonardoresende2010-coder/cism-repositorio/database"
	"github.com/leonardoresende2010-coder/cism-repositorio/models"
	"github.com/leonardoresende2010-coder/cism-repositorio/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SaveProgressRequest struct {
	QuestionID      string  `json:"question_id" validate:"required,uuid4"`
	SelectedAnswer  *string `json:"selected_answer,omitempty" validate:"omitempty,len=1"`
	DisagreeWithKey *bool   `json:"disagree_with_key,omitempty"`
	DisagreeWithAI  *bool   `json:"disagree_with_ai,omitempty"`
}

// SaveProgress upserts the caller's answer to one question. Correctness is
// computed server-side from the stored answer key. Completing the last
// unanswered question of a block triggers the reward and certificate checks.
func SaveProgress(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req SaveProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	questionID, _ := uuid.Parse(req.QuestionID)
	var question models.Question
	if err := database.DB.First(&question, "id = ?", questionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Question not found"})
	}

	var progress models.UserProgress
	result := database.DB.Where("user_id = ? AND question_id = ?", userID, questionID).First(&progress)
	if result.Error != nil {
		progress = models.UserProgress{UserID: userID, QuestionID: questionID}
	}

	answeredBefore := progress.SelectedAnswer != nil

	if req.SelectedAnswer != nil {
		progress.SelectedAnswer = req.SelectedAnswer
		isCorrect := *req.SelectedAnswer == question.CorrectAnswer
		progress.IsCorrect = &isCorrect
	}
	if req.DisagreeWithKey != nil {
		progress.IsFlaggedDisagreeKey = *req.DisagreeWithKey
	}
	if req.DisagreeWithAI != nil {
		progress.IsFlaggedDisagreeAI = *req.DisagreeWithAI
	}

	if err := database.DB.Save(&progress).Error; err != nil {
		log.Printf("🔥 Error saving progress for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save progress"})
	}

	if req.SelectedAnswer != nil && !answeredBefore {
		go checkBlockCompletion(userID, &question)
	}

	return c.JSON(progress)
}

// checkBlockCompletion fires rewards and a certificate once every question of
// the block containing the just-answered question has an answer.
func checkBlockCompletion(userID uuid.UUID, question *models.Question) {
	// Blocks ordered by start index line up with the block index stamped on
	// each question.
	var block models.QuestionBlock
	err := database.DB.
		Where("quiz_id = ?", question.QuizID).
		Order("start_index ASC").
		Offset(question.BlockIndex).
		First(&block).Error
	if err != nil {
		return
	}

	var questionIDs []string
	if err := json.Unmarshal([]byte(block.QuestionIDs), &questionIDs); err != nil {
		log.Printf("🔥 Error decoding block %s question IDs: %v", block.ID, err)
		return
	}

	var entries []models.UserProgress
	err = database.DB.
		Where("user_id = ? AND question_id IN ? AND selected_answer IS NOT NULL", userID, questionIDs).
		Find(&entries).Error
	if err != nil || len(entries) < len(questionIDs) {
		return
	}

	correct := 0
	for _, entry := range entries {
		if entry.IsCorrect != nil && *entry.IsCorrect {
			correct++
		}
	}

	log.Printf("✅ User %s completed block %s: %d/%d correct", userID, block.ID, correct, len(questionIDs))
	services.AwardRewardsForBlockCompletion(userID, correct)

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return
	}
	var quiz models.Quiz
	if err := database.DB.First(&quiz, "id = ?", question.QuizID).Error; err != nil {
		return
	}

	scorePercent := math.Round(float64(correct) / float64(len(questionIDs)) * 100)
	services.CheckAndGenerateCertificate(user, quiz, block, scorePercent)
}

// ListProgress returns the caller's progress, optionally scoped to one quiz.
func ListProgress(c *fiber.Ctx) error {
	userID := currentUserID(c)

	query := database.DB.Where("user_id = ?", userID)
	if v := c.Query("quiz_id"); v != "" {
		quizID, err := uuid.Parse(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid quiz ID"})
		}
		query = query.
			Joins("JOIN questions ON questions.id = user_progresses.question_id").
			Where("questions.quiz_id = ?", quizID)
	}

	var entries []models.UserProgress
	if err := query.Find(&entries).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch progress"})
	}

	return c.JSON(fiber.Map{"progress": entries})
}

// ResetQuizProgress wipes the caller's answers for one quiz.
func ResetQuizProgress(c *fiber.Ctx) error {
	userID := currentUserID(c)

	quizID, err := uuid.Parse(c.Params("quizId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid quiz ID"})
	}

	err = database.DB.
		Where("user_id = ? AND question_id IN (?)",
			userID,
			database.DB.Model(&models.Question{}).Select("id").Where("quiz_id = ?", quizID),
		).
		Delete(&models.UserProgress{}).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to reset progress"})
	}

	return c.JSON(fiber.Map{"message": "Progress reset for quiz"})
}

// ResetAllProgress wipes every progress entry the caller has.
func ResetAllProgress(c *fiber.Ctx) error {
	userID := currentUserID(c)

	if err := database.DB.Where("user_id = ?", userID).Delete(&models.UserProgress{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to reset progress"})
	}

	return c.JSON(fiber.Map{"message": "All progress reset"})
}

// GetProgressStats summarizes the caller's standing on one quiz.
func GetProgressStats(c *fiber.Ctx) error {
	userID := currentUserID(c)

	quizID, err := uuid.Parse(c.Params("quizId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid quiz ID"})
	}

	var total, divergent int64
	database.DB.Model(&models.Question{}).Where("quiz_id = ?", quizID).Count(&total)
	database.DB.Model(&models.Question{}).Where("quiz_id = ? AND is_divergent = ?", quizID, true).Count(&divergent)

	var entries []models.UserProgress
	err = database.DB.
		Joins("JOIN questions ON questions.id = user_progresses.question_id").
		Where("user_progresses.user_id = ? AND questions.quiz_id = ?", userID, quizID).
		Find(&entries).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch progress"})
	}

	var correct, incorrect int64
	for _, entry := range entries {
		if entry.IsCorrect == nil {
			continue
		}
		if *entry.IsCorrect {
			correct++
		} else {
			incorrect++
		}
	}

	return c.JSON(fiber.Map{
		"total":      total,
		"correct":    correct,
		"incorrect":  incorrect,
		"unanswered": total - correct - incorrect,
		"divergent":  divergent,
	})
}
