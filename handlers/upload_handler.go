package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"

	"github.com/leonardoresende2010-coder/cism-repositorio/database"
	"github.com/leonardoresende2010-coder/cism-repositorio/models"
	"github.com/leonardoresende2010-coder/cism-repositorio/parser"
	"github.com/leonardoresende2010-coder/cism-repositorio/services"
	"github.com/leonardoresende2010-coder/cism-repositorio/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UploadQuestions receives a question file, extracts its text, runs the
// parser, and persists the resulting quiz with its questions and blocks in
// one transaction.
func UploadQuestions(c *fiber.Ctx) error {
	userID := currentUserID(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing file upload"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to open uploaded file"})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read uploaded file"})
	}

	text, err := services.ExtractText(fileHeader.Filename, data)
	if err != nil {
		if errors.Is(err, services.ErrPDFUnsupported) || errors.Is(err, services.ErrUnsupportedFileType) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		log.Printf("🔥 Error extracting text from %s: %v", fileHeader.Filename, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to extract text from file"})
	}

	result := parser.Parse(text, fileHeader.Filename)
	if len(result.Questions) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No questions found in the uploaded file. Check that questions use numbered headers and lettered options.",
		})
	}
	if result.ChunksParsed < result.ChunksAttempted {
		log.Printf("⚠️ %s: %d of %d candidate questions parsed", fileHeader.Filename, result.ChunksParsed, result.ChunksAttempted)
	}

	quiz := models.Quiz{
		UserID:   userID,
		Title:    utils.QuizTitleFromFileName(fileHeader.Filename),
		FileName: &fileHeader.Filename,
	}
	if v := c.FormValue("workplace_id"); v != "" {
		workplaceID, err := uuid.Parse(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid workplace ID"})
		}
		quiz.WorkplaceID = &workplaceID
	}
	if v := c.FormValue("provider"); v != "" {
		quiz.Provider = &v
	}
	if v := c.FormValue("description"); v != "" {
		quiz.Description = &v
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&quiz).Error; err != nil {
			return err
		}

		questions := make([]models.Question, 0, len(result.Questions))
		for _, q := range result.Questions {
			optionsJSON, err := json.Marshal(q.Options)
			if err != nil {
				return err
			}
			record := models.Question{
				ID:            uuid.MustParse(q.ID),
				QuizID:        quiz.ID,
				Number:        q.Number,
				Text:          q.Text,
				Options:       string(optionsJSON),
				CorrectAnswer: q.CorrectAnswer,
				Explanation:   q.Explanation,
				IsDivergent:   q.IsDivergent,
				SourceFile:    q.SourceFile,
				BlockIndex:    q.BlockIndex,
				ContentHash:   utils.QuestionContentHash(q.Text),
			}
			if q.ExplanationAnswer != "" {
				answer := q.ExplanationAnswer
				record.ExplanationAnswer = &answer
			}
			questions = append(questions, record)
		}
		if err := tx.Create(&questions).Error; err != nil {
			return err
		}

		blocks := make([]models.QuestionBlock, 0, len(result.Blocks))
		for _, b := range result.Blocks {
			idsJSON, err := json.Marshal(b.QuestionIDs)
			if err != nil {
				return err
			}
			blocks = append(blocks, models.QuestionBlock{
				ID:          uuid.MustParse(b.ID),
				QuizID:      quiz.ID,
				SourceFile:  b.SourceFile,
				StartIndex:  b.StartIndex,
				EndIndex:    b.EndIndex,
				QuestionIDs: string(idsJSON),
			})
		}
		return tx.Create(&blocks).Error
	})
	if err != nil {
		log.Printf("🔥 Error persisting quiz for %s: %v", fileHeader.Filename, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save parsed questions"})
	}

	log.Printf("✅ Quiz %s created from %s: %d questions in %d blocks", quiz.ID, fileHeader.Filename, len(result.Questions), len(result.Blocks))

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"quiz_id":   quiz.ID,
		"title":     quiz.Title,
		"questions": result.Questions,
		"blocks":    result.Blocks,
		"parsed":    result.ChunksParsed,
		"attempted": result.ChunksAttempted,
	})
}
