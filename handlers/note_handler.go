package handlers

import (
	"encoding/json"
	"log"

	"github.com/leonardoresende2010-coder/cism-repositorio/database"
	"github.com/leonardoresende2010-coder/cism-repositorio/models"
	ws "github.com/leonardoresende2010-coder/cism-repositorio/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	QuestionID string   `json:"question_id" validate:"required,uuid4"`
	Content    string   `json:"content" validate:"required,max=5000"`
	Visibility string   `json:"visibility" validate:"omitempty,oneof=public group"`
	SharedWith []string `json:"shared_with,omitempty"`
}

// CreateNote attaches a note to a question. Notes are keyed by the question's
// content hash so students who uploaded the same question independently see
// each other's public notes. Group notes are pushed to connected members over
// the websocket hub.
func CreateNote(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req CreateNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.Visibility == "" {
		req.Visibility = "public"
	}
	if req.Visibility == "group" && len(req.SharedWith) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Group notes need at least one recipient"})
	}

	questionID, _ := uuid.Parse(req.QuestionID)
	var question models.Question
	if err := database.DB.First(&question, "id = ?", questionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Question not found"})
	}

	note := models.CommunityNote{
		QuestionID:   &questionID,
		QuestionHash: question.ContentHash,
		UserID:       userID,
		UserName:     currentUsername(c),
		Content:      req.Content,
		Visibility:   req.Visibility,
	}
	if req.Visibility == "group" {
		sharedJSON, err := json.Marshal(req.SharedWith)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to encode recipients"})
		}
		shared := string(sharedJSON)
		note.SharedWith = &shared
	}

	if err := database.DB.Create(&note).Error; err != nil {
		log.Printf("🔥 Error creating note for question %s: %v", questionID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create note"})
	}

	ws.BroadcastNote <- &note

	return c.Status(fiber.StatusCreated).JSON(note)
}

// ListNotesForQuestion returns the notes visible to the caller for a
// question: public notes on the same content hash, group notes shared with
// the caller, and the caller's own notes.
func ListNotesForQuestion(c *fiber.Ctx) error {
	userID := currentUserID(c)
	username := currentUsername(c)

	questionID, err := uuid.Parse(c.Params("questionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid question ID"})
	}

	var question models.Question
	if err := database.DB.First(&question, "id = ?", questionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Question not found"})
	}

	var notes []models.CommunityNote
	err = database.DB.
		Where("question_hash = ?", question.ContentHash).
		Where("visibility = ? OR user_id = ? OR shared_with @> ?", "public", userID, `["`+username+`"]`).
		Order("created_at ASC").
		Find(&notes).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch notes"})
	}

	return c.JSON(fiber.Map{"notes": notes})
}

func DeleteNote(c *fiber.Ctx) error {
	noteID, err := uuid.Parse(c.Params("noteId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid note ID"})
	}

	var note models.CommunityNote
	if err := database.DB.First(&note, "id = ?", noteID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Note not found"})
	}
	if note.UserID != currentUserID(c) && !isAdmin(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not own this note"})
	}

	if err := database.DB.Delete(&note).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete note"})
	}

	return c.JSON(fiber.Map{"message": "Note deleted"})
}

type StudyGroupRequest struct {
	Name    string   `json:"name" validate:"required,min=2,max=255"`
	Members []string `json:"members" validate:"required,min=1"`
}

func CreateStudyGroup(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req StudyGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	members := ensureMember(req.Members, currentUsername(c))
	membersJSON, err := json.Marshal(members)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to encode members"})
	}

	group := models.StudyGroup{
		Name:      req.Name,
		CreatorID: userID,
		Members:   string(membersJSON),
	}
	if err := database.DB.Create(&group).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create study group"})
	}

	return c.Status(fiber.StatusCreated).JSON(group)
}

// ListMyStudyGroups returns groups the caller created or belongs to.
func ListMyStudyGroups(c *fiber.Ctx) error {
	userID := currentUserID(c)
	username := currentUsername(c)

	var groups []models.StudyGroup
	err := database.DB.
		Where("creator_id = ? OR members @> ?", userID, `["`+username+`"]`).
		Order("created_at DESC").
		Find(&groups).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch study groups"})
	}

	return c.JSON(fiber.Map{"groups": groups})
}

func UpdateStudyGroup(c *fiber.Ctx) error {
	group, fiberErr := loadOwnedStudyGroup(c)
	if fiberErr != nil {
		return fiberErr
	}

	var req StudyGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	members := ensureMember(req.Members, currentUsername(c))
	membersJSON, err := json.Marshal(members)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to encode members"})
	}

	group.Name = req.Name
	group.Members = string(membersJSON)
	if err := database.DB.Save(group).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update study group"})
	}

	return c.JSON(group)
}

func DeleteStudyGroup(c *fiber.Ctx) error {
	group, fiberErr := loadOwnedStudyGroup(c)
	if fiberErr != nil {
		return fiberErr
	}

	if err := database.DB.Delete(group).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete study group"})
	}

	return c.JSON(fiber.Map{"message": "Study group deleted"})
}

func loadOwnedStudyGroup(c *fiber.Ctx) (*models.StudyGroup, error) {
	groupID, err := uuid.Parse(c.Params("groupId"))
	if err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid group ID"})
	}

	var group models.StudyGroup
	if err := database.DB.First(&group, "id = ?", groupID).Error; err != nil {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Study group not found"})
	}
	if group.CreatorID != currentUserID(c) && !isAdmin(c) {
		return nil, c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only the creator can modify this group"})
	}
	return &group, nil
}

func ensureMember(members []string, username string) []string {
	for _, m := range members {
		if m == username {
			return members
		}
	}
	return append(members, username)
}

func currentUsername(c *fiber.Ctx) string {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	username, _ := claims["username"].(string)
	return username
}
