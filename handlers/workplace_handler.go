package handlers

import (
	"github.com/leonardoresende2010-coder/cism-repositorio/database"
	"github.com/leonardoresende2010-coder/cism-repositorio/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type WorkplaceRequest struct {
	Name string `json:"name" validate:"required,min=2,max=255"`
}

func CreateWorkplace(c *fiber.Ctx) error {
	var req WorkplaceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	workplace := models.Workplace{Name: req.Name, UserID: currentUserID(c)}
	if err := database.DB.Create(&workplace).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create workplace"})
	}

	return c.Status(fiber.StatusCreated).JSON(workplace)
}

func ListWorkplaces(c *fiber.Ctx) error {
	var workplaces []models.Workplace
	err := database.DB.
		Where("user_id = ?", currentUserID(c)).
		Order("created_at DESC").
		Find(&workplaces).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch workplaces"})
	}

	return c.JSON(fiber.Map{"workplaces": workplaces})
}

func UpdateWorkplace(c *fiber.Ctx) error {
	workplace, fiberErr := loadOwnedWorkplace(c)
	if fiberErr != nil {
		return fiberErr
	}

	var req WorkplaceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	workplace.Name = req.Name
	if err := database.DB.Save(workplace).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update workplace"})
	}

	return c.JSON(workplace)
}

// DeleteWorkplace removes a workplace and cascades to its quizzes.
func DeleteWorkplace(c *fiber.Ctx) error {
	workplace, fiberErr := loadOwnedWorkplace(c)
	if fiberErr != nil {
		return fiberErr
	}

	if err := database.DB.Select("Quizzes").Delete(workplace).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete workplace"})
	}

	return c.JSON(fiber.Map{"message": "Workplace deleted"})
}

func loadOwnedWorkplace(c *fiber.Ctx) (*models.Workplace, error) {
	workplaceID, err := uuid.Parse(c.Params("workplaceId"))
	if err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid workplace ID"})
	}

	var workplace models.Workplace
	if err := database.DB.First(&workplace, "id = ?", workplaceID).Error; err != nil {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Workplace not found"})
	}
	if workplace.UserID != currentUserID(c) && !isAdmin(c) {
		return nil, c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not own this workplace"})
	}
	return &workplace, nil
}
