package services

import (
	"log"

	"github.com/leonardoresende2010-coder/cism-repositorio/database"
	"github.com/leonardoresende2010-coder/cism-repositorio/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	xpForCorrectAnswer  = 10
	badgeNameFirstBlock = "First Block"
)

// AwardRewardsForBlockCompletion grants XP for every correct answer of a
// finished study block, and the "First Block" badge the first time around.
func AwardRewardsForBlockCompletion(userID uuid.UUID, correctCount int) {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Preload("Badges").First(&user, "id = ?", userID).Error; err != nil {
			return err
		}

		user.XP += xpForCorrectAnswer * correctCount
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		for _, badge := range user.Badges {
			if badge.Name == badgeNameFirstBlock {
				return nil
			}
		}

		var firstBlockBadge models.Badge
		if err := tx.Where("name = ?", badgeNameFirstBlock).First(&firstBlockBadge).Error; err == nil {
			if err := tx.Model(&user).Association("Badges").Append(&firstBlockBadge); err != nil {
				return err
			}
		} else {
			log.Printf("Warning: Badge '%s' not found in database. Cannot award.", badgeNameFirstBlock)
		}

		return nil
	})

	if err != nil {
		log.Printf("🔥 Failed to award rewards to user %s: %v", userID, err)
	} else {
		log.Printf("✅ Awarded %d XP to user %s.", xpForCorrectAnswer*correctCount, userID)
	}
}
