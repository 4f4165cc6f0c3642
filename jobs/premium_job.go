package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/leonardoresende2010-coder/cism-repositorio/database"
	"github.com/leonardoresende2010-coder/cism-repositorio/models"
	"github.com/leonardoresende2010-coder/cism-repositorio/notifications"
)

// DemoteExpiredPremiums clears the premium flag on users whose subscription
// window closed and lets them know by email.
func DemoteExpiredPremiums() {
	log.Println("Running job: DemoteExpiredPremiums...")

	now := time.Now()

	var expiredUsers []models.User
	err := database.DB.
		Where("is_premium = ? AND premium_until IS NOT NULL AND premium_until < ?", true, now).
		Find(&expiredUsers).Error

	if err != nil {
		log.Printf("Error checking for expired premium users: %v", err)
		return
	}

	if len(expiredUsers) == 0 {
		return
	}

	for _, user := range expiredUsers {
		log.Printf("Demoting expired premium user: %s", user.ID)
		expiredOn := user.PremiumUntil.Format("January 2, 2006")

		updates := map[string]interface{}{"is_premium": false, "premium_until": nil}
		if err := database.DB.Model(&user).Updates(updates).Error; err != nil {
			log.Printf("Error demoting user %s: %v", user.ID, err)
			continue
		}

		emailSubject := "Your Premium Access Has Ended"
		emailBody := fmt.Sprintf(
			"<h1>Premium Expired</h1><p>Hi %s,</p><p>Your premium access ended on %s. Your study history and notes are safe, and you can renew at any time to unlock premium question banks again.</p>",
			user.Username,
			expiredOn,
		)

		go notifications.SendEmail(displayName(&user), user.Email, emailSubject, emailBody)
	}
}

// SendPremiumExpiryReminders warns users whose premium access lapses within
// the next three days.
func SendPremiumExpiryReminders() {
	log.Println("Running job: SendPremiumExpiryReminders...")

	now := time.Now()
	upperBound := now.Add(72 * time.Hour)

	var expiringUsers []models.User
	err := database.DB.
		Where("is_premium = ? AND premium_until IS NOT NULL AND premium_until BETWEEN ? AND ?", true, now, upperBound).
		Find(&expiringUsers).Error

	if err != nil {
		log.Printf("Error checking for expiring premium users: %v", err)
		return
	}

	for _, user := range expiringUsers {
		log.Printf("Sending premium expiry reminder to user: %s", user.ID)

		emailSubject := "Your Premium Access Ends Soon"
		emailBody := fmt.Sprintf(
			"<h1>Premium Reminder</h1><p>Hi %s,</p><p>Your premium access ends on %s. Renew before then to keep studying the premium question banks without interruption.</p>",
			user.Username,
			user.PremiumUntil.Format("January 2, 2006"),
		)

		go notifications.SendEmail(displayName(&user), user.Email, emailSubject, emailBody)
	}
}

func displayName(user *models.User) string {
	if user.FullName != nil && *user.FullName != "" {
		return *user.FullName
	}
	return user.Username
}
