package utils

import (
	"log"
	"time"

	"github.com/slotbook/slotbook-backend/db"
	"github.com/slotbook/slotbook-backend/models"
)

// SendNotification writes a notification row for the given recipient and
// reports whether it succeeded. It is fire-and-forget: failures are logged
// and swallowed so a failed notification never fails the calling operation.
func SendNotification(userID uint, message string) bool {
	notification := models.Notification{
		UserID:    userID,
		Message:   message,
		CreatedAt: time.Now(),
		Read:      false,
	}
	if err := db.DB.Create(&notification).Error; err != nil {
		log.Printf("Failed to create notification for user %d: %v", userID, err)
		return false
	}

	// Best-effort email copy when the recipient is a known user.
	var user models.User
	if err := db.DB.First(&user, userID).Error; err == nil && user.Email != "" {
		if err := SendEmail(user.Email, "Schedule update", "<p>"+message+"</p>"); err != nil {
			log.Printf("Failed to email notification to %s: %v", user.Email, err)
		}
	}

	return true
}
