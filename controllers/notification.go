package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/slotbook/slotbook-backend/db"
	"github.com/slotbook/slotbook-backend/models"
	"github.com/slotbook/slotbook-backend/utils"
)

// FetchNotifications lists the current user's notifications, newest first.
// Optional filters: status (read/unread), start_date, end_date.
func FetchNotifications(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	query := db.DB.Where("user_id = ?", userID).Order("created_at desc")

	switch c.Query("status") {
	case "read":
		query = query.Where("read = ?", true)
	case "unread":
		query = query.Where("read = ?", false)
	}
	if startDate := c.Query("start_date"); startDate != "" {
		t, err := time.Parse(time.RFC3339, startDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid start_date, expected RFC3339",
				Error:   err.Error(),
			})
		}
		query = query.Where("created_at >= ?", t)
	}
	if endDate := c.Query("end_date"); endDate != "" {
		t, err := time.Parse(time.RFC3339, endDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid end_date, expected RFC3339",
				Error:   err.Error(),
			})
		}
		query = query.Where("created_at <= ?", t)
	}

	var notifications []models.Notification
	if err := query.Find(&notifications).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch notifications",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"notifications": notifications,
	})
}

// UpdateNotificationStatus flips the read flag of a notification. Guests may
// not update; a missing notification is a hard not-found. Re-applying the
// same read value is a no-op that returns the same response.
func UpdateNotificationStatus(c *fiber.Ctx) error {
	role, ok := c.Locals("role").(models.Role)
	if !ok || !role.CanUpdateNotifications() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "The user's role does not permit updating notification status",
		})
	}

	type UpdateInput struct {
		Read bool `json:"read"`
	}
	input := new(UpdateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	id := c.Params("id")
	var notification models.Notification
	if db.DB.First(&notification, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Notification not found with the specified ID",
		})
	}

	if err := db.DB.Model(&notification).Update("read", input.Read).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update notification",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"id":   notification.ID,
		"read": input.Read,
	})
}

// DeleteNotification removes a single notification, reporting the outcome as
// a soft success/failure result.
func DeleteNotification(c *fiber.Ctx) error {
	id := c.Params("id")

	var notification models.Notification
	if db.DB.First(&notification, id).RowsAffected == 0 {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Notification not found.",
		})
	}

	if err := db.DB.Delete(&notification).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete notification",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Notification deleted successfully.",
	})
}
