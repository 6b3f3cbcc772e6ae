package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/slotbook/slotbook-backend/db"
	"github.com/slotbook/slotbook-backend/models"
	"github.com/slotbook/slotbook-backend/utils"
)

// NotificationPayload mirrors a notification row in schedule responses. The
// update handler reports a sentinel payload (id -1) when the schedule does
// not exist; that sentinel is never persisted.
type NotificationPayload struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
}

type CreateScheduleInput struct {
	ProfessionalID uint      `json:"professional_id"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	ActivityType   string    `json:"activity_type"`
	IsActive       bool      `json:"is_active"`
}

// CreateSchedule creates a new slot for a professional. The slot is rejected
// when the interval is inverted or when it overlaps any of the
// professional's active slots. The professional is notified best-effort; a
// failed notification does not fail the creation.
func CreateSchedule(c *fiber.Ctx) error {
	input := new(CreateScheduleInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if !input.StartTime.Before(input.EndTime) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Start time must be before end time",
		})
	}

	// Validate against the professional's current active slots. There is no
	// transaction around the check and the insert, so two concurrent creates
	// can both pass the check.
	var existingSlots []models.Slot
	if err := db.DB.Where("professional_id = ? AND is_active = ?", input.ProfessionalID, true).
		Find(&existingSlots).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to check existing slots",
			Error:   err.Error(),
		})
	}

	if conflict := utils.FindConflict(existingSlots, input.StartTime, input.EndTime); conflict != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "There are overlapping slots for the same time range",
		})
	}

	slot := models.Slot{
		ProfessionalID: input.ProfessionalID,
		StartTime:      input.StartTime,
		EndTime:        input.EndTime,
		ActivityType:   input.ActivityType,
		IsActive:       input.IsActive,
	}
	if err := db.DB.Create(&slot).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create schedule",
			Error:   err.Error(),
		})
	}

	notified := utils.SendNotification(input.ProfessionalID, "New schedule created for you.")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"schedule_id":           slot.ID,
		"professional_id":       slot.ProfessionalID,
		"was_notification_sent": notified,
		"is_active":             slot.IsActive,
	})
}

// scheduleStatus reduces a slot's bookings to a single reported status:
// the highest status by CANCELLED < PENDING < CONFIRMED ordering, defaulting
// to PENDING for slots with no bookings.
func scheduleStatus(bookings []models.Booking) models.BookingStatus {
	status := models.BookingPending
	for _, b := range bookings {
		if b.Status.Rank() > status.Rank() {
			status = b.Status
		}
	}
	return status
}

// ListSchedules returns every slot of a professional with its aggregated
// booking status.
func ListSchedules(c *fiber.Ctx) error {
	professionalID := c.Params("id")

	var slots []models.Slot
	if err := db.DB.Preload("Bookings").
		Where("professional_id = ?", professionalID).
		Find(&slots).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch schedules",
			Error:   err.Error(),
		})
	}

	type scheduleEntry struct {
		SlotID        uint                 `json:"slot_id"`
		StartTime     time.Time            `json:"start_time"`
		EndTime       time.Time            `json:"end_time"`
		IsActive      bool                 `json:"is_active"`
		BookingStatus models.BookingStatus `json:"booking_status"`
	}

	schedules := make([]scheduleEntry, 0, len(slots))
	for _, slot := range slots {
		schedules = append(schedules, scheduleEntry{
			SlotID:        slot.ID,
			StartTime:     slot.StartTime,
			EndTime:       slot.EndTime,
			IsActive:      slot.IsActive,
			BookingStatus: scheduleStatus(slot.Bookings),
		})
	}

	return c.JSON(fiber.Map{
		"schedules": schedules,
	})
}

type UpdateScheduleInput struct {
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	ProfessionalID uint      `json:"professional_id"`
	Activity       string    `json:"activity"`
}

// UpdateSchedule overwrites a slot's interval and owner and notifies the
// professional. The new interval is not re-checked for overlaps against
// other slots; only creation validates overlap.
func UpdateSchedule(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid schedule ID",
			Error:   err.Error(),
		})
	}

	input := new(UpdateScheduleInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var slot models.Slot
	if db.DB.First(&slot, id).RowsAffected == 0 {
		return c.JSON(fiber.Map{
			"updated":     false,
			"schedule_id": id,
			"notification": NotificationPayload{
				ID:        -1,
				UserID:    -1,
				Message:   "Schedule Not Found",
				CreatedAt: time.Now(),
				Read:      false,
			},
		})
	}

	updates := map[string]interface{}{
		"start_time":      input.StartTime,
		"end_time":        input.EndTime,
		"professional_id": input.ProfessionalID,
	}
	if err := db.DB.Model(&slot).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update schedule",
			Error:   err.Error(),
		})
	}

	notification := models.Notification{
		UserID:    input.ProfessionalID,
		Message:   fmt.Sprintf("Schedule updated: %s", input.Activity),
		CreatedAt: time.Now(),
		Read:      false,
	}
	if err := db.DB.Create(&notification).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create notification",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"updated":     true,
		"schedule_id": slot.ID,
		"notification": NotificationPayload{
			ID:        int64(notification.ID),
			UserID:    int64(notification.UserID),
			Message:   notification.Message,
			CreatedAt: notification.CreatedAt,
			Read:      notification.Read,
		},
	})
}

// DeleteSchedule removes a slot after cancelling its bookings. Only admins
// and professionals may delete. Every non-cancelled booking is cancelled and
// its user notified; the slot row is removed only when all of them end up
// cancelled. Cancellations already applied are not rolled back on partial
// failure.
func DeleteSchedule(c *fiber.Ctx) error {
	role, ok := c.Locals("role").(models.Role)
	if !ok || !role.CanManageSchedules() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "Unauthorized access. Only Admin or Professional can delete schedules.",
		})
	}

	id := c.Params("id")
	var slot models.Slot
	if db.DB.First(&slot, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Schedule not found.",
		})
	}

	var bookings []models.Booking
	if err := db.DB.Where("slot_id = ? AND status <> ?", slot.ID, models.BookingCancelled).
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to load bookings",
			Error:   err.Error(),
		})
	}

	for i := range bookings {
		if err := bookings[i].UpdateStatus(db.DB, models.BookingCancelled); err != nil {
			fmt.Printf("Failed to cancel booking %d: %v\n", bookings[i].ID, err)
			continue
		}
		message := fmt.Sprintf("Your booking for slot starting at %s has been cancelled.",
			slot.StartTime.Format(time.RFC3339))
		utils.SendNotification(bookings[i].UserID, message)
	}

	for _, b := range bookings {
		if b.Status != models.BookingCancelled {
			return c.JSON(fiber.Map{
				"success": false,
				"message": "Unable to fully delete schedule due to active bookings.",
			})
		}
	}

	if err := db.DB.Delete(&slot).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete schedule",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Schedule deleted successfully with all booked slots released and notifications sent.",
	})
}
