package controllers

import (
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/slotbook/slotbook-backend/db"
	"github.com/slotbook/slotbook-backend/models"
	"github.com/slotbook/slotbook-backend/utils"
)

// strictPendingBlock reports whether pending bookings should also block new
// bookings. By default only a CONFIRMED booking blocks, so several PENDING
// bookings can pile up on one slot until one of them is confirmed.
func strictPendingBlock() bool {
	return os.Getenv("STRICT_PENDING_BLOCK") == "true"
}

// bookingBlocked decides whether an existing booking prevents a new one.
func bookingBlocked(bookings []models.Booking, strict bool) bool {
	for _, b := range bookings {
		if b.Status == models.BookingConfirmed {
			return true
		}
		if strict && b.Status == models.BookingPending {
			return true
		}
	}
	return false
}

type BookAppointmentInput struct {
	UserID         uint `json:"user_id"`
	ProfessionalID uint `json:"professional_id"`
	SlotID         uint `json:"slot_id"`
}

// BookAppointment places a pending booking on a slot. All rejections are
// soft: the response carries status "error" and a message, never an HTTP
// error status. The professional_id in the request must match the slot's
// owner; the check is defense against stale client state, not an
// authorization gate.
func BookAppointment(c *fiber.Ctx) error {
	input := new(BookAppointmentInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var slot models.Slot
	err := db.DB.Preload("Professional").Preload("Bookings").
		First(&slot, input.SlotID).Error
	if err != nil || !slot.IsActive || slot.ProfessionalID != input.ProfessionalID {
		return c.JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid slot or mismatch of professional ID",
		})
	}

	if bookingBlocked(slot.Bookings, strictPendingBlock()) {
		return c.JSON(fiber.Map{
			"status":  "error",
			"message": "Slot is already booked",
		})
	}

	booking := models.Booking{
		UserID: input.UserID,
		SlotID: input.SlotID,
		Status: models.BookingPending,
	}
	if err := db.DB.Create(&booking).Error; err != nil {
		return c.JSON(fiber.Map{
			"status":  "error",
			"message": "Failed to place booking",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"booking_id": booking.ID,
		"status":     "pending",
		"message":    "Booking placed and is pending confirmation",
	})
}
