package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/slotbook/slotbook-backend/db"
	"github.com/slotbook/slotbook-backend/models"
	"github.com/slotbook/slotbook-backend/utils"
)

// CheckAvailability answers the coarse question "is anyone matching these
// filters available at all": it reports "available" when at least one
// matching professional has at least one active slot in the range,
// independent of booking state.
func CheckAvailability(c *fiber.Ctx) error {
	query := db.DB.Model(&models.Slot{}).
		Joins("JOIN professionals ON professionals.id = slots.professional_id").
		Where("slots.is_active = ?", true)

	if professionalID := c.QueryInt("professional_id"); professionalID > 0 {
		query = query.Where("slots.professional_id = ?", professionalID)
	}
	if specialty := c.Query("specialty"); specialty != "" {
		query = query.Where("professionals.specialty = ?", specialty)
	}
	if startDate := c.Query("start_date"); startDate != "" {
		t, err := time.Parse(time.RFC3339, startDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid start_date, expected RFC3339",
				Error:   err.Error(),
			})
		}
		query = query.Where("slots.start_time >= ?", t)
	}
	if endDate := c.Query("end_date"); endDate != "" {
		t, err := time.Parse(time.RFC3339, endDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid end_date, expected RFC3339",
				Error:   err.Error(),
			})
		}
		query = query.Where("slots.end_time <= ?", t)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to check availability",
			Error:   err.Error(),
		})
	}

	availability := "unavailable"
	if count > 0 {
		availability = "available"
	}

	return c.JSON(fiber.Map{
		"availability": availability,
	})
}

// GetAvailability lists every professional with their active slots and the
// number of bookings on each, the detailed counterpart of CheckAvailability.
func GetAvailability(c *fiber.Ctx) error {
	var professionals []models.Professional
	if err := db.DB.Preload("Slots.Bookings").Find(&professionals).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch availability",
			Error:   err.Error(),
		})
	}

	type slotDetails struct {
		StartTime time.Time `json:"start_time"`
		EndTime   time.Time `json:"end_time"`
		IsActive  bool      `json:"is_active"`
		Bookings  int       `json:"bookings"`
	}
	type professionalAvailability struct {
		ProfessionalID uint          `json:"professional_id"`
		FullName       string        `json:"full_name"`
		Specialty      string        `json:"specialty"`
		Slots          []slotDetails `json:"slots"`
	}

	response := make([]professionalAvailability, 0, len(professionals))
	for _, professional := range professionals {
		slots := make([]slotDetails, 0, len(professional.Slots))
		for _, slot := range professional.Slots {
			if !slot.IsActive {
				continue
			}
			slots = append(slots, slotDetails{
				StartTime: slot.StartTime,
				EndTime:   slot.EndTime,
				IsActive:  slot.IsActive,
				Bookings:  len(slot.Bookings),
			})
		}
		response = append(response, professionalAvailability{
			ProfessionalID: professional.ID,
			FullName:       professional.Email,
			Specialty:      professional.Specialty,
			Slots:          slots,
		})
	}

	return c.JSON(fiber.Map{
		"professionals": response,
	})
}

// GetProfessionalAvailability reports a professional's status right now:
// "unavailable" without an active slot covering the current time, "busy"
// when that slot carries a non-cancelled booking, "available" otherwise.
func GetProfessionalAvailability(c *fiber.Ctx) error {
	professionalID := c.Params("id")
	now := time.Now()

	var slot models.Slot
	err := db.DB.
		Where("professional_id = ? AND start_time <= ? AND end_time >= ? AND is_active = ?",
			professionalID, now, now, true).
		First(&slot).Error
	if err != nil {
		return c.JSON(fiber.Map{
			"availability": "unavailable",
		})
	}

	var booking models.Booking
	err = db.DB.
		Where("slot_id = ? AND status <> ?", slot.ID, models.BookingCancelled).
		First(&booking).Error
	if err == nil {
		return c.JSON(fiber.Map{
			"availability": "busy",
		})
	}

	return c.JSON(fiber.Map{
		"availability": "available",
	})
}
