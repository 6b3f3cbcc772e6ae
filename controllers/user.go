package controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/slotbook/slotbook-backend/db"
	"github.com/slotbook/slotbook-backend/models"
	"github.com/slotbook/slotbook-backend/utils"
)

type BookingOverview struct {
	BookingID        uint                 `json:"booking_id"`
	DateTime         time.Time            `json:"datetime"`
	Status           models.BookingStatus `json:"status"`
	ProfessionalName string               `json:"professional_name"`
}

type ProfessionalMini struct {
	ProfessionalID uint   `json:"professional_id"`
	Name           string `json:"name"`
	Specialty      string `json:"specialty"`
}

type UserProfileResponse struct {
	UserID             uint               `json:"user_id"`
	Name               string             `json:"name"`
	Email              string             `json:"email"`
	BookedAppointments []BookingOverview  `json:"booked_appointments"`
	Favorites          []ProfessionalMini `json:"favorites"`
}

func BuildUserProfileResponse(user *models.User) UserProfileResponse {
	name := "Unknown"
	if user.Profile != nil {
		name = user.Profile.FullName()
	}

	bookings := make([]BookingOverview, 0, len(user.Bookings))
	for _, b := range user.Bookings {
		bookings = append(bookings, BookingOverview{
			BookingID:        b.ID,
			DateTime:         b.Slot.StartTime,
			Status:           b.Status,
			ProfessionalName: b.Slot.Professional.Email,
		})
	}

	favorites := []ProfessionalMini{}
	if user.Profile != nil {
		for _, f := range user.Profile.Favorites {
			favorites = append(favorites, ProfessionalMini{
				ProfessionalID: f.ID,
				Name:           f.Email,
				Specialty:      f.Specialty,
			})
		}
	}

	return UserProfileResponse{
		UserID:             user.ID,
		Name:               name,
		Email:              user.Email,
		BookedAppointments: bookings,
		Favorites:          favorites,
	}
}

// GetUser returns the full profile of a user: personal details, booking
// overviews and favorite professionals.
func GetUser(c *fiber.Ctx) error {
	id := c.Params("id")

	var user models.User
	err := db.DB.Preload("Profile.Favorites").
		Preload("Bookings.Slot.Professional").
		First(&user, id).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "User not found",
			Error:   err.Error(),
		})
	}

	return c.JSON(BuildUserProfileResponse(&user))
}

// UpdateUser updates a user's email and/or password. Failures are soft: the
// response carries a success flag and message.
func UpdateUser(c *fiber.Ctx) error {
	id := c.Params("id")

	type UpdateInput struct {
		Email    *string `json:"email"`
		Password *string `json:"password"`
	}
	input := new(UpdateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var user models.User
	if db.DB.First(&user, id).RowsAffected == 0 {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "User not found.",
		})
	}

	updates := map[string]interface{}{}
	if input.Email != nil {
		updates["email"] = *input.Email
	}
	if input.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to hash password",
			})
		}
		updates["password"] = string(hashed)
	}
	if len(updates) == 0 {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "No update information provided.",
		})
	}

	if err := db.DB.Model(&user).Updates(updates).Error; err != nil {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Failed to update user: " + err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "User updated successfully.",
		"updatedDetails": fiber.Map{
			"email":  user.Email,
			"userId": strconv.Itoa(int(user.ID)),
		},
	})
}

// DeleteUser removes a user account with its bookings, notifications and
// profile. The user row and its profile always go together.
func DeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")

	var user models.User
	if db.DB.First(&user, id).RowsAffected == 0 {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "User not found.",
		})
	}

	if err := db.DB.Where("user_id = ?", user.ID).Delete(&models.Booking{}).Error; err != nil {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Failed to delete bookings: " + err.Error(),
		})
	}
	if err := db.DB.Where("user_id = ?", user.ID).Delete(&models.Notification{}).Error; err != nil {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Failed to delete notifications: " + err.Error(),
		})
	}
	if err := db.DB.Where("user_id = ?", user.ID).Delete(&models.Profile{}).Error; err != nil {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Failed to delete profile: " + err.Error(),
		})
	}
	if err := db.DB.Delete(&user).Error; err != nil {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Failed to delete user: " + err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "User successfully deleted.",
	})
}
