package consumer

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/slotbook/slotbook-backend/controllers"
	"github.com/slotbook/slotbook-backend/db"
	"github.com/slotbook/slotbook-backend/models"
	"github.com/slotbook/slotbook-backend/utils"
)

// GetUserProfile returns the profile of the logged-in user with booking
// overviews and favorites. A user without a profile row gets a zero-value
// response rather than an error.
func GetUserProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var user models.User
	err := db.DB.Preload("Profile.Favorites").
		Preload("Bookings.Slot.Professional").
		First(&user, userID).Error
	if err != nil || user.Profile == nil {
		return c.JSON(controllers.UserProfileResponse{
			UserID:             userID,
			BookedAppointments: []controllers.BookingOverview{},
			Favorites:          []controllers.ProfessionalMini{},
		})
	}

	return c.JSON(controllers.BuildUserProfileResponse(&user))
}

type CreateProfileInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// CreateUserProfile creates a profile-only account: a user row with an empty
// password and REGISTERED_USER role plus its profile.
func CreateUserProfile(c *fiber.Ctx) error {
	input := new(CreateProfileInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	var existingUser models.User
	if db.DB.Where("email = ?", input.Email).First(&existingUser).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Email already used by another user.",
		})
	}

	user := models.User{
		Email:    input.Email,
		Password: "",
		Role:     models.RoleRegisteredUser,
		Profile: &models.Profile{
			FirstName: input.FirstName,
			LastName:  input.LastName,
		},
	}
	if err := db.DB.Create(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create profile",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(controllers.UserProfileResponse{
		UserID:             user.ID,
		Name:               user.Profile.FullName(),
		Email:              user.Email,
		BookedAppointments: []controllers.BookingOverview{},
		Favorites:          []controllers.ProfessionalMini{},
	})
}

type UpdateProfileInput struct {
	Email     string `json:"email"`
	Favorites []uint `json:"favorites"`
}

// UpdateUserProfile updates the user's email and replaces the favorites set
// with the given professional ids.
func UpdateUserProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	input := new(UpdateProfileInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	var user models.User
	if err := db.DB.Preload("Profile").First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}
	if user.Profile == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Profile not found",
		})
	}

	if input.Email != "" {
		if err := db.DB.Model(&user).Update("email", input.Email).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update email",
			})
		}
	}

	var professionals []models.Professional
	if len(input.Favorites) > 0 {
		if err := db.DB.Where("id IN ?", input.Favorites).Find(&professionals).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to fetch professionals",
			})
		}
	}
	if err := db.DB.Model(user.Profile).Association("Favorites").Replace(professionals); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update favorites",
		})
	}

	favoriteIDs := make([]uint, 0, len(professionals))
	for _, p := range professionals {
		favoriteIDs = append(favoriteIDs, p.ID)
	}

	return c.JSON(fiber.Map{
		"userId":    userID,
		"email":     input.Email,
		"favorites": favoriteIDs,
	})
}

// DeleteUserProfile deletes the profile and everything hanging off the
// account: bookings, notifications, profile, then the user row itself.
func DeleteUserProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var user models.User
	if db.DB.First(&user, userID).RowsAffected == 0 {
		return c.JSON(fiber.Map{
			"message": "No user found with the given ID.",
		})
	}

	if err := db.DB.Where("user_id = ?", userID).Delete(&models.Booking{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete bookings",
		})
	}
	if err := db.DB.Where("user_id = ?", userID).Delete(&models.Notification{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete notifications",
		})
	}
	if err := db.DB.Where("user_id = ?", userID).Delete(&models.Profile{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete profile",
		})
	}
	if err := db.DB.Delete(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete user",
		})
	}

	return c.JSON(fiber.Map{
		"message": "User profile and all related data successfully deleted.",
	})
}

// UpdateUserProfilePicture uploads a new profile picture and stores its URL.
func UpdateUserProfilePicture(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	file, err := c.FormFile("profile_picture")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to get profile picture",
		})
	}

	f, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to open profile picture",
		})
	}
	defer f.Close()

	publicID := fmt.Sprintf("user_%d_%d", userID, time.Now().Unix())
	secureURL, err := utils.UploadToCloudinary(f, publicID, "profile_pictures")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload profile picture to Cloudinary",
		})
	}

	var profile models.Profile
	if db.DB.Where("user_id = ?", userID).First(&profile).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Profile not found",
		})
	}
	if err := db.DB.Model(&profile).Update("picture_url", secureURL).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update profile picture",
		})
	}

	profile.PictureURL = secureURL
	return c.JSON(profile)
}
