package consumer

import (
	"github.com/gofiber/fiber/v2"

	"github.com/slotbook/slotbook-backend/db"
	"github.com/slotbook/slotbook-backend/models"
)

type favoriteEntry struct {
	ProfessionalID uint   `json:"professional_id"`
	Email          string `json:"email"`
	Specialty      string `json:"specialty"`
}

func favoriteList(favorites []models.Professional) []favoriteEntry {
	list := make([]favoriteEntry, 0, len(favorites))
	for _, f := range favorites {
		list = append(list, favoriteEntry{
			ProfessionalID: f.ID,
			Email:          f.Email,
			Specialty:      f.Specialty,
		})
	}
	return list
}

// ListUserFavorites returns the logged-in user's favorite professionals.
// A user without a profile row gets an empty list.
func ListUserFavorites(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var profile models.Profile
	err := db.DB.Preload("Favorites").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return c.JSON(fiber.Map{
			"favorites": []favoriteEntry{},
		})
	}

	return c.JSON(fiber.Map{
		"favorites": favoriteList(profile.Favorites),
	})
}

// AddUserFavorite adds a professional to the user's favorites and returns
// the updated list.
func AddUserFavorite(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	type AddFavoriteInput struct {
		ProfessionalID uint `json:"professional_id"`
	}
	input := new(AddFavoriteInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	var professional models.Professional
	if err := db.DB.First(&professional, input.ProfessionalID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Professional with the provided ID does not exist.",
		})
	}

	var profile models.Profile
	if err := db.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Profile not found",
		})
	}

	if err := db.DB.Model(&profile).Association("Favorites").Append(&professional); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add favorite",
		})
	}

	var updated models.Profile
	if err := db.DB.Preload("Favorites").Where("user_id = ?", userID).First(&updated).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load favorites",
		})
	}

	return c.JSON(fiber.Map{
		"favorites": favoriteList(updated.Favorites),
	})
}

// RemoveUserFavorite removes a professional from the user's favorites.
// Removing a professional who isn't a favorite yields an empty list, same
// as for a missing profile.
func RemoveUserFavorite(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	professionalID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid professional ID",
		})
	}

	var profile models.Profile
	if err := db.DB.Preload("Favorites").Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return c.JSON(fiber.Map{
			"favorites": []favoriteEntry{},
		})
	}

	var target *models.Professional
	for i := range profile.Favorites {
		if profile.Favorites[i].ID == uint(professionalID) {
			target = &profile.Favorites[i]
			break
		}
	}
	if target == nil {
		return c.JSON(fiber.Map{
			"favorites": []favoriteEntry{},
		})
	}

	if err := db.DB.Model(&profile).Association("Favorites").Delete(target); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to remove favorite",
		})
	}

	var updated models.Profile
	if err := db.DB.Preload("Favorites").Where("user_id = ?", userID).First(&updated).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load favorites",
		})
	}

	return c.JSON(fiber.Map{
		"favorites": favoriteList(updated.Favorites),
	})
}
