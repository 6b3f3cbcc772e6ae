package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/slotbook/slotbook-backend/db"
	"github.com/slotbook/slotbook-backend/models"
)

// GetAllProfessionals returns the professional directory
func GetAllProfessionals(c *fiber.Ctx) error {
	var professionals []models.Professional
	if err := db.DB.Find(&professionals).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch professionals",
		})
	}
	return c.JSON(professionals)
}

// GetProfessional returns a professional with their slots
func GetProfessional(c *fiber.Ctx) error {
	id := c.Params("id")
	var professional models.Professional
	if err := db.DB.Preload("Slots").First(&professional, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Professional not found",
		})
	}
	return c.JSON(professional)
}

// CreateProfessional registers a new professional in the directory
func CreateProfessional(c *fiber.Ctx) error {
	professional := new(models.Professional)
	if err := c.BodyParser(professional); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if professional.Email == "" || professional.Specialty == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	if err := db.DB.Create(professional).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create professional",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(professional)
}
