package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/slotbook/slotbook-backend/controllers"
	"github.com/slotbook/slotbook-backend/middleware"
	"github.com/slotbook/slotbook-backend/models"
)

// SetupProfessionalRoutes configures the professional directory routes
func SetupProfessionalRoutes(app *fiber.App) {
	professional := app.Group("/professionals")
	professional.Get("/", controllers.GetAllProfessionals)
	professional.Get("/:id", controllers.GetProfessional)
	professional.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.CreateProfessional)
}
