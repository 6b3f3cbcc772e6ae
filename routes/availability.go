package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/slotbook/slotbook-backend/controllers"
)

// SetupAvailabilityRoutes configures all availability related routes
func SetupAvailabilityRoutes(app *fiber.App) {
	availability := app.Group("/availability")
	availability.Get("/", controllers.GetAvailability)
	availability.Get("/check", controllers.CheckAvailability)
	availability.Get("/professional/:id", controllers.GetProfessionalAvailability)
}
