package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/slotbook/slotbook-backend/controllers"
	"github.com/slotbook/slotbook-backend/middleware"
)

// SetupBookingRoutes configures all booking related routes
func SetupBookingRoutes(app *fiber.App) {
	booking := app.Group("/bookings")
	booking.Post("/", middleware.Protected(), controllers.BookAppointment)
}
