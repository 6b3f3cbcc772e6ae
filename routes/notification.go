package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/slotbook/slotbook-backend/controllers"
	"github.com/slotbook/slotbook-backend/middleware"
)

// SetupNotificationRoutes configures all notification related routes
func SetupNotificationRoutes(app *fiber.App) {
	notification := app.Group("/notifications", middleware.Protected())
	notification.Get("/", controllers.FetchNotifications)
	notification.Patch("/:id", controllers.UpdateNotificationStatus)
	notification.Delete("/:id", controllers.DeleteNotification)
}
