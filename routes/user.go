package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/slotbook/slotbook-backend/controllers"
	"github.com/slotbook/slotbook-backend/middleware"
)

// SetupUserRoutes configures all user account related routes
func SetupUserRoutes(app *fiber.App) {
	users := app.Group("/users", middleware.Protected())
	users.Get("/:id", controllers.GetUser)
	users.Patch("/:id", controllers.UpdateUser)
	users.Delete("/:id", controllers.DeleteUser)
}
