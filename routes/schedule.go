package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/slotbook/slotbook-backend/controllers"
	"github.com/slotbook/slotbook-backend/middleware"
	"github.com/slotbook/slotbook-backend/models"
)

// SetupScheduleRoutes configures all schedule related routes
func SetupScheduleRoutes(app *fiber.App) {
	schedule := app.Group("/schedules")
	schedule.Get("/professional/:id", controllers.ListSchedules)
	schedule.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleAdmin, models.RoleProfessional), controllers.CreateSchedule)
	schedule.Patch("/:id", middleware.Protected(), middleware.RequireRole(models.RoleAdmin, models.RoleProfessional), controllers.UpdateSchedule)
	schedule.Delete("/:id", middleware.Protected(), controllers.DeleteSchedule)
}
