package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/slotbook/slotbook-backend/controllers/consumer"
	"github.com/slotbook/slotbook-backend/middleware"
)

// SetupConsumerRoutes configures all consumer profile and favorites routes
func SetupConsumerRoutes(app *fiber.App) {
	consumerGroup := app.Group("/user", middleware.Protected())
	consumerGroup.Get("/profile", consumer.GetUserProfile)
	consumerGroup.Post("/profile", consumer.CreateUserProfile)
	consumerGroup.Patch("/profile", consumer.UpdateUserProfile)
	consumerGroup.Delete("/profile", consumer.DeleteUserProfile)
	consumerGroup.Post("/profile/picture", consumer.UpdateUserProfilePicture)

	consumerGroup.Get("/favorites", consumer.ListUserFavorites)
	consumerGroup.Post("/favorites", consumer.AddUserFavorite)
	consumerGroup.Delete("/favorites/:id", consumer.RemoveUserFavorite)
}
