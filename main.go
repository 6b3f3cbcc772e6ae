package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/slotbook/slotbook-backend/cron"
	"github.com/slotbook/slotbook-backend/db"
	"github.com/slotbook/slotbook-backend/redis"
	"github.com/slotbook/slotbook-backend/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello, World!")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupUserRoutes(app)
	routes.SetupConsumerRoutes(app)
	routes.SetupProfessionalRoutes(app)
	routes.SetupScheduleRoutes(app)
	routes.SetupBookingRoutes(app)
	routes.SetupAvailabilityRoutes(app)
	routes.SetupNotificationRoutes(app)

	cron.StartCronJobs()

	log.Fatal(app.Listen(":8000"))
}
