package db

import (
	"fmt"
	"log"

	"github.com/slotbook/slotbook-backend/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Professional{},
		&models.Slot{},
		&models.Booking{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
