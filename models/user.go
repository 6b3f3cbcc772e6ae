package models

import (
	"time"
)

type User struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Email         string         `json:"email" gorm:"unique"`
	Password      string         `json:"password,omitempty"`
	Role          Role           `json:"role"`
	Profile       *Profile       `json:"profile,omitempty" gorm:"foreignKey:UserID"`
	Bookings      []Booking      `json:"bookings,omitempty" gorm:"foreignKey:UserID"`
	Notifications []Notification `json:"notifications,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
