package models

import (
	"time"
)

// Notification rows are written as side effects of schedule changes and never
// mutate afterwards, except the Read flag.
type Notification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
}
