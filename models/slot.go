package models

import (
	"time"

	"gorm.io/gorm"
)

// Slot is a professional's bookable time interval. Intervals are half-open:
// [StartTime, EndTime). Two active slots of the same professional must not
// overlap; the check lives in the schedule controller, not in the database.
type Slot struct {
	gorm.Model
	ProfessionalID uint         `json:"professional_id"`
	Professional   Professional `json:"professional,omitempty" gorm:"foreignKey:ProfessionalID"`
	StartTime      time.Time    `json:"start_time"`
	EndTime        time.Time    `json:"end_time"`
	ActivityType   string       `json:"activity_type"`
	IsActive       bool         `json:"is_active"`
	Bookings       []Booking    `json:"bookings,omitempty" gorm:"foreignKey:SlotID"`
}

// Covers reports whether t falls inside the slot's half-open interval.
func (s *Slot) Covers(t time.Time) bool {
	return !t.Before(s.StartTime) && t.Before(s.EndTime)
}
