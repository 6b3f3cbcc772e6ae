package models

import (
	"fmt"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// Rank orders statuses for schedule listings: CANCELLED < PENDING < CONFIRMED.
// A slot's reported status is the highest-ranked status among its bookings.
func (s BookingStatus) Rank() int {
	switch s {
	case BookingCancelled:
		return 0
	case BookingPending:
		return 1
	case BookingConfirmed:
		return 2
	}
	return -1
}

type Booking struct {
	gorm.Model
	UserID uint          `json:"user_id"`
	User   User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
	SlotID uint          `json:"slot_id"`
	Slot   Slot          `json:"slot,omitempty" gorm:"foreignKey:SlotID"`
	Status BookingStatus `json:"status"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = BookingPending
	}
	return nil
}

// UpdateStatus applies a status transition and persists it. Allowed moves:
// PENDING -> CONFIRMED or CANCELLED, CONFIRMED -> CANCELLED. CANCELLED is
// terminal.
func (b *Booking) UpdateStatus(tx *gorm.DB, newStatus BookingStatus) error {
	switch b.Status {
	case BookingPending:
		if newStatus != BookingConfirmed && newStatus != BookingCancelled {
			return fmt.Errorf("invalid transition from %s to %s", b.Status, newStatus)
		}
	case BookingConfirmed:
		if newStatus != BookingCancelled {
			return fmt.Errorf("invalid transition from %s to %s", b.Status, newStatus)
		}
	case BookingCancelled:
		return fmt.Errorf("no transitions allowed from %s", b.Status)
	}

	b.Status = newStatus
	return tx.Save(b).Error
}
