package controllers

import (
	"testing"

	"github.com/slotbook/slotbook-backend/models"
)

func TestBookingBlocked(t *testing.T) {
	tests := []struct {
		name     string
		bookings []models.Booking
		strict   bool
		want     bool
	}{
		{
			name:     "no bookings",
			bookings: nil,
			want:     false,
		},
		{
			name:     "cancelled booking does not block",
			bookings: []models.Booking{{Status: models.BookingCancelled}},
			want:     false,
		},
		{
			name:     "confirmed booking blocks",
			bookings: []models.Booking{{Status: models.BookingConfirmed}},
			want:     true,
		},
		{
			// The documented double-booking gap: a pending booking does not
			// block another pending booking by default.
			name:     "pending booking does not block by default",
			bookings: []models.Booking{{Status: models.BookingPending}},
			want:     false,
		},
		{
			name:     "pending booking blocks in strict mode",
			bookings: []models.Booking{{Status: models.BookingPending}},
			strict:   true,
			want:     true,
		},
		{
			name: "confirmed among cancelled blocks",
			bookings: []models.Booking{
				{Status: models.BookingCancelled},
				{Status: models.BookingConfirmed},
				{Status: models.BookingPending},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bookingBlocked(tt.bookings, tt.strict); got != tt.want {
				t.Fatalf("bookingBlocked(strict=%v) = %v, want %v", tt.strict, got, tt.want)
			}
		})
	}
}
