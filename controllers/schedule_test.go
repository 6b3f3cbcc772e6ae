package controllers

import (
	"testing"

	"github.com/slotbook/slotbook-backend/models"
)

func TestScheduleStatus(t *testing.T) {
	tests := []struct {
		name     string
		bookings []models.Booking
		want     models.BookingStatus
	}{
		{
			name:     "no bookings defaults to pending",
			bookings: nil,
			want:     models.BookingPending,
		},
		{
			name:     "cancelled only still reports pending",
			bookings: []models.Booking{{Status: models.BookingCancelled}},
			want:     models.BookingPending,
		},
		{
			name: "confirmed wins over pending",
			bookings: []models.Booking{
				{Status: models.BookingPending},
				{Status: models.BookingConfirmed},
			},
			want: models.BookingConfirmed,
		},
		{
			name: "order of bookings does not matter",
			bookings: []models.Booking{
				{Status: models.BookingConfirmed},
				{Status: models.BookingCancelled},
				{Status: models.BookingPending},
			},
			want: models.BookingConfirmed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scheduleStatus(tt.bookings); got != tt.want {
				t.Fatalf("scheduleStatus = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		name            string
		in, first, last string
	}{
		{"first and last", "Jane Doe", "Jane", "Doe"},
		{"single word", "Jane", "Jane", ""},
		{"three words", "Jane van Doe", "Jane", "van Doe"},
		{"empty", "", "", ""},
		{"extra spaces", "  Jane   Doe  ", "Jane", "Doe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := splitName(tt.in)
			if first != tt.first || last != tt.last {
				t.Fatalf("splitName(%q) = (%q, %q), want (%q, %q)",
					tt.in, first, last, tt.first, tt.last)
			}
		})
	}
}
