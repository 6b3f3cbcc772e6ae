package models

import (
	"testing"
)

func TestBookingStatusRank(t *testing.T) {
	if BookingCancelled.Rank() >= BookingPending.Rank() {
		t.Fatal("CANCELLED must rank below PENDING")
	}
	if BookingPending.Rank() >= BookingConfirmed.Rank() {
		t.Fatal("PENDING must rank below CONFIRMED")
	}
	if got := BookingStatus("BOGUS").Rank(); got != -1 {
		t.Fatalf("unknown status rank = %d, want -1", got)
	}
}

func TestBookingUpdateStatus_RejectsInvalidTransitions(t *testing.T) {
	// Invalid transitions are rejected before any database access, so a nil
	// tx is safe here.
	tests := []struct {
		name string
		from BookingStatus
		to   BookingStatus
	}{
		{"pending cannot skip back to pending", BookingPending, BookingPending},
		{"confirmed cannot revert to pending", BookingConfirmed, BookingPending},
		{"confirmed cannot re-confirm", BookingConfirmed, BookingConfirmed},
		{"cancelled is terminal", BookingCancelled, BookingPending},
		{"cancelled cannot be confirmed", BookingCancelled, BookingConfirmed},
		{"cancelled cannot re-cancel", BookingCancelled, BookingCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Booking{Status: tt.from}
			if err := b.UpdateStatus(nil, tt.to); err == nil {
				t.Fatalf("UpdateStatus(%s -> %s) succeeded, want error", tt.from, tt.to)
			}
			if b.Status != tt.from {
				t.Fatalf("status mutated to %s on rejected transition", b.Status)
			}
		})
	}
}
