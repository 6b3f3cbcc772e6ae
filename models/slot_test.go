package models

import (
	"testing"
	"time"
)

func TestSlotCovers(t *testing.T) {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC)
	slot := Slot{StartTime: start, EndTime: end}

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"start is inclusive", start, true},
		{"inside", start.Add(30 * time.Minute), true},
		{"end is exclusive", end, false},
		{"before", start.Add(-time.Minute), false},
		{"after", end.Add(time.Minute), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := slot.Covers(tt.at); got != tt.want {
				t.Fatalf("Covers(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}
