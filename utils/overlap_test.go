package utils

import (
	"testing"
	"time"

	"github.com/slotbook/slotbook-backend/models"
)

func at(hour, min int) time.Time {
	return time.Date(2024, 1, 1, hour, min, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"identical intervals", at(10, 0), at(11, 0), at(10, 0), at(11, 0), true},
		{"partial overlap", at(10, 0), at(11, 0), at(10, 30), at(11, 30), true},
		{"containment", at(10, 0), at(12, 0), at(10, 30), at(11, 0), true},
		{"touching at end is not overlap", at(10, 0), at(11, 0), at(11, 0), at(12, 0), false},
		{"touching at start is not overlap", at(11, 0), at(12, 0), at(10, 0), at(11, 0), false},
		{"disjoint", at(10, 0), at(11, 0), at(13, 0), at(14, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
				t.Fatalf("Overlaps(%v, %v, %v, %v) = %v, want %v",
					tt.aStart, tt.aEnd, tt.bStart, tt.bEnd, got, tt.want)
			}
			// Overlap is symmetric
			if got := Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd); got != tt.want {
				t.Fatalf("Overlaps is not symmetric for %s", tt.name)
			}
		})
	}
}

func TestFindConflict(t *testing.T) {
	slots := []models.Slot{
		{ProfessionalID: 7, StartTime: at(10, 0), EndTime: at(11, 0), IsActive: true},
		{ProfessionalID: 7, StartTime: at(14, 0), EndTime: at(15, 0), IsActive: false},
	}

	if got := FindConflict(slots, at(10, 30), at(11, 30)); got == nil {
		t.Fatal("expected conflict with [10:00,11:00), got none")
	}
	if got := FindConflict(slots, at(11, 0), at(12, 0)); got != nil {
		t.Fatalf("boundary-touching interval reported as conflict: %+v", got)
	}
	// Inactive slots never conflict
	if got := FindConflict(slots, at(14, 0), at(15, 0)); got != nil {
		t.Fatalf("inactive slot reported as conflict: %+v", got)
	}
	if got := FindConflict(nil, at(10, 0), at(11, 0)); got != nil {
		t.Fatalf("empty slot list reported a conflict: %+v", got)
	}
}
