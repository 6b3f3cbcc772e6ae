package utils

import (
	"time"

	"github.com/slotbook/slotbook-backend/models"
)

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Boundary-touching intervals do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// FindConflict returns the first active slot whose interval overlaps
// [start, end), or nil when there is none. Inactive slots never conflict.
func FindConflict(slots []models.Slot, start, end time.Time) *models.Slot {
	for i := range slots {
		if !slots[i].IsActive {
			continue
		}
		if Overlaps(slots[i].StartTime, slots[i].EndTime, start, end) {
			return &slots[i]
		}
	}
	return nil
}
