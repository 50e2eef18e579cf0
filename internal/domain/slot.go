package domain

import (
	"time"

	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// Slot is a validated request for a time interval on a civil date
type Slot struct {
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
}

// TimeRange is a half-open interval within one day
type TimeRange struct {
	Start types.TimeString
	End   types.TimeString
}

// DurationMinutes returns the length of the range
func (r TimeRange) DurationMinutes() int {
	return r.End.Minutes() - r.Start.Minutes()
}

// Contains returns true if t is inside [Start, End)
func (r TimeRange) Contains(t types.TimeString) bool {
	return !t.IsBefore(r.Start) && t.IsBefore(r.End)
}
