package domain

import (
	"time"

	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a reservation of a room for a time interval on a civil date.
// The interval is half-open: [StartTime, EndTime).
type Booking struct {
	ID            int64
	RoomID        int64
	Date          time.Time // civil date, time part is zero
	StartTime     types.TimeString
	EndTime       types.TimeString
	RequesterName string
	RequesterOrg  string
	Purpose       string
	Status        BookingStatus

	// Denormalized data for history
	RoomName string

	CreatedAt   time.Time
	UpdatedAt   time.Time
	CancelledAt *time.Time
}

// IsActive returns true if the booking takes part in conflict checks and occupancy
func (b *Booking) IsActive() bool {
	return b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// IsOwnedBy returns true if the requester is the one who made the booking
func (b *Booking) IsOwnedBy(r Requester) bool {
	return b.RequesterName == r.Name && b.RequesterOrg == r.Org
}

// DurationMinutes returns the length of the booked interval
func (b *Booking) DurationMinutes() int {
	return b.EndTime.Minutes() - b.StartTime.Minutes()
}

// Clone returns a copy safe to mutate
func (b *Booking) Clone() *Booking {
	c := *b
	if b.CancelledAt != nil {
		t := *b.CancelledAt
		c.CancelledAt = &t
	}
	return &c
}
