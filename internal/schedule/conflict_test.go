package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

func booking(id int64, start, end string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		RoomID:    1,
		StartTime: types.MustTimeString(start),
		EndTime:   types.MustTimeString(end),
		Status:    status,
	}
}

func ts(s string) types.TimeString {
	return types.MustTimeString(s)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{name: "adjacent after", aStart: "10:00", aEnd: "11:00", bStart: "09:00", bEnd: "10:00", want: false},
		{name: "adjacent before", aStart: "09:00", aEnd: "10:00", bStart: "10:00", bEnd: "11:00", want: false},
		{name: "contained", aStart: "10:15", aEnd: "10:45", bStart: "10:00", bEnd: "11:00", want: true},
		{name: "containing", aStart: "09:00", aEnd: "12:00", bStart: "10:00", bEnd: "11:00", want: true},
		{name: "partial head", aStart: "09:30", aEnd: "10:30", bStart: "10:00", bEnd: "11:00", want: true},
		{name: "partial tail", aStart: "10:30", aEnd: "11:30", bStart: "10:00", bEnd: "11:00", want: true},
		{name: "identical", aStart: "10:00", aEnd: "11:00", bStart: "10:00", bEnd: "11:00", want: true},
		{name: "disjoint", aStart: "12:00", aEnd: "13:00", bStart: "10:00", bEnd: "11:00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(ts(tt.aStart), ts(tt.aEnd), ts(tt.bStart), ts(tt.bEnd)))
		})
	}
}

func TestFindConflict(t *testing.T) {
	bookings := []*domain.Booking{
		booking(1, "09:00", "10:00", domain.StatusConfirmed),
		booking(2, "11:00", "12:00", domain.StatusCancelled),
		booking(3, "13:00", "14:00", domain.StatusConfirmed),
	}

	t.Run("adjacent is free", func(t *testing.T) {
		assert.Nil(t, FindConflict(bookings, ts("10:00"), ts("11:00"), 0))
	})

	t.Run("cancelled is ignored", func(t *testing.T) {
		assert.False(t, HasConflict(bookings, ts("11:00"), ts("12:00"), 0))
	})

	t.Run("overlap with confirmed", func(t *testing.T) {
		got := FindConflict(bookings, ts("13:30"), ts("15:00"), 0)
		require.NotNil(t, got)
		assert.Equal(t, int64(3), got.ID)
	})

	t.Run("self is excluded", func(t *testing.T) {
		assert.False(t, HasConflict(bookings, ts("13:30"), ts("14:30"), 3))
	})

	t.Run("excluding other id still conflicts", func(t *testing.T) {
		assert.True(t, HasConflict(bookings, ts("13:30"), ts("14:30"), 1))
	})
}

func TestIsOccupied(t *testing.T) {
	bookings := []*domain.Booking{
		booking(1, "10:00", "11:00", domain.StatusConfirmed),
		booking(2, "12:00", "13:00", domain.StatusCancelled),
	}

	assert.False(t, IsOccupied(bookings, ts("09:59")))
	assert.True(t, IsOccupied(bookings, ts("10:00")))
	assert.True(t, IsOccupied(bookings, ts("10:59")))
	assert.False(t, IsOccupied(bookings, ts("11:00")))
	assert.False(t, IsOccupied(bookings, ts("12:30")))
	assert.False(t, IsOccupied(nil, ts("10:30")))
}

func TestFreeWindows(t *testing.T) {
	t.Run("empty day", func(t *testing.T) {
		got := FreeWindows(nil, ts("09:00"), ts("18:00"))
		assert.Equal(t, []domain.TimeRange{{Start: ts("09:00"), End: ts("18:00")}}, got)
	})

	t.Run("gaps between bookings", func(t *testing.T) {
		bookings := []*domain.Booking{
			booking(2, "13:00", "14:00", domain.StatusConfirmed),
			booking(1, "09:00", "10:00", domain.StatusConfirmed),
			booking(3, "10:00", "11:30", domain.StatusConfirmed),
			booking(4, "15:00", "16:00", domain.StatusCancelled),
		}

		got := FreeWindows(bookings, ts("09:00"), ts("18:00"))
		assert.Equal(t, []domain.TimeRange{
			{Start: ts("11:30"), End: ts("13:00")},
			{Start: ts("14:00"), End: ts("18:00")},
		}, got)
	})

	t.Run("booking reaches close", func(t *testing.T) {
		bookings := []*domain.Booking{booking(1, "17:00", "18:01", domain.StatusConfirmed)}

		got := FreeWindows(bookings, ts("09:00"), ts("18:00"))
		assert.Equal(t, []domain.TimeRange{{Start: ts("09:00"), End: ts("17:00")}}, got)
	})
}
