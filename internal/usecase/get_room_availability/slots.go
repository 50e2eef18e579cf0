package get_room_availability

import (
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/schedule"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// generateStartOptions генерирует сетку времен начала от открытия до последнего допустимого начала.
// Отбрасываются прошедшие (с учетом буфера) и попадающие внутрь занятых интервалов.
func generateStartOptions(
	validator *schedule.Validator,
	bookings []*domain.Booking,
	date time.Time,
	now time.Time,
	step int,
) []types.TimeString {
	rules := validator.Rules()
	options := make([]types.TimeString, 0)

	for current := rules.Open; !current.IsAfter(rules.LastStart); {
		if !validator.IsPast(date, current, now) && !schedule.IsOccupied(bookings, current) {
			options = append(options, current)
		}

		next, err := current.AddMinutes(step)
		if err != nil {
			break
		}
		current = next
	}

	return options
}

func toOccupied(bookings []*domain.Booking) []OccupiedSlot {
	result := make([]OccupiedSlot, 0, len(bookings))
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		result = append(result, OccupiedSlot{
			BookingID:     b.ID,
			Start:         b.StartTime,
			End:           b.EndTime,
			RequesterName: b.RequesterName,
			RequesterOrg:  b.RequesterOrg,
			Purpose:       b.Purpose,
		})
	}
	return result
}
