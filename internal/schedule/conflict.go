package schedule

import (
	"sort"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// Overlaps проверяет пересечение полуоткрытых интервалов [aStart, aEnd) и [bStart, bEnd).
// Граничащие интервалы (10:00-11:00 и 11:00-12:00) не пересекаются.
func Overlaps(aStart, aEnd, bStart, bEnd types.TimeString) bool {
	return aStart.IsBefore(bEnd) && aEnd.IsAfter(bStart)
}

// FindConflict возвращает первое подтвержденное бронирование, пересекающееся с [start, end).
// Бронирование с excludeID не учитывается (0: ничего не исключать).
func FindConflict(bookings []*domain.Booking, start, end types.TimeString, excludeID int64) *domain.Booking {
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if excludeID != 0 && b.ID == excludeID {
			continue
		}
		if Overlaps(start, end, b.StartTime, b.EndTime) {
			return b
		}
	}
	return nil
}

// HasConflict true, если есть пересечение с подтвержденным бронированием
func HasConflict(bookings []*domain.Booking, start, end types.TimeString, excludeID int64) bool {
	return FindConflict(bookings, start, end, excludeID) != nil
}

// OccupiedBy возвращает подтвержденное бронирование, интервал которого содержит момент at
func OccupiedBy(bookings []*domain.Booking, at types.TimeString) *domain.Booking {
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if (domain.TimeRange{Start: b.StartTime, End: b.EndTime}).Contains(at) {
			return b
		}
	}
	return nil
}

// IsOccupied true, если комната занята в момент at
func IsOccupied(bookings []*domain.Booking, at types.TimeString) bool {
	return OccupiedBy(bookings, at) != nil
}

// SortByStart сортирует бронирования по времени начала
func SortByStart(bookings []*domain.Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].StartTime.IsBefore(bookings[j].StartTime)
	})
}

// FreeWindows возвращает свободные промежутки рабочего дня [open, closeTime)
// между подтвержденными бронированиями
func FreeWindows(bookings []*domain.Booking, open, closeTime types.TimeString) []domain.TimeRange {
	active := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.IsActive() {
			active = append(active, b)
		}
	}
	SortByStart(active)

	windows := make([]domain.TimeRange, 0)
	cursor := open

	for _, b := range active {
		if !b.EndTime.IsAfter(cursor) {
			continue
		}
		if b.StartTime.IsAfter(cursor) {
			end := b.StartTime
			if end.IsAfter(closeTime) {
				end = closeTime
			}
			if end.IsAfter(cursor) {
				windows = append(windows, domain.TimeRange{Start: cursor, End: end})
			}
		}
		cursor = b.EndTime
		if !cursor.IsBefore(closeTime) {
			return windows
		}
	}

	if cursor.IsBefore(closeTime) {
		windows = append(windows, domain.TimeRange{Start: cursor, End: closeTime})
	}

	return windows
}
