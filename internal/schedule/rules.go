package schedule

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// Rules рабочий день переговорных
type Rules struct {
	Open              types.TimeString // самое раннее начало
	LastStart         types.TimeString // самое позднее начало
	MinEnd            types.TimeString // самое раннее окончание
	Close             types.TimeString // конец рабочего дня
	EndGraceMinutes   int              // допуск окончания после Close
	PastBufferMinutes int              // начало должно быть позже now + буфер
}

// DefaultRules 09:00–18:00, последнее начало 17:45
func DefaultRules() Rules {
	return Rules{
		Open:              types.MustTimeString(domain.DefaultOpenTime),
		LastStart:         types.MustTimeString(domain.DefaultLastStartTime),
		MinEnd:            types.MustTimeString(domain.DefaultMinEndTime),
		Close:             types.MustTimeString(domain.DefaultCloseTime),
		EndGraceMinutes:   domain.DefaultEndGraceMinutes,
		PastBufferMinutes: domain.DefaultPastBufferMinutes,
	}
}

// NewRules собирает правила из строк конфигурации и проверяет их согласованность
func NewRules(open, lastStart, minEnd, closeTime string, endGraceMinutes, pastBufferMinutes int) (Rules, error) {
	var (
		r   Rules
		err error
	)

	if r.Open, err = types.NewTimeStringFromString(open); err != nil {
		return Rules{}, fmt.Errorf("%w: open: %v", ErrInvalidRules, err)
	}
	if r.LastStart, err = types.NewTimeStringFromString(lastStart); err != nil {
		return Rules{}, fmt.Errorf("%w: last_start: %v", ErrInvalidRules, err)
	}
	if r.MinEnd, err = types.NewTimeStringFromString(minEnd); err != nil {
		return Rules{}, fmt.Errorf("%w: min_end: %v", ErrInvalidRules, err)
	}
	if r.Close, err = types.NewTimeStringFromString(closeTime); err != nil {
		return Rules{}, fmt.Errorf("%w: close: %v", ErrInvalidRules, err)
	}
	r.EndGraceMinutes = endGraceMinutes
	r.PastBufferMinutes = pastBufferMinutes

	if err := r.Validate(); err != nil {
		return Rules{}, err
	}
	return r, nil
}

// Validate проверяет порядок границ рабочего дня
func (r Rules) Validate() error {
	if r.LastStart.IsBefore(r.Open) {
		return fmt.Errorf("%w: last_start %s before open %s", ErrInvalidRules, r.LastStart, r.Open)
	}
	if !r.Close.IsAfter(r.Open) {
		return fmt.Errorf("%w: close %s not after open %s", ErrInvalidRules, r.Close, r.Open)
	}
	if r.MinEnd.IsAfter(r.Close) {
		return fmt.Errorf("%w: min_end %s after close %s", ErrInvalidRules, r.MinEnd, r.Close)
	}
	if r.EndGraceMinutes < 0 || r.PastBufferMinutes < 0 {
		return fmt.Errorf("%w: negative minutes", ErrInvalidRules)
	}
	return nil
}

// LoadLocation загружает часовой пояс по имени.
// Если база tz недоступна, возвращает фиксированное смещение.
func LoadLocation(name string, fallbackOffsetHours int) *time.Location {
	if name != "" {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	return time.FixedZone(fmt.Sprintf("UTC%+d", fallbackOffsetHours), fallbackOffsetHours*60*60)
}
