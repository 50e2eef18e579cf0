package schedule

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// Validator проверяет запрошенный слот. Не обращается к хранилищу и часам,
// текущее время передается явно.
type Validator struct {
	rules Rules
	loc   *time.Location
}

// NewValidator создает валидатор. Все даты и время трактуются в зоне loc.
func NewValidator(rules Rules, loc *time.Location) *Validator {
	if loc == nil {
		loc = time.UTC
	}
	return &Validator{rules: rules, loc: loc}
}

func (v *Validator) Rules() Rules {
	return v.rules
}

func (v *Validator) Location() *time.Location {
	return v.loc
}

// Today гражданская дата момента now в зоне валидатора
func (v *Validator) Today(now time.Time) time.Time {
	local := now.In(v.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate разбирает дату YYYY-MM-DD
func ParseDate(date string) (time.Time, error) {
	d, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q", ErrInvalidTime, date)
	}
	return d, nil
}

// Validate проверяет слот. Правила применяются по порядку, возвращается первое нарушение:
//  1. формат даты и времени
//  2. конец строго позже начала
//  3. начало не в прошлом
//  4. рабочие часы
func (v *Validator) Validate(date, start, end string, now time.Time) (domain.Slot, error) {
	d, err := ParseDate(date)
	if err != nil {
		return domain.Slot{}, err
	}

	startTime, err := types.NewTimeStringFromString(start)
	if err != nil {
		return domain.Slot{}, fmt.Errorf("%w: start %q", ErrInvalidTime, start)
	}

	endTime, err := types.NewTimeStringFromString(end)
	if err != nil {
		return domain.Slot{}, fmt.Errorf("%w: end %q", ErrInvalidTime, end)
	}

	if !endTime.IsAfter(startTime) {
		return domain.Slot{}, fmt.Errorf("%w: end %s must be after start %s", ErrInvalidTime, endTime, startTime)
	}

	if v.IsPast(d, startTime, now) {
		return domain.Slot{}, fmt.Errorf("%w: %s %s", ErrPastTime, date, startTime)
	}

	if err := v.checkWorkingHours(startTime, endTime); err != nil {
		return domain.Slot{}, err
	}

	return domain.Slot{Date: d, StartTime: startTime, EndTime: endTime}, nil
}

// IsPast true, если начало не позже now + буфер.
// В тот же день дополнительно сравниваются минуты, чтобы секунды now не давали поблажки.
func (v *Validator) IsPast(date time.Time, start types.TimeString, now time.Time) bool {
	local := now.In(v.loc)
	buffer := time.Duration(v.rules.PastBufferMinutes) * time.Minute

	if !start.On(date, v.loc).After(local.Add(buffer)) {
		return true
	}

	if sameDate(date, local) {
		nowMinutes := local.Hour()*60 + local.Minute()
		if start.Minutes() <= nowMinutes+v.rules.PastBufferMinutes {
			return true
		}
	}

	return false
}

func (v *Validator) checkWorkingHours(start, end types.TimeString) error {
	r := v.rules

	if start.IsBefore(r.Open) || start.IsAfter(r.LastStart) {
		return fmt.Errorf("%w: start %s not in [%s, %s]", ErrOutsideWorkingHours, start, r.Open, r.LastStart)
	}

	closeLimit := r.Close.Minutes() + r.EndGraceMinutes
	if end.IsBefore(r.MinEnd) || end.Minutes() > closeLimit {
		return fmt.Errorf("%w: end %s not in [%s, %s+%dm]", ErrOutsideWorkingHours, end, r.MinEnd, r.Close, r.EndGraceMinutes)
	}

	return nil
}

func sameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
