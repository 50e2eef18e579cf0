package schedule

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

var (
	// ErrInvalidTime некорректный формат даты/времени или конец не позже начала
	ErrInvalidTime = fmt.Errorf("schedule: %w", domain.ErrInvalidTime)

	// ErrPastTime начало слота уже прошло (с учетом буфера)
	ErrPastTime = fmt.Errorf("schedule: %w", domain.ErrPastTime)

	// ErrOutsideWorkingHours слот выходит за рабочие часы
	ErrOutsideWorkingHours = fmt.Errorf("schedule: %w", domain.ErrOutsideWorkingHours)

	// ErrInvalidRules некорректная конфигурация рабочего дня
	ErrInvalidRules = errors.New("schedule: invalid working day rules")
)
