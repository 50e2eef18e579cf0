package bookings

import (
	"fmt"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено или уже отменено
	ErrBookingNotFound = fmt.Errorf("bookings: booking not found: %w", domain.ErrNotFound)

	// ErrRoomNotFound возвращается, когда комнаты нет в справочнике
	ErrRoomNotFound = fmt.Errorf("bookings: room not found: %w", domain.ErrNotFound)

	// ErrNotOwner возвращается, когда у пользователя нет прав на бронирование
	ErrNotOwner = fmt.Errorf("bookings: booking belongs to another requester: %w", domain.ErrNotOwner)

	// ErrInvalidDate возвращается, если дата не в формате YYYY-MM-DD
	ErrInvalidDate = fmt.Errorf("bookings: invalid date: %w", domain.ErrInvalidTime)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("bookings: invalid input data: %w", domain.ErrInvalidRequest)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = fmt.Errorf("bookings: internal error: %w", domain.ErrStorage)
)
