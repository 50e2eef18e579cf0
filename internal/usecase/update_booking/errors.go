package update_booking

import (
	"fmt"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("update_booking: invalid input data: %w", domain.ErrInvalidRequest)

	// ErrBookingNotFound возвращается, когда подтвержденное бронирование не найдено
	ErrBookingNotFound = fmt.Errorf("update_booking: booking not found: %w", domain.ErrNotFound)

	// ErrNotOwner возвращается, когда бронирование принадлежит другому пользователю
	ErrNotOwner = fmt.Errorf("update_booking: booking belongs to another requester: %w", domain.ErrNotOwner)

	// ErrSlotNotAvailable возвращается, когда новый интервал пересекается с другим бронированием
	ErrSlotNotAvailable = fmt.Errorf("update_booking: slot is not available: %w", domain.ErrRoomUnavailable)

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = fmt.Errorf("update_booking: internal error: %w", domain.ErrStorage)
)
