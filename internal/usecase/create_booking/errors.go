package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных (пустой пользователь, ID комнаты)
	ErrInvalidInput = fmt.Errorf("create_booking: invalid input data: %w", domain.ErrInvalidRequest)

	// ErrRoomNotFound возвращается, когда комнаты нет в справочнике
	ErrRoomNotFound = fmt.Errorf("create_booking: room not found: %w", domain.ErrNotFound)

	// ErrSlotNotAvailable возвращается, когда интервал пересекается с подтвержденным бронированием
	ErrSlotNotAvailable = fmt.Errorf("create_booking: slot is not available: %w", domain.ErrRoomUnavailable)

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = fmt.Errorf("create_booking: internal error: %w", domain.ErrStorage)
)
