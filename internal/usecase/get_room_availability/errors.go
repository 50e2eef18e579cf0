package get_room_availability

import (
	"fmt"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("get_room_availability: invalid input data: %w", domain.ErrInvalidRequest)

	// ErrInvalidDate возвращается, если дата не в формате YYYY-MM-DD
	ErrInvalidDate = fmt.Errorf("get_room_availability: invalid date: %w", domain.ErrInvalidTime)

	// ErrRoomNotFound возвращается, когда комнаты нет в справочнике
	ErrRoomNotFound = fmt.Errorf("get_room_availability: room not found: %w", domain.ErrNotFound)

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = fmt.Errorf("get_room_availability: internal error: %w", domain.ErrStorage)
)
