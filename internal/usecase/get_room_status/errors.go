package get_room_status

import (
	"fmt"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("get_room_status: invalid input data: %w", domain.ErrInvalidRequest)

	// ErrRoomNotFound возвращается, когда комнаты нет в справочнике
	ErrRoomNotFound = fmt.Errorf("get_room_status: room not found: %w", domain.ErrNotFound)

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = fmt.Errorf("get_room_status: internal error: %w", domain.ErrStorage)
)
