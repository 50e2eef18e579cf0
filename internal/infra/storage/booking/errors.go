package booking

import (
	"fmt"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда подтвержденное бронирование не найдено
	ErrBookingNotFound = fmt.Errorf("booking.repository: booking not found: %w", domain.ErrNotFound)

	// ErrSlotNotAvailable возвращается при нарушении ограничения на пересечение интервалов
	ErrSlotNotAvailable = fmt.Errorf("booking.repository: slot not available: %w", domain.ErrRoomUnavailable)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = fmt.Errorf("booking.repository: failed to build query: %w", domain.ErrStorage)

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = fmt.Errorf("booking.repository: failed to execute query: %w", domain.ErrStorage)

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = fmt.Errorf("booking.repository: failed to scan row: %w", domain.ErrStorage)
)
