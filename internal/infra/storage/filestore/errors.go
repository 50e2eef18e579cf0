package filestore

import (
	"fmt"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда подтвержденное бронирование не найдено
	ErrBookingNotFound = fmt.Errorf("filestore: booking not found: %w", domain.ErrNotFound)

	// ErrRead возвращается при ошибке чтения или разбора файла
	ErrRead = fmt.Errorf("filestore: failed to read bookings: %w", domain.ErrStorage)

	// ErrWrite возвращается при ошибке записи файла, состояние на диске не меняется
	ErrWrite = fmt.Errorf("filestore: failed to write bookings: %w", domain.ErrStorage)

	// ErrLock возвращается, если не удалось захватить файл хранилища
	ErrLock = fmt.Errorf("filestore: failed to lock bookings: %w", domain.ErrStorage)

	// ErrCorruptRecord возвращается, если запись в файле не разбирается
	ErrCorruptRecord = fmt.Errorf("filestore: corrupt booking record: %w", domain.ErrStorage)
)
