package get_room_status

import (
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// Request запрос занятости комнаты. Нулевой At означает "сейчас".
type Request struct {
	RoomID int64
	At     time.Time
}

// Response состояние одной комнаты
type Response struct {
	Room   domain.Room
	Status domain.RoomStatus
	At     time.Time // момент проверки в рабочем часовом поясе

	// Current текущее бронирование, если комната занята
	Current *CurrentBooking
}

// CurrentBooking бронирование, которое идет в момент проверки
type CurrentBooking struct {
	BookingID     int64
	Start         types.TimeString
	End           types.TimeString
	RequesterName string
	RequesterOrg  string
}
