package get_room_availability

import (
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// DefaultStepMinutes шаг сетки времени начала
const DefaultStepMinutes = 10

// Request модель запроса занятости комнаты на дату
type Request struct {
	RoomID      int64
	Date        string // YYYY-MM-DD, обязательна
	StepMinutes int    // шаг сетки StartOptions, 0 = DefaultStepMinutes
}

// Response занятые интервалы, свободные окна и допустимые времена начала
type Response struct {
	RoomID   int64
	RoomName string
	Date     time.Time
	Occupied []OccupiedSlot
	Free     []domain.TimeRange

	// StartOptions времена начала по сетке, которые сейчас проходят
	// правила рабочего дня и не попадают внутрь занятого интервала
	StartOptions []types.TimeString
}

// OccupiedSlot занятый интервал
type OccupiedSlot struct {
	BookingID     int64
	Start         types.TimeString
	End           types.TimeString
	RequesterName string
	RequesterOrg  string
	Purpose       string
}
