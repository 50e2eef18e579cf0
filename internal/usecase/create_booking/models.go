package create_booking

import (
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// Request модель запроса на создание бронирования.
// Дата и время приходят строками как от фронтенда, разбор выполняет валидатор слота.
type Request struct {
	RoomID    int64
	Date      string // YYYY-MM-DD
	StartTime string // HH:MM
	EndTime   string // HH:MM
	Requester domain.Requester
	Purpose   string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64
	RoomID        int64
	RoomName      string
	Date          time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	RequesterName string
	RequesterOrg  string
	Purpose       string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:            b.ID,
		RoomID:        b.RoomID,
		RoomName:      b.RoomName,
		Date:          b.Date,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		RequesterName: b.RequesterName,
		RequesterOrg:  b.RequesterOrg,
		Purpose:       b.Purpose,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
