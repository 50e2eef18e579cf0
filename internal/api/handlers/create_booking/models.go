package create_booking

import (
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-RoomBooking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model. Пользователь берется из сессии.
type CreateBookingRequest struct {
	Date      string `json:"date" validate:"required"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
	Purpose   string `json:"purpose" validate:"max=500"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64  `json:"id"`
	RoomID        int64  `json:"roomId"`
	RoomName      string `json:"roomName"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	RequesterName string `json:"requesterName"`
	RequesterOrg  string `json:"requesterOrg"`
	Purpose       string `json:"purpose,omitempty"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(roomID int64, requester domain.Requester) *createBooking.Request {
	return &createBooking.Request{
		RoomID:    roomID,
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Requester: requester,
		Purpose:   r.Purpose,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		RoomID:        resp.RoomID,
		RoomName:      resp.RoomName,
		Date:          resp.Date.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		EndTime:       resp.EndTime.String(),
		RequesterName: resp.RequesterName,
		RequesterOrg:  resp.RequesterOrg,
		Purpose:       resp.Purpose,
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
