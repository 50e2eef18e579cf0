package update_booking

import (
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	updateBooking "github.com/m04kA/SMC-RoomBooking/internal/usecase/update_booking"
)

// UpdateBookingRequest HTTP request model. Комната не меняется.
type UpdateBookingRequest struct {
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
	UpdatedAt     string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID int64, requester domain.Requester) *updateBooking.Request {
	return &updateBooking.Request{
		BookingID: bookingID,
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Purpose:   r.Purpose,
		Requester: requester,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *BookingResponse {
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
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
