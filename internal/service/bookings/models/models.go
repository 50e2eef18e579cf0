package models

import (
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/ptr"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            int64   `json:"id"`
	RoomID        int64   `json:"roomId"`
	RoomName      string  `json:"roomName"`
	Date          string  `json:"date"`      // "2025-10-15"
	StartTime     string  `json:"startTime"` // "10:00"
	EndTime       string  `json:"endTime"`   // "11:00"
	RequesterName string  `json:"requesterName"`
	RequesterOrg  string  `json:"requesterOrg"`
	Purpose       string  `json:"purpose,omitempty"`
	Status        string  `json:"status"`
	CancelledAt   *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// RoomResponse комната из справочника
type RoomResponse struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Capacity int      `json:"capacity"`
	Features []string `json:"features"`
}

// RoomScheduleResponse расписание комнаты на дату
type RoomScheduleResponse struct {
	Room     RoomResponse      `json:"room"`
	Date     string            `json:"date"`
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:            b.ID,
		RoomID:        b.RoomID,
		RoomName:      b.RoomName,
		Date:          b.Date.Format(domain.DateFormat),
		StartTime:     b.StartTime.String(),
		EndTime:       b.EndTime.String(),
		RequesterName: b.RequesterName,
		RequesterOrg:  b.RequesterOrg,
		Purpose:       b.Purpose,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		resp.CancelledAt = ptr.Ptr(b.CancelledAt.Format(time.RFC3339))
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}
	return resp
}

// FromDomainRoom конвертирует комнату в DTO
func FromDomainRoom(r domain.Room) RoomResponse {
	features := r.Features
	if features == nil {
		features = []string{}
	}
	return RoomResponse{
		ID:       r.ID,
		Name:     r.Name,
		Capacity: r.Capacity,
		Features: features,
	}
}
