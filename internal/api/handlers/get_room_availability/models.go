package get_room_availability

import (
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	getRoomAvailability "github.com/m04kA/SMC-RoomBooking/internal/usecase/get_room_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	RoomID       int64          `json:"roomId"`
	RoomName     string         `json:"roomName"`
	Date         string         `json:"date"`
	Occupied     []OccupiedSlot `json:"occupiedSlots"`
	Free         []FreeWindow   `json:"freeWindows"`
	StartOptions []string       `json:"startOptions"`
}

// OccupiedSlot занятый интервал
type OccupiedSlot struct {
	BookingID     int64  `json:"bookingId"`
	Start         string `json:"start"`
	End           string `json:"end"`
	RequesterName string `json:"requesterName"`
	RequesterOrg  string `json:"requesterOrg"`
	Purpose       string `json:"purpose,omitempty"`
}

// FreeWindow свободное окно рабочего дня
type FreeWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getRoomAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		RoomID:       resp.RoomID,
		RoomName:     resp.RoomName,
		Date:         resp.Date.Format(domain.DateFormat),
		Occupied:     make([]OccupiedSlot, 0, len(resp.Occupied)),
		Free:         make([]FreeWindow, 0, len(resp.Free)),
		StartOptions: make([]string, 0, len(resp.StartOptions)),
	}

	for _, o := range resp.Occupied {
		out.Occupied = append(out.Occupied, OccupiedSlot{
			BookingID:     o.BookingID,
			Start:         o.Start.String(),
			End:           o.End.String(),
			RequesterName: o.RequesterName,
			RequesterOrg:  o.RequesterOrg,
			Purpose:       o.Purpose,
		})
	}
	for _, f := range resp.Free {
		out.Free = append(out.Free, FreeWindow{Start: f.Start.String(), End: f.End.String()})
	}
	for _, s := range resp.StartOptions {
		out.StartOptions = append(out.StartOptions, s.String())
	}

	return out
}
