package list_rooms

import (
	getRoomStatus "github.com/m04kA/SMC-RoomBooking/internal/usecase/get_room_status"
)

// RoomResponse комната с текущим состоянием
type RoomResponse struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Capacity int             `json:"capacity"`
	Features []string        `json:"features"`
	Status   string          `json:"status"`
	Current  *CurrentBooking `json:"currentBooking,omitempty"`
}

// CurrentBooking встреча, которая идет сейчас
type CurrentBooking struct {
	ID            int64  `json:"id"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	RequesterName string `json:"requesterName"`
	RequesterOrg  string `json:"requesterOrg"`
}

// RoomListResponse HTTP response model
type RoomListResponse struct {
	At    string         `json:"at"`
	Rooms []RoomResponse `json:"rooms"`
}

func fromUseCaseResponse(resp *getRoomStatus.Response) RoomResponse {
	features := resp.Room.Features
	if features == nil {
		features = []string{}
	}

	room := RoomResponse{
		ID:       resp.Room.ID,
		Name:     resp.Room.Name,
		Capacity: resp.Room.Capacity,
		Features: features,
		Status:   string(resp.Status),
	}
	if resp.Current != nil {
		room.Current = &CurrentBooking{
			ID:            resp.Current.BookingID,
			StartTime:     resp.Current.Start.String(),
			EndTime:       resp.Current.End.String(),
			RequesterName: resp.Current.RequesterName,
			RequesterOrg:  resp.Current.RequesterOrg,
		}
	}
	return room
}
