package domain

// Room is a bookable meeting room. Rooms are reference data and never change at runtime.
type Room struct {
	ID       int64
	Name     string
	Capacity int
	Features []string
}

// RoomStatus is the occupancy of a room at an instant
type RoomStatus string

const (
	RoomAvailable RoomStatus = "available"
	RoomOccupied  RoomStatus = "occupied"
)
