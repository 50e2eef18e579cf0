package get_day_schedule

import "github.com/m04kA/SMC-RoomBooking/internal/service/bookings/models"

// DayScheduleResponse расписание всех комнат на дату
type DayScheduleResponse struct {
	Date  string                         `json:"date"`
	Rooms []*models.RoomScheduleResponse `json:"rooms"`
}
