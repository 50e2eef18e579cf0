package get_schedule_config

import (
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/schedule"
)

type ScheduleProvider interface {
	Rules() schedule.Rules
	Location() *time.Location
}
