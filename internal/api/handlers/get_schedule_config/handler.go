package get_schedule_config

import (
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
)

type Handler struct {
	schedule ScheduleProvider
}

func NewHandler(schedule ScheduleProvider) *Handler {
	return &Handler{schedule: schedule}
}

// Handle GET /api/v1/schedule/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rules := h.schedule.Rules()

	handlers.RespondJSON(w, http.StatusOK, ScheduleConfigResponse{
		Timezone:          h.schedule.Location().String(),
		Open:              rules.Open.String(),
		LastStart:         rules.LastStart.String(),
		MinEnd:            rules.MinEnd.String(),
		Close:             rules.Close.String(),
		EndGraceMinutes:   rules.EndGraceMinutes,
		PastBufferMinutes: rules.PastBufferMinutes,
	})
}
