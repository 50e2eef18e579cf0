package get_day_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/service/bookings"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	rooms, err := h.service.GetDaySchedule(r.Context(), date)
	if err != nil {
		if errors.Is(err, bookings.ErrInternal) {
			h.logger.Error("GET /schedule - Failed to get schedule: date=%q, error=%v", date, err)
		} else {
			h.logger.Warn("GET /schedule - Rejected: date=%q, error=%v", date, err)
		}
		handlers.RespondReason(w, err)
		return
	}

	resp := DayScheduleResponse{Rooms: rooms}
	if len(rooms) > 0 {
		resp.Date = rooms[0].Date
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}
