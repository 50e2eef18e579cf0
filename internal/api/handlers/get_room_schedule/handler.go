package get_room_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/service/bookings"
)

const msgInvalidRoomID = "некорректный ID комнаты"

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

// Handle GET /api/v1/rooms/{roomId}/schedule?date=YYYY-MM-DD
// Без даты возвращает расписание на сегодня.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathInt64(r, "roomId")
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/schedule - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	sched, err := h.service.GetRoomSchedule(r.Context(), roomID, r.URL.Query().Get("date"))
	if err != nil {
		if errors.Is(err, bookings.ErrInternal) {
			h.logger.Error("GET /rooms/{id}/schedule - Failed to get schedule: room_id=%d, error=%v", roomID, err)
		} else {
			h.logger.Warn("GET /rooms/{id}/schedule - Rejected: room_id=%d, error=%v", roomID, err)
		}
		handlers.RespondReason(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, sched)
}
