package get_room_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	getRoomAvailability "github.com/m04kA/SMC-RoomBooking/internal/usecase/get_room_availability"
)

const (
	msgInvalidRoomID = "некорректный ID комнаты"
	msgDateRequired  = "параметр date обязателен (YYYY-MM-DD)"
	msgInvalidStep   = "параметр step должен быть числом от 1 до 60"
)

type Handler struct {
	useCase GetRoomAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetRoomAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/availability?date=YYYY-MM-DD[&step=10]
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathInt64(r, "roomId")
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/availability - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	query := r.URL.Query()
	date := query.Get("date")
	if date == "" {
		h.logger.Warn("GET /rooms/{id}/availability - Missing date: room_id=%d", roomID)
		handlers.RespondBadRequest(w, msgDateRequired)
		return
	}

	var step int
	if raw := query.Get("step"); raw != "" {
		step, err = strconv.Atoi(raw)
		if err != nil || step < 1 || step > 60 {
			h.logger.Warn("GET /rooms/{id}/availability - Invalid step: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidStep)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getRoomAvailability.Request{
		RoomID:      roomID,
		Date:        date,
		StepMinutes: step,
	})
	if err != nil {
		if errors.Is(err, getRoomAvailability.ErrInternal) {
			h.logger.Error("GET /rooms/{id}/availability - Failed: room_id=%d, date=%s, error=%v", roomID, date, err)
		} else {
			h.logger.Warn("GET /rooms/{id}/availability - Rejected: room_id=%d, date=%s, error=%v", roomID, date, err)
		}
		handlers.RespondReason(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
