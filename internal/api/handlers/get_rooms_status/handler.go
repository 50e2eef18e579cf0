package get_rooms_status

import (
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
)

type Handler struct {
	useCase GetRoomStatusUseCase
	logger  Logger
}

func NewHandler(useCase GetRoomStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/status
// Ответ: {"1": "available", "2": "occupied"}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.useCase.ExecuteAll(r.Context(), time.Time{})
	if err != nil {
		h.logger.Error("GET /rooms/status - Failed to get statuses: %v", err)
		handlers.RespondReason(w, err)
		return
	}

	resp := make(map[string]string, len(statuses))
	for _, s := range statuses {
		resp[strconv.FormatInt(s.Room.ID, 10)] = string(s.Status)
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
