package list_rooms

import (
	"net/http"
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

// Handle GET /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.useCase.ExecuteAll(r.Context(), time.Time{})
	if err != nil {
		h.logger.Error("GET /rooms - Failed to get rooms: %v", err)
		handlers.RespondReason(w, err)
		return
	}

	resp := RoomListResponse{Rooms: make([]RoomResponse, 0, len(statuses))}
	for _, s := range statuses {
		resp.Rooms = append(resp.Rooms, fromUseCaseResponse(s))
		resp.At = s.At.Format(time.RFC3339)
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
