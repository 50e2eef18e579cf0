package create_session

import (
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

const (
	msgInvalidRequestBody = "укажите имя и организацию (не короче 2 символов)"
	msgSessionFailed      = "не удалось сохранить сессию"
)

type Handler struct {
	sessions SessionManager
	logger   Logger
}

func NewHandler(sessions SessionManager, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
	}
}

// Handle POST /api/v1/session
// Повторный вызов меняет профиль.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /session - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	requester := domain.NewRequester(req.Name, req.Org)
	if !requester.IsValid() {
		h.logger.Warn("POST /session - Invalid requester: %q/%q", req.Name, req.Org)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.sessions.SetRequester(w, requester); err != nil {
		h.logger.Error("POST /session - Failed to encode session: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, domain.ReasonStorageError, msgSessionFailed)
		return
	}

	h.logger.Info("POST /session - Session created: requester=%s/%s", requester.Name, requester.Org)
	handlers.RespondJSON(w, http.StatusCreated, ProfileResponse{Name: requester.Name, Org: requester.Org})
}
