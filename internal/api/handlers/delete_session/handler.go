package delete_session

import "net/http"

type Handler struct {
	sessions SessionManager
}

func NewHandler(sessions SessionManager) *Handler {
	return &Handler{sessions: sessions}
}

// Handle DELETE /api/v1/session
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	w.WriteHeader(http.StatusNoContent)
}
