package get_session

import (
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/api/middleware"
)

// ProfileResponse HTTP response model
type ProfileResponse struct {
	Name string `json:"name"`
	Org  string `json:"org"`
}

// Handle GET /api/v1/session
func Handle(w http.ResponseWriter, r *http.Request) {
	requester, _ := middleware.RequesterFromContext(r.Context())
	handlers.RespondJSON(w, http.StatusOK, ProfileResponse{Name: requester.Name, Org: requester.Org})
}
