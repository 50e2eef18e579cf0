package get_my_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/api/middleware"
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

// Handle GET /api/v1/bookings/my
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requester, _ := middleware.RequesterFromContext(r.Context())

	list, err := h.service.GetMyBookings(r.Context(), requester)
	if err != nil {
		h.logger.Error("GET /bookings/my - Failed to get bookings: requester=%s/%s, error=%v",
			requester.Name, requester.Org, err)
		handlers.RespondReason(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}
