package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-RoomBooking/internal/usecase/create_booking"
)

const (
	msgInvalidRoomID      = "некорректный ID комнаты"
	msgInvalidRequestBody = "некорректное тело запроса: нужны date (YYYY-MM-DD), startTime и endTime (HH:MM)"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/rooms/{roomId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requester, _ := middleware.RequesterFromContext(r.Context())

	roomID, err := handlers.PathInt64(r, "roomId")
	if err != nil {
		h.logger.Warn("POST /rooms/{id}/bookings - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms/{id}/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(roomID, requester))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /rooms/{id}/bookings - Slot not available: room_id=%d, date=%s %s-%s",
				roomID, req.Date, req.StartTime, req.EndTime)
		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /rooms/{id}/bookings - Room not found: room_id=%d", roomID)
		case errors.Is(err, createBooking.ErrInternal):
			h.logger.Error("POST /rooms/{id}/bookings - Failed to create booking: room_id=%d, error=%v", roomID, err)
		default:
			h.logger.Warn("POST /rooms/{id}/bookings - Rejected: room_id=%d, error=%v", roomID, err)
		}
		handlers.RespondReason(w, err)
		return
	}

	h.logger.Info("POST /rooms/{id}/bookings - Booking created successfully: booking_id=%d, room_id=%d, requester=%s/%s",
		result.ID, roomID, requester.Name, requester.Org)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
