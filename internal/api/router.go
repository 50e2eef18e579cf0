package api

import (
	"net/http"

	"github.com/gorilla/mux"

	cancelBookingHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/create_booking"
	createSessionHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/create_session"
	deleteSessionHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/delete_session"
	getBookingHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/get_booking"
	getDayScheduleHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/get_day_schedule"
	getMyBookingsHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/get_my_bookings"
	getRoomAvailabilityHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/get_room_availability"
	getRoomScheduleHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/get_room_schedule"
	getRoomsStatusHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/get_rooms_status"
	getScheduleConfigHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/get_schedule_config"
	getSessionHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/get_session"
	listRoomsHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/list_rooms"
	updateBookingHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/update_booking"
	"github.com/m04kA/SMC-RoomBooking/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBooking/internal/schedule"
	bookingsService "github.com/m04kA/SMC-RoomBooking/internal/service/bookings"
	createBookingUC "github.com/m04kA/SMC-RoomBooking/internal/usecase/create_booking"
	getRoomAvailabilityUC "github.com/m04kA/SMC-RoomBooking/internal/usecase/get_room_availability"
	getRoomStatusUC "github.com/m04kA/SMC-RoomBooking/internal/usecase/get_room_status"
	updateBookingUC "github.com/m04kA/SMC-RoomBooking/internal/usecase/update_booking"
	"github.com/m04kA/SMC-RoomBooking/pkg/logger"
	"github.com/m04kA/SMC-RoomBooking/pkg/metrics"
)

// Dependencies все, что нужно HTTP API
type Dependencies struct {
	Bookings            *bookingsService.Service
	CreateBooking       *createBookingUC.UseCase
	UpdateBooking       *updateBookingUC.UseCase
	GetRoomAvailability *getRoomAvailabilityUC.UseCase
	GetRoomStatus       *getRoomStatusUC.UseCase
	Schedule            *schedule.Validator
	Sessions            *middleware.SessionManager

	// Metrics nil отключает метрики и /metrics
	Metrics     *metrics.Metrics
	MetricsPath string

	Logger *logger.Logger
}

// NewRouter собирает маршруты /api/v1
func NewRouter(d Dependencies) *mux.Router {
	log := d.Logger

	createBooking := createBookingHandler.NewHandler(d.CreateBooking, log)
	updateBooking := updateBookingHandler.NewHandler(d.UpdateBooking, log)
	cancelBooking := cancelBookingHandler.NewHandler(d.Bookings, log)
	getBooking := getBookingHandler.NewHandler(d.Bookings, log)
	getMyBookings := getMyBookingsHandler.NewHandler(d.Bookings, log)
	getRoomSchedule := getRoomScheduleHandler.NewHandler(d.Bookings, log)
	getDaySchedule := getDayScheduleHandler.NewHandler(d.Bookings, log)
	getRoomAvailability := getRoomAvailabilityHandler.NewHandler(d.GetRoomAvailability, log)
	listRooms := listRoomsHandler.NewHandler(d.GetRoomStatus, log)
	getRoomsStatus := getRoomsStatusHandler.NewHandler(d.GetRoomStatus, log)
	getScheduleConfig := getScheduleConfigHandler.NewHandler(d.Schedule)
	createSession := createSessionHandler.NewHandler(d.Sessions, log)
	deleteSession := deleteSessionHandler.NewHandler(d.Sessions)

	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

	if d.Metrics != nil {
		r.Use(middleware.Metrics(d.Metrics))
		r.Handle(d.MetricsPath, d.Metrics.Handler()).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/session", createSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/session", deleteSession.Handle).Methods(http.MethodDelete)

	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/status", getRoomsStatus.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId:[0-9]+}/schedule", getRoomSchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId:[0-9]+}/availability", getRoomAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule", getDaySchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule/config", getScheduleConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// SESSION ROUTES (подписанная cookie с именем и организацией)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.RequireSession(d.Sessions))

	protected.HandleFunc("/session", getSessionHandler.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/rooms/{roomId:[0-9]+}/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/my", getMyBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}", updateBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}", cancelBooking.Handle).Methods(http.MethodDelete)

	return r
}
