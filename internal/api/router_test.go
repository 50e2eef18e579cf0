package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/internal/api"
	"github.com/m04kA/SMC-RoomBooking/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/infra/storage/filestore"
	"github.com/m04kA/SMC-RoomBooking/internal/infra/storage/room"
	"github.com/m04kA/SMC-RoomBooking/internal/schedule"
	bookingsService "github.com/m04kA/SMC-RoomBooking/internal/service/bookings"
	createBookingUC "github.com/m04kA/SMC-RoomBooking/internal/usecase/create_booking"
	getRoomAvailabilityUC "github.com/m04kA/SMC-RoomBooking/internal/usecase/get_room_availability"
	getRoomStatusUC "github.com/m04kA/SMC-RoomBooking/internal/usecase/get_room_status"
	updateBookingUC "github.com/m04kA/SMC-RoomBooking/internal/usecase/update_booking"
	"github.com/m04kA/SMC-RoomBooking/pkg/keylock"
	"github.com/m04kA/SMC-RoomBooking/pkg/logger"
	"github.com/m04kA/SMC-RoomBooking/pkg/metrics"
	"github.com/m04kA/SMC-RoomBooking/pkg/simpletxmanager"
)

var loc = time.FixedZone("UTC+5", 5*60*60)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := filestore.New(t.TempDir())
	require.NoError(t, err)

	rooms := room.NewStatic([]domain.Room{
		{ID: 1, Name: "Каспий", Capacity: 12, Features: []string{"проектор"}},
		{ID: 2, Name: "Алатау", Capacity: 6},
	})
	validator := schedule.NewValidator(schedule.DefaultRules(), loc)
	locker := keylock.New()
	tx := simpletxmanager.NewTransactionManager()
	m := metrics.New("roombooking_test")
	log := logger.Nop()

	router := api.NewRouter(api.Dependencies{
		Bookings:            bookingsService.NewService(store, rooms, validator, locker, tx, m, log),
		CreateBooking:       createBookingUC.NewUseCase(store, rooms, validator, locker, tx, m, log),
		UpdateBooking:       updateBookingUC.NewUseCase(store, validator, locker, tx, m, log),
		GetRoomAvailability: getRoomAvailabilityUC.NewUseCase(store, rooms, validator, log),
		GetRoomStatus:       getRoomStatusUC.NewUseCase(store, rooms, validator, log),
		Schedule:            validator,
		Sessions:            middleware.NewSessionManager([]byte(strings.Repeat("h", 32)), nil, time.Hour, false),
		Metrics:             m,
		MetricsPath:         "/metrics",
		Logger:              log,
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func login(t *testing.T, srv *httptest.Server, c *http.Client, name, org string) {
	t.Helper()
	resp := do(t, c, http.MethodPost, srv.URL+"/api/v1/session", map[string]string{"name": name, "org": org})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func do(t *testing.T, c *http.Client, method, url string, body interface{}) *http.Response {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, url, r)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, dst interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}

func reasonOf(t *testing.T, resp *http.Response) string {
	t.Helper()
	var e struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	decode(t, resp, &e)
	assert.NotEmpty(t, e.Message)
	return e.Error
}

func futureDate() string {
	return time.Now().In(loc).AddDate(0, 0, 7).Format(domain.DateFormat)
}

func TestAPI_Session(t *testing.T) {
	srv := newServer(t)
	c := newClient(t)

	resp := do(t, c, http.MethodGet, srv.URL+"/api/v1/bookings/my", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = do(t, c, http.MethodPost, srv.URL+"/api/v1/session", map[string]string{"name": "A", "org": "Kaspi"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid_request", reasonOf(t, resp))

	login(t, srv, c, "  Anna ", "Kaspi")

	resp = do(t, c, http.MethodGet, srv.URL+"/api/v1/session", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var profile map[string]string
	decode(t, resp, &profile)
	assert.Equal(t, map[string]string{"name": "Anna", "org": "Kaspi"}, profile)
	assert.NotEmpty(t, resp.Header.Get(middleware.HeaderRequestID))

	resp = do(t, c, http.MethodDelete, srv.URL+"/api/v1/session", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, c, http.MethodGet, srv.URL+"/api/v1/session", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_BookingLifecycle(t *testing.T) {
	srv := newServer(t)
	anna, erzhan := newClient(t), newClient(t)
	login(t, srv, anna, "Anna", "Kaspi")
	login(t, srv, erzhan, "Ержан", "Halyk")
	date := futureDate()

	// создание
	resp := do(t, anna, http.MethodPost, srv.URL+"/api/v1/rooms/1/bookings", map[string]string{
		"date": date, "startTime": "10:00", "endTime": "11:00", "purpose": "планерка",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		ID        int64  `json:"id"`
		RoomName  string `json:"roomName"`
		Status    string `json:"status"`
		StartTime string `json:"startTime"`
	}
	decode(t, resp, &created)
	assert.Equal(t, "Каспий", created.RoomName)
	assert.Equal(t, "confirmed", created.Status)
	id := func(path string) string { return srv.URL + "/api/v1/bookings/" + path }
	bookingURL := id(strconv.FormatInt(created.ID, 10))

	// пересечение
	resp = do(t, erzhan, http.MethodPost, srv.URL+"/api/v1/rooms/1/bookings", map[string]string{
		"date": date, "startTime": "10:30", "endTime": "11:30",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "room_unavailable", reasonOf(t, resp))

	// смежный интервал
	resp = do(t, erzhan, http.MethodPost, srv.URL+"/api/v1/rooms/1/bookings", map[string]string{
		"date": date, "startTime": "11:00", "endTime": "12:00",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// расписание
	resp = do(t, anna, http.MethodGet, srv.URL+"/api/v1/rooms/1/schedule?date="+date, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var sched struct {
		Bookings []struct {
			StartTime string `json:"startTime"`
		} `json:"bookings"`
	}
	decode(t, resp, &sched)
	require.Len(t, sched.Bookings, 2)
	assert.Equal(t, "10:00", sched.Bookings[0].StartTime)
	assert.Equal(t, "11:00", sched.Bookings[1].StartTime)

	// занятость
	resp = do(t, anna, http.MethodGet, srv.URL+"/api/v1/rooms/1/availability?date="+date+"&step=30", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var avail struct {
		Occupied     []map[string]interface{} `json:"occupiedSlots"`
		Free         []map[string]string      `json:"freeWindows"`
		StartOptions []string                 `json:"startOptions"`
	}
	decode(t, resp, &avail)
	assert.Len(t, avail.Occupied, 2)
	assert.Equal(t, []map[string]string{
		{"start": "09:00", "end": "10:00"},
		{"start": "12:00", "end": "18:00"},
	}, avail.Free)
	assert.NotContains(t, avail.StartOptions, "10:30")

	// чужое бронирование
	resp = do(t, erzhan, http.MethodGet, bookingURL, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp = do(t, erzhan, http.MethodPut, bookingURL, map[string]string{
		"date": date, "startTime": "14:00", "endTime": "15:00",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "not_owner", reasonOf(t, resp))
	resp = do(t, erzhan, http.MethodDelete, bookingURL, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// перенос владельцем
	resp = do(t, anna, http.MethodPut, bookingURL, map[string]string{
		"date": date, "startTime": "14:00", "endTime": "15:30",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated struct {
		StartTime string `json:"startTime"`
		EndTime   string `json:"endTime"`
	}
	decode(t, resp, &updated)
	assert.Equal(t, "14:00", updated.StartTime)
	assert.Equal(t, "15:30", updated.EndTime)

	// мои бронирования
	resp = do(t, anna, http.MethodGet, id("my"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var mine struct {
		Bookings []map[string]interface{} `json:"bookings"`
	}
	decode(t, resp, &mine)
	assert.Len(t, mine.Bookings, 1)

	// отмена
	resp = do(t, anna, http.MethodDelete, bookingURL, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = do(t, anna, http.MethodDelete, bookingURL, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, anna, http.MethodGet, id("my"), nil)
	decode(t, resp, &mine)
	assert.Empty(t, mine.Bookings)
}

func TestAPI_CreateRejections(t *testing.T) {
	srv := newServer(t)
	c := newClient(t)
	login(t, srv, c, "Anna", "Kaspi")
	date := futureDate()
	yesterday := time.Now().In(loc).AddDate(0, 0, -1).Format(domain.DateFormat)

	tests := []struct {
		name   string
		room   string
		body   interface{}
		status int
		reason string
	}{
		{name: "reversed", room: "1", body: map[string]string{"date": date, "startTime": "11:00", "endTime": "10:00"}, status: http.StatusBadRequest, reason: "invalid_time"},
		{name: "bad date", room: "1", body: map[string]string{"date": "01.02.2025", "startTime": "10:00", "endTime": "11:00"}, status: http.StatusBadRequest, reason: "invalid_time"},
		{name: "past", room: "1", body: map[string]string{"date": yesterday, "startTime": "10:00", "endTime": "11:00"}, status: http.StatusBadRequest, reason: "cannot_book_past_time"},
		{name: "early", room: "1", body: map[string]string{"date": date, "startTime": "08:00", "endTime": "09:30"}, status: http.StatusBadRequest, reason: "outside_working_hours"},
		{name: "unknown room", room: "9", body: map[string]string{"date": date, "startTime": "10:00", "endTime": "11:00"}, status: http.StatusNotFound, reason: "not_found"},
		{name: "missing fields", room: "1", body: map[string]string{"date": date}, status: http.StatusBadRequest, reason: "invalid_request"},
		{name: "unknown field", room: "1", body: map[string]string{"date": date, "startTime": "10:00", "endTime": "11:00", "roomId": "2"}, status: http.StatusBadRequest, reason: "invalid_request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, c, http.MethodPost, srv.URL+"/api/v1/rooms/"+tt.room+"/bookings", tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.reason, reasonOf(t, resp))
		})
	}
}

func TestAPI_RoomsAndStatus(t *testing.T) {
	srv := newServer(t)
	c := newClient(t)

	resp := do(t, c, http.MethodGet, srv.URL+"/api/v1/rooms/status", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var statuses map[string]string
	decode(t, resp, &statuses)
	assert.Len(t, statuses, 2)
	assert.Contains(t, []string{"available", "occupied"}, statuses["1"])

	resp = do(t, c, http.MethodGet, srv.URL+"/api/v1/rooms", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list struct {
		Rooms []struct {
			Name     string   `json:"name"`
			Features []string `json:"features"`
			Status   string   `json:"status"`
		} `json:"rooms"`
	}
	decode(t, resp, &list)
	require.Len(t, list.Rooms, 2)
	assert.Equal(t, "Каспий", list.Rooms[0].Name)
	assert.Equal(t, []string{}, list.Rooms[1].Features)

	resp = do(t, c, http.MethodGet, srv.URL+"/api/v1/schedule?date="+futureDate(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, c, http.MethodGet, srv.URL+"/api/v1/rooms/1/availability", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, c, http.MethodGet, srv.URL+"/api/v1/schedule/config", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cfg map[string]interface{}
	decode(t, resp, &cfg)
	assert.Equal(t, "09:00", cfg["open"])
	assert.Equal(t, "17:45", cfg["lastStart"])
}

func TestAPI_Metrics(t *testing.T) {
	srv := newServer(t)
	c := newClient(t)

	do(t, c, http.MethodGet, srv.URL+"/api/v1/rooms/1/schedule?date="+futureDate(), nil)

	resp := do(t, c, http.MethodGet, srv.URL+"/metrics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `route="/api/v1/rooms/{roomId:[0-9]+}/schedule"`)
}
