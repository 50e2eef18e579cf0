package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/logger"
)

func newSessions() *SessionManager {
	return NewSessionManager([]byte(strings.Repeat("k", 32)), []byte(strings.Repeat("b", 32)), time.Hour, true)
}

func sessionCookieFrom(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookie {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestSessionManager_RoundTrip(t *testing.T) {
	sm := newSessions()

	rec := httptest.NewRecorder()
	require.NoError(t, sm.SetRequester(rec, domain.Requester{Name: "Anna", Org: "Kaspi", IsAdmin: true}))
	c := sessionCookieFrom(t, rec)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(c)
	got, err := sm.Requester(req)
	require.NoError(t, err)
	// админ через веб не передается
	assert.Equal(t, domain.Requester{Name: "Anna", Org: "Kaspi"}, got)
}

func TestSessionManager_Rejects(t *testing.T) {
	sm := newSessions()

	_, err := sm.Requester(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, err, ErrNoSession)

	rec := httptest.NewRecorder()
	require.NoError(t, sm.SetRequester(rec, domain.Requester{Name: "Anna", Org: "Kaspi"}))
	c := sessionCookieFrom(t, rec)
	c.Value = c.Value[:len(c.Value)-2] + "xx"

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(c)
	_, err = sm.Requester(req)
	assert.ErrorIs(t, err, ErrNoSession)

	// cookie с другим ключом
	other := NewSessionManager([]byte(strings.Repeat("z", 32)), nil, time.Hour, false)
	rec = httptest.NewRecorder()
	require.NoError(t, other.SetRequester(rec, domain.Requester{Name: "Anna", Org: "Kaspi"}))
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(sessionCookieFrom(t, rec))
	_, err = sm.Requester(req)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSessionManager_Clear(t *testing.T) {
	rec := httptest.NewRecorder()
	newSessions().Clear(rec)
	c := sessionCookieFrom(t, rec)
	assert.Equal(t, -1, c.MaxAge)
}

func TestRequireSession(t *testing.T) {
	sm := newSessions()
	var seen domain.Requester
	h := RequireSession(sm)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = RequesterFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	login := httptest.NewRecorder()
	require.NoError(t, sm.SetRequester(login, domain.Requester{Name: "Ержан", Org: "Halyk"}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(sessionCookieFrom(t, login))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ержан", seen.Name)
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get(HeaderRequestID))

	given := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, given)
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, given, seen)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "not-a-uuid")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.NotEqual(t, "not-a-uuid", seen)
}

type fakeHTTPMetrics struct {
	method, route, status string
}

func (f *fakeHTTPMetrics) ObserveHTTPRequest(method, route, status string, _ float64) {
	f.method, f.route, f.status = method, route, status
}

func TestMetricsAndLogging(t *testing.T) {
	m := &fakeHTTPMetrics{}
	r := mux.NewRouter()
	r.Use(Metrics(m), Logging(logger.Nop()))
	r.HandleFunc("/rooms/{roomId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms/42", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "GET", m.method)
	assert.Equal(t, "/rooms/{roomId}", m.route)
	assert.Equal(t, "418", m.status)
}
