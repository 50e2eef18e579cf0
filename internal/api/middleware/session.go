package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

const sessionCookie = "roombooking_session"

// ErrNoSession возвращается, если cookie нет или подпись не сошлась
var ErrNoSession = errors.New("middleware: no valid session")

// SessionManager хранит имя и организацию пользователя в подписанной cookie
type SessionManager struct {
	sc     *securecookie.SecureCookie
	maxAge time.Duration
	secure bool
}

// NewSessionManager blockKey может быть пустым, тогда cookie только подписывается
func NewSessionManager(hashKey, blockKey []byte, maxAge time.Duration, secure bool) *SessionManager {
	if len(blockKey) == 0 {
		blockKey = nil
	}
	sc := securecookie.New(hashKey, blockKey)
	sc.MaxAge(int(maxAge.Seconds()))
	return &SessionManager{sc: sc, maxAge: maxAge, secure: secure}
}

// SetRequester записывает пользователя в cookie
func (s *SessionManager) SetRequester(w http.ResponseWriter, requester domain.Requester) error {
	value := map[string]string{
		"name": requester.Name,
		"org":  requester.Org,
	}
	encoded, err := s.sc.Encode(sessionCookie, value)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    encoded,
		Path:     "/",
		MaxAge:   int(s.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear удаляет cookie
func (s *SessionManager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Requester читает пользователя из cookie
func (s *SessionManager) Requester(r *http.Request) (domain.Requester, error) {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return domain.Requester{}, ErrNoSession
	}

	value := map[string]string{}
	if err := s.sc.Decode(sessionCookie, c.Value, &value); err != nil {
		return domain.Requester{}, ErrNoSession
	}

	requester := domain.NewRequester(value["name"], value["org"])
	if !requester.IsValid() {
		return domain.Requester{}, ErrNoSession
	}
	return requester, nil
}
