package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

const msgUnauthorized = "сначала укажите имя и организацию"

type requesterKey struct{}

// WithRequester кладет пользователя в контекст
func WithRequester(ctx context.Context, requester domain.Requester) context.Context {
	return context.WithValue(ctx, requesterKey{}, requester)
}

// RequesterFromContext пользователь из сессии
func RequesterFromContext(ctx context.Context) (domain.Requester, bool) {
	requester, ok := ctx.Value(requesterKey{}).(domain.Requester)
	return requester, ok
}

// RequireSession пропускает только запросы с действующей сессией
func RequireSession(sessions *SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requester, err := sessions.Requester(r)
			if err != nil {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithRequester(r.Context(), requester)))
		})
	}
}
