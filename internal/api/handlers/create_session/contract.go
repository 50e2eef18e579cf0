package create_session

import (
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

type SessionManager interface {
	SetRequester(w http.ResponseWriter, requester domain.Requester) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
