package delete_session

import "net/http"

type SessionManager interface {
	Clear(w http.ResponseWriter)
}
