package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

const msgInternalError = "внутренняя ошибка сервера"

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// RespondError отправляет ошибку с кодом причины
func RespondError(w http.ResponseWriter, status int, reason domain.Reason, message string) {
	RespondJSON(w, status, ErrorResponse{Error: string(reason), Message: message})
}

// RespondBadRequest 400 с кодом invalid_request
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, domain.ReasonInvalidRequest, message)
}

// RespondUnauthorized 401, сессия не найдена
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, "unauthorized", message)
}

// RespondNotFound 404
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, domain.ReasonNotFound, message)
}

// RespondInternalError 500
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, domain.ReasonStorageError, msgInternalError)
}

// RespondReason отвечает по коду причины ошибки движка
func RespondReason(w http.ResponseWriter, err error) {
	reason := domain.ReasonOf(err)
	RespondError(w, StatusFor(reason), reason, MessageFor(reason))
}
