package handlers

import (
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

var reasonMessages = map[domain.Reason]string{
	domain.ReasonInvalidTime:         "некорректное время: ожидается HH:MM, окончание позже начала",
	domain.ReasonPastTime:            "нельзя забронировать время в прошлом",
	domain.ReasonOutsideWorkingHours: "время вне рабочих часов переговорных",
	domain.ReasonRoomUnavailable:     "комната уже забронирована на это время",
	domain.ReasonNotFound:            "бронирование или комната не найдены",
	domain.ReasonNotOwner:            "можно изменять только свои бронирования",
	domain.ReasonStorageError:        "не удалось сохранить данные, попробуйте снова",
	domain.ReasonInvalidRequest:      "некорректный запрос",
}

var reasonStatuses = map[domain.Reason]int{
	domain.ReasonInvalidTime:         http.StatusBadRequest,
	domain.ReasonPastTime:            http.StatusBadRequest,
	domain.ReasonOutsideWorkingHours: http.StatusBadRequest,
	domain.ReasonInvalidRequest:      http.StatusBadRequest,
	domain.ReasonRoomUnavailable:     http.StatusConflict,
	domain.ReasonNotFound:            http.StatusNotFound,
	domain.ReasonNotOwner:            http.StatusForbidden,
	domain.ReasonStorageError:        http.StatusInternalServerError,
}

// MessageFor текст причины для пользователя
func MessageFor(reason domain.Reason) string {
	if msg, ok := reasonMessages[reason]; ok {
		return msg
	}
	return msgInternalError
}

// StatusFor HTTP-код причины
func StatusFor(reason domain.Reason) int {
	if status, ok := reasonStatuses[reason]; ok {
		return status
	}
	return http.StatusInternalServerError
}
