package bot

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/service/bookings/models"
)

const (
	msgAskName         = "👋 Привет! Введите ваше имя:"
	msgAskOrgKnownName = "✅ Имя уже есть! Теперь введите название вашей компании:"
	msgNameSaved       = "✅ Имя сохранено! Теперь введите название вашей компании:"
	msgNameTooShort    = "❌ Имя должно содержать хотя бы 2 символа. Попробуйте ещё раз."
	msgOrgTooShort     = "❌ Название компании слишком короткое. Попробуйте ещё раз."
	msgNotMember       = "❌ Вы должны быть участником группы, чтобы использовать бота."
	msgMembershipCheck = "❌ Не удалось проверить участие в группе. Пожалуйста, убедитесь, что бот является администратором и имеет доступ к информации о пользователях."
	msgWelcome         = "🎉 %s, добро пожаловать в систему бронирования!"
	msgMainMenu        = "Главное меню:"
	msgUnknownCommand  = "🤔 Не понимаю. Воспользуйтесь кнопками меню или командой /start."
	msgChooseRoom      = "🏢 Выберите переговорную:"
	msgNoRooms         = "❌ Нет доступных переговорных."
	msgChooseDate      = "📅 Выберите дату:"
	msgChooseHour      = "📅 Выберите время для %s:"
	msgChooseMinute    = "⏳ Выберите минуты для %s %02d:00:"
	msgChooseDuration  = "⏱ Начало %s %s. Выберите длительность:"
	msgBooked          = "✅ Бронь с %s до %s создана! 🎉"
	msgBookFailed      = "❌ Не удалось забронировать: %s"
	msgNoBookings      = "❌ У вас нет активных бронирований."
	msgMyBookings      = "📌 Ваши брони:"
	msgViewDate        = "📅 Выберите дату для просмотра броней:"
	msgNoBookingsOn    = "❌ На %s нет заявок."
	msgBookingsOn      = "📌 Брони на %s:"
	msgAdminMenu       = "⚙️ Админ меню:"
	msgAdminDenied     = "❌ У вас нет прав для доступа к админ меню. Вы обычный участник группы."
	msgAdminDate       = "📅 Выберите дату, на которую нужно отменить бронь:"
	msgAdminNoBookings = "❌ Нет активных броней для отмены."
	msgChooseCancel    = "Выберите бронь для отмены:"
	msgCancelled       = "✅ Бронь успешно отменена!"
	msgCancelFailed    = "❌ Не удалось отменить бронь: %s"
	msgScheduleFailed  = "❌ Не удалось получить расписание: %s"
	msgStaleMenu       = "⌛ Это меню устарело. Начните заново из главного меню."
	msgInternal        = "❌ Что-то пошло не так, попробуйте позже."
)

var reasonMessages = map[domain.Reason]string{
	domain.ReasonInvalidTime:         "некорректное время",
	domain.ReasonPastTime:            "нельзя забронировать время в прошлом",
	domain.ReasonOutsideWorkingHours: "время вне рабочих часов переговорных",
	domain.ReasonRoomUnavailable:     "комната уже забронирована на это время",
	domain.ReasonNotFound:            "бронь не найдена или уже отменена",
	domain.ReasonNotOwner:            "это не ваша бронь",
	domain.ReasonInvalidRequest:      "некорректные данные",
	domain.ReasonStorageError:        "ошибка хранилища, попробуйте позже",
}

func reasonText(err error) string {
	if msg, ok := reasonMessages[domain.ReasonOf(err)]; ok {
		return msg
	}
	return reasonMessages[domain.ReasonStorageError]
}

func formatBookingLine(b models.BookingResponse) string {
	line := fmt.Sprintf("🕒 %s %s-%s, %s", b.Date, b.StartTime, b.EndTime, b.RoomName)
	if b.Purpose != "" {
		line += " (" + b.Purpose + ")"
	}
	return line
}

func formatMyBookings(list []models.BookingResponse) string {
	var sb strings.Builder
	sb.WriteString(msgMyBookings)
	for _, b := range list {
		sb.WriteString("\n")
		sb.WriteString(formatBookingLine(b))
	}
	return sb.String()
}

// formatDaySchedule пустые комнаты не выводятся
func formatDaySchedule(date string, rooms []*models.RoomScheduleResponse) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, msgBookingsOn, date)
	for _, r := range rooms {
		if len(r.Bookings) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "\n\n🏢 %s", r.Room.Name)
		for _, b := range r.Bookings {
			fmt.Fprintf(&sb, "\n🕒 %s-%s 👤 %s (%s)", b.StartTime, b.EndTime, b.RequesterName, b.RequesterOrg)
		}
	}
	return sb.String()
}

func countBookings(rooms []*models.RoomScheduleResponse) int {
	n := 0
	for _, r := range rooms {
		n += len(r.Bookings)
	}
	return n
}
