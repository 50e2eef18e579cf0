package bot

import (
	"fmt"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/service/bookings/models"
)

// Кнопки reply-клавиатур
const (
	btnBook        = "📅 Забронировать"
	btnMyBookings  = "📖 Мои брони"
	btnView        = "📋 Посмотреть брони"
	btnAdmin       = "⚙️ Админ"
	btnAdminCancel = "❌ Отменить чужую бронь"
	btnBackToMenu  = "⬅️ Вернуться в главное меню"
)

// Префиксы callback_data, значение после двоеточия
const (
	cbRoom     = "room"
	cbDate     = "date"
	cbHour     = "hour"
	cbMinute   = "minute"
	cbDuration = "duration"
	cbView     = "view"
	cbAdmin    = "admin"
	cbCancel   = "cancel"
)

const (
	datesOffered = 7
	minuteStep   = 10
)

var durations = []int{30, 60, 90, 120}

func callbackData(prefix string, value interface{}) string {
	return fmt.Sprintf("%s:%v", prefix, value)
}

func mainMenuKeyboard(isAdmin bool) tgbotapi.ReplyKeyboardMarkup {
	rows := [][]tgbotapi.KeyboardButton{
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnBook), tgbotapi.NewKeyboardButton(btnMyBookings)),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnView)),
	}
	if isAdmin {
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnAdmin)))
	}
	return tgbotapi.NewReplyKeyboard(rows...)
}

func adminMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnAdminCancel)),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnBackToMenu)),
	)
}

func roomsKeyboard(rooms []models.RoomResponse) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(rooms))
	for _, r := range rooms {
		text := fmt.Sprintf("🏢 %s (до %d чел.)", r.Name, r.Capacity)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(text, callbackData(cbRoom, r.ID)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// bookableDates ближайшие рабочие дни начиная с сегодняшнего
func bookableDates(today time.Time, n int) []string {
	dates := make([]string, 0, n)
	for day := today; len(dates) < n; day = day.AddDate(0, 0, 1) {
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		dates = append(dates, day.Format(domain.DateFormat))
	}
	return dates
}

func datesKeyboard(prefix string, dates []string) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(dates))
	for _, d := range dates {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📅 "+d, callbackData(prefix, d)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func hoursKeyboard(first, last int) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for h := first; h <= last; h++ {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("%02d:00", h), callbackData(cbHour, h)))
		if len(row) == 3 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func minutesKeyboard(hour int) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for m := 0; m < 60; m += minuteStep {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("%02d:%02d", hour, m), callbackData(cbMinute, m)))
		if len(row) == 3 {
			rows = append(rows, row)
			row = nil
		}
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func durationsKeyboard() tgbotapi.InlineKeyboardMarkup {
	row := make([]tgbotapi.InlineKeyboardButton, 0, len(durations))
	for _, d := range durations {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(strconv.Itoa(d)+" мин", callbackData(cbDuration, d)))
	}
	return tgbotapi.NewInlineKeyboardMarkup(row)
}

func cancelKeyboard(bookings []models.BookingResponse, withOwner bool) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(bookings))
	for _, b := range bookings {
		text := fmt.Sprintf("❌ Отменить %s %s-%s", b.Date, b.StartTime, b.EndTime)
		if withOwner {
			text += " " + b.RequesterName
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(text, callbackData(cbCancel, b.ID)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
