package bot

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-RoomBooking/internal/usecase/create_booking"
)

// TelegramAPI подмножество *tgbotapi.BotAPI, которым пользуется бот
type TelegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetChatMember(config tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// BookingCreator use case создания бронирования
type BookingCreator interface {
	Execute(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error)
}

// BookingService чтение расписаний и отмена
type BookingService interface {
	ListRooms(ctx context.Context) ([]models.RoomResponse, error)
	GetMyBookings(ctx context.Context, requester domain.Requester) (*models.BookingListResponse, error)
	GetDaySchedule(ctx context.Context, date string) ([]*models.RoomScheduleResponse, error)
	Cancel(ctx context.Context, bookingID int64, requester domain.Requester) error
}

// SessionStore хранилище диалогов по Telegram user id
type SessionStore interface {
	Get(ctx context.Context, userID int64) (*Session, error)
	Save(ctx context.Context, session *Session) error
}

// Metrics счетчик обработанных апдейтов
type Metrics interface {
	RecordBotUpdate(kind string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
