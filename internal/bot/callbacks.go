package bot

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/m04kA/SMC-RoomBooking/internal/schedule"
	"github.com/m04kA/SMC-RoomBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-RoomBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// callbackCtx нажатая inline-кнопка и сообщение, которое она редактирует
type callbackCtx struct {
	chatID    int64
	messageID int
	session   *Session
	role      Role
}

func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	defer b.answer(cq.ID)

	if cq.Message == nil || cq.Message.Chat == nil {
		return
	}
	chatID := cq.Message.Chat.ID

	role, ok := b.checkAccess(chatID, cq.From.ID)
	if !ok {
		return
	}
	session, ok := b.loadSession(ctx, chatID, cq.From.ID)
	if !ok {
		return
	}
	if !session.HasProfile() {
		b.start(ctx, chatID, session, role)
		return
	}

	c := &callbackCtx{chatID: chatID, messageID: cq.Message.MessageID, session: session, role: role}

	prefix, value, found := strings.Cut(cq.Data, ":")
	if !found {
		b.stale(c)
		return
	}

	switch prefix {
	case cbRoom:
		b.onRoom(ctx, c, value)
	case cbDate:
		b.onDate(ctx, c, value)
	case cbHour:
		b.onHour(ctx, c, value)
	case cbMinute:
		b.onMinute(ctx, c, value)
	case cbDuration:
		b.onDuration(ctx, c, value)
	case cbView:
		b.onView(ctx, c, value)
	case cbAdmin:
		b.onAdminDate(ctx, c, value)
	case cbCancel:
		b.onCancel(ctx, c, value)
	default:
		b.logger.Warn("Bot: unknown callback %q from user=%d", cq.Data, cq.From.ID)
		b.stale(c)
	}
}

// stale кнопка из старого сообщения или не по порядку шагов
func (b *Bot) stale(c *callbackCtx) {
	b.edit(c.chatID, c.messageID, msgStaleMenu, nil)
}

// advance переводит диалог на следующий шаг, если он в ожидаемом состоянии
func (b *Bot) advance(ctx context.Context, c *callbackCtx, expected, next State, apply func(s *Session)) bool {
	if c.session.State != expected {
		b.stale(c)
		return false
	}
	apply(c.session)
	c.session.State = next
	return b.saveSession(ctx, c.chatID, c.session)
}

func (b *Bot) onRoom(ctx context.Context, c *callbackCtx, value string) {
	roomID, err := strconv.ParseInt(value, 10, 64)
	if err != nil || roomID <= 0 {
		b.stale(c)
		return
	}

	if b.advance(ctx, c, StateSelectRoom, StateSelectDate, func(s *Session) { s.RoomID = roomID }) {
		kb := datesKeyboard(cbDate, b.offeredDates())
		b.edit(c.chatID, c.messageID, msgChooseDate, &kb)
	}
}

func (b *Bot) onDate(ctx context.Context, c *callbackCtx, value string) {
	if _, err := schedule.ParseDate(value); err != nil {
		b.stale(c)
		return
	}

	if b.advance(ctx, c, StateSelectDate, StateSelectHour, func(s *Session) { s.Date = value }) {
		kb := hoursKeyboard(b.hourRange())
		b.edit(c.chatID, c.messageID, fmt.Sprintf(msgChooseHour, value), &kb)
	}
}

func (b *Bot) onHour(ctx context.Context, c *callbackCtx, value string) {
	first, last := b.hourRange()
	hour, err := strconv.Atoi(value)
	if err != nil || hour < first || hour > last {
		b.stale(c)
		return
	}

	if b.advance(ctx, c, StateSelectHour, StateSelectMinute, func(s *Session) { s.Hour = hour }) {
		kb := minutesKeyboard(hour)
		b.edit(c.chatID, c.messageID, fmt.Sprintf(msgChooseMinute, c.session.Date, hour), &kb)
	}
}

func (b *Bot) onMinute(ctx context.Context, c *callbackCtx, value string) {
	minute, err := strconv.Atoi(value)
	if err != nil || minute < 0 || minute >= 60 || minute%minuteStep != 0 {
		b.stale(c)
		return
	}

	if b.advance(ctx, c, StateSelectMinute, StateSelectDuration, func(s *Session) { s.Minute = minute }) {
		start := fmt.Sprintf("%02d:%02d", c.session.Hour, minute)
		kb := durationsKeyboard()
		b.edit(c.chatID, c.messageID, fmt.Sprintf(msgChooseDuration, c.session.Date, start), &kb)
	}
}

func (b *Bot) onDuration(ctx context.Context, c *callbackCtx, value string) {
	duration, err := strconv.Atoi(value)
	if err != nil || !slices.Contains(durations, duration) {
		b.stale(c)
		return
	}
	if c.session.State != StateSelectDuration {
		b.stale(c)
		return
	}

	s := c.session
	startMinutes := s.Hour*60 + s.Minute
	start, err := types.NewTimeStringFromMinutes(startMinutes)
	if err != nil {
		b.stale(c)
		return
	}
	end, err := types.NewTimeStringFromMinutes(startMinutes + duration)
	if err != nil {
		b.stale(c)
		return
	}

	req := &create_booking.Request{
		RoomID:    s.RoomID,
		Date:      s.Date,
		StartTime: start.String(),
		EndTime:   end.String(),
		Requester: requesterOf(s, c.role),
	}

	// черновик сбрасывается при любом исходе, повтор начинается с выбора комнаты
	s.ResetDraft()
	b.saveSession(ctx, c.chatID, s)

	resp, err := b.creator.Execute(ctx, req)
	if err != nil {
		b.logger.Warn("Bot: booking by user=%d rejected: %v", s.UserID, err)
		b.edit(c.chatID, c.messageID, fmt.Sprintf(msgBookFailed, reasonText(err)), nil)
		return
	}

	b.logger.Info("Bot: user=%d booked id=%d room=%d %s %s-%s",
		s.UserID, resp.ID, resp.RoomID, req.Date, resp.StartTime, resp.EndTime)
	b.edit(c.chatID, c.messageID, fmt.Sprintf(msgBooked, resp.StartTime, resp.EndTime), nil)
}

func (b *Bot) onView(ctx context.Context, c *callbackCtx, date string) {
	rooms, ok := b.daySchedule(ctx, c, date)
	if !ok {
		return
	}
	if countBookings(rooms) == 0 {
		b.edit(c.chatID, c.messageID, fmt.Sprintf(msgNoBookingsOn, date), nil)
		return
	}
	b.edit(c.chatID, c.messageID, formatDaySchedule(date, rooms), nil)
}

func (b *Bot) onAdminDate(ctx context.Context, c *callbackCtx, date string) {
	if !c.role.IsAdmin() {
		b.edit(c.chatID, c.messageID, msgAdminDenied, nil)
		return
	}

	rooms, ok := b.daySchedule(ctx, c, date)
	if !ok {
		return
	}

	var all []models.BookingResponse
	for _, r := range rooms {
		all = append(all, r.Bookings...)
	}
	if len(all) == 0 {
		b.edit(c.chatID, c.messageID, msgAdminNoBookings, nil)
		return
	}

	kb := cancelKeyboard(all, true)
	b.edit(c.chatID, c.messageID, msgChooseCancel, &kb)
}

func (b *Bot) onCancel(ctx context.Context, c *callbackCtx, value string) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		b.stale(c)
		return
	}

	if err := b.bookings.Cancel(ctx, id, requesterOf(c.session, c.role)); err != nil {
		b.logger.Warn("Bot: cancel of booking id=%d by user=%d rejected: %v", id, c.session.UserID, err)
		b.edit(c.chatID, c.messageID, fmt.Sprintf(msgCancelFailed, reasonText(err)), nil)
		return
	}

	b.logger.Info("Bot: booking id=%d cancelled by user=%d (admin=%t)", id, c.session.UserID, c.role.IsAdmin())
	b.edit(c.chatID, c.messageID, msgCancelled, nil)
}

func (b *Bot) daySchedule(ctx context.Context, c *callbackCtx, date string) ([]*models.RoomScheduleResponse, bool) {
	rooms, err := b.bookings.GetDaySchedule(ctx, date)
	if err != nil {
		b.logger.Warn("Bot: day schedule for %q failed: %v", date, err)
		b.edit(c.chatID, c.messageID, fmt.Sprintf(msgScheduleFailed, reasonText(err)), nil)
		return nil, false
	}
	return rooms, true
}
