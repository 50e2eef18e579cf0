package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/m04kA/SMC-RoomBooking/internal/schedule"
)

const defaultUpdateTimeout = 60

// Options параметры группы, к которой привязан бот
type Options struct {
	GroupID       int64
	AdminIDs      []int64
	UpdateTimeout int // секунды long polling
}

// Bot Telegram-фронтенд движка бронирования.
// Апдейты обрабатываются последовательно в порядке получения.
type Bot struct {
	api           TelegramAPI
	creator       BookingCreator
	bookings      BookingService
	sessions      SessionStore
	validator     *schedule.Validator
	groupID       int64
	adminIDs      map[int64]struct{}
	updateTimeout int
	metrics       Metrics
	timeProvider  TimeProvider
	logger        Logger
}

// New создает бота. metrics может быть nil.
func New(
	api TelegramAPI,
	creator BookingCreator,
	bookings BookingService,
	sessions SessionStore,
	validator *schedule.Validator,
	opts Options,
	metrics Metrics,
	logger Logger,
) *Bot {
	admins := make(map[int64]struct{}, len(opts.AdminIDs))
	for _, id := range opts.AdminIDs {
		admins[id] = struct{}{}
	}

	timeout := opts.UpdateTimeout
	if timeout <= 0 {
		timeout = defaultUpdateTimeout
	}

	return &Bot{
		api:           api,
		creator:       creator,
		bookings:      bookings,
		sessions:      sessions,
		validator:     validator,
		groupID:       opts.GroupID,
		adminIDs:      admins,
		updateTimeout: timeout,
		metrics:       metrics,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Run читает апдейты до отмены ctx
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.updateTimeout

	updates := b.api.GetUpdatesChan(u)
	b.logger.Info("Bot: listening for updates, group=%d", b.groupID)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info("Bot: stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.HandleUpdate(ctx, update)
		}
	}
}

// HandleUpdate разбирает один апдейт
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil && update.CallbackQuery.From != nil:
		b.recordUpdate("callback")
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil && update.Message.From != nil && update.Message.Chat != nil:
		b.recordUpdate("message")
		b.handleMessage(ctx, update.Message)
	default:
		b.recordUpdate("ignored")
	}
}

func (b *Bot) recordUpdate(kind string) {
	if b.metrics != nil {
		b.metrics.RecordBotUpdate(kind)
	}
}

// checkAccess пускает только участников группы
func (b *Bot) checkAccess(chatID, userID int64) (Role, bool) {
	role, err := b.roleOf(userID)
	if err != nil {
		b.logger.Warn("Bot: failed to check membership of user=%d: %v", userID, err)
		b.send(chatID, msgMembershipCheck, nil)
		return role, false
	}
	if !role.CanUseBot() {
		b.logger.Warn("Bot: user=%d is not a group member", userID)
		b.send(chatID, msgNotMember, nil)
		return role, false
	}
	return role, true
}

func (b *Bot) loadSession(ctx context.Context, chatID, userID int64) (*Session, bool) {
	session, err := b.sessions.Get(ctx, userID)
	if err != nil {
		b.logger.Error("Bot: failed to load session user=%d: %v", userID, err)
		b.send(chatID, msgInternal, nil)
		return nil, false
	}
	return session, true
}

func (b *Bot) saveSession(ctx context.Context, chatID int64, session *Session) bool {
	if err := b.sessions.Save(ctx, session); err != nil {
		b.logger.Error("Bot: failed to save session user=%d: %v", session.UserID, err)
		b.send(chatID, msgInternal, nil)
		return false
	}
	return true
}

// offeredDates рабочие дни, которые показываются в выборе даты
func (b *Bot) offeredDates() []string {
	return bookableDates(b.validator.Today(b.timeProvider.Now()), datesOffered)
}

// hourRange часы начала от открытия до последнего допустимого начала
func (b *Bot) hourRange() (int, int) {
	rules := b.validator.Rules()
	return rules.Open.Minutes() / 60, rules.LastStart.Minutes() / 60
}

func (b *Bot) send(chatID int64, text string, markup interface{}) {
	msg := tgbotapi.NewMessage(chatID, text)
	if markup != nil {
		msg.ReplyMarkup = markup
	}
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Bot: failed to send message to chat=%d: %v", chatID, err)
	}
}

func (b *Bot) edit(chatID int64, messageID int, text string, markup *tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewEditMessageText(chatID, messageID, text)
	if markup != nil {
		msg.ReplyMarkup = markup
	}
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Bot: failed to edit message %d in chat=%d: %v", messageID, chatID, err)
	}
}

func (b *Bot) answer(callbackID string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(callbackID, "")); err != nil {
		b.logger.Warn("Bot: failed to answer callback %s: %v", callbackID, err)
	}
}
