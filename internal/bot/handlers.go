package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	userID, chatID := msg.From.ID, msg.Chat.ID

	role, ok := b.checkAccess(chatID, userID)
	if !ok {
		return
	}
	session, ok := b.loadSession(ctx, chatID, userID)
	if !ok {
		return
	}

	if msg.IsCommand() && msg.Command() == "start" {
		b.start(ctx, chatID, session, role)
		return
	}

	text := strings.TrimSpace(msg.Text)

	switch session.State {
	case StateAwaitingName:
		b.saveName(ctx, chatID, session, text)
		return
	case StateAwaitingOrg:
		b.saveOrg(ctx, chatID, session, role, text)
		return
	}

	if !session.HasProfile() {
		b.start(ctx, chatID, session, role)
		return
	}

	switch text {
	case btnBook:
		b.startBooking(ctx, chatID, session)
	case btnMyBookings:
		b.resetDraft(ctx, chatID, session)
		b.showMyBookings(ctx, chatID, session)
	case btnView:
		b.resetDraft(ctx, chatID, session)
		b.send(chatID, msgViewDate, datesKeyboard(cbView, b.offeredDates()))
	case btnAdmin:
		b.resetDraft(ctx, chatID, session)
		b.showAdminMenu(chatID, role)
	case btnAdminCancel:
		if !role.IsAdmin() {
			b.send(chatID, msgAdminDenied, nil)
			return
		}
		b.send(chatID, msgAdminDate, datesKeyboard(cbAdmin, b.offeredDates()))
	case btnBackToMenu:
		b.resetDraft(ctx, chatID, session)
		b.showMainMenu(chatID, session, role)
	default:
		b.send(chatID, msgUnknownCommand, nil)
	}
}

// start регистрация или возврат в главное меню
func (b *Bot) start(ctx context.Context, chatID int64, session *Session, role Role) {
	switch {
	case session.Name == "":
		session.State = StateAwaitingName
		if b.saveSession(ctx, chatID, session) {
			b.send(chatID, msgAskName, tgbotapi.NewRemoveKeyboard(true))
		}
	case session.Org == "":
		session.State = StateAwaitingOrg
		if b.saveSession(ctx, chatID, session) {
			b.send(chatID, msgAskOrgKnownName, tgbotapi.NewRemoveKeyboard(true))
		}
	default:
		session.ResetDraft()
		if b.saveSession(ctx, chatID, session) {
			b.showMainMenu(chatID, session, role)
		}
	}
}

func validProfileField(s string) bool {
	n := len([]rune(s))
	return n >= domain.MinRequesterFieldLength && n <= domain.MaxRequesterFieldLength
}

func (b *Bot) saveName(ctx context.Context, chatID int64, session *Session, name string) {
	if !validProfileField(name) {
		b.send(chatID, msgNameTooShort, nil)
		return
	}

	session.Name = name
	session.State = StateAwaitingOrg
	if b.saveSession(ctx, chatID, session) {
		b.send(chatID, msgNameSaved, nil)
	}
}

func (b *Bot) saveOrg(ctx context.Context, chatID int64, session *Session, role Role, org string) {
	if !validProfileField(org) {
		b.send(chatID, msgOrgTooShort, nil)
		return
	}

	session.Org = org
	session.ResetDraft()
	if b.saveSession(ctx, chatID, session) {
		b.logger.Info("Bot: user=%d registered as %s/%s", session.UserID, session.Name, session.Org)
		b.showMainMenu(chatID, session, role)
	}
}

func (b *Bot) resetDraft(ctx context.Context, chatID int64, session *Session) {
	if session.State == StateMainMenu {
		return
	}
	session.ResetDraft()
	b.saveSession(ctx, chatID, session)
}

func (b *Bot) showMainMenu(chatID int64, session *Session, role Role) {
	b.send(chatID, fmt.Sprintf(msgWelcome, session.Name), mainMenuKeyboard(role.IsAdmin()))
}

func (b *Bot) showAdminMenu(chatID int64, role Role) {
	if !role.IsAdmin() {
		b.send(chatID, msgAdminDenied, nil)
		return
	}
	b.send(chatID, msgAdminMenu, adminMenuKeyboard())
}

func (b *Bot) startBooking(ctx context.Context, chatID int64, session *Session) {
	rooms, err := b.bookings.ListRooms(ctx)
	if err != nil {
		b.logger.Error("Bot: failed to list rooms: %v", err)
		b.send(chatID, msgInternal, nil)
		return
	}
	if len(rooms) == 0 {
		b.send(chatID, msgNoRooms, nil)
		return
	}

	session.ResetDraft()
	session.State = StateSelectRoom
	if b.saveSession(ctx, chatID, session) {
		b.send(chatID, msgChooseRoom, roomsKeyboard(rooms))
	}
}

func (b *Bot) showMyBookings(ctx context.Context, chatID int64, session *Session) {
	list, err := b.bookings.GetMyBookings(ctx, requesterOf(session, RoleMember))
	if err != nil {
		b.logger.Error("Bot: failed to list bookings of user=%d: %v", session.UserID, err)
		b.send(chatID, msgInternal, nil)
		return
	}
	if len(list.Bookings) == 0 {
		b.send(chatID, msgNoBookings, nil)
		return
	}
	b.send(chatID, formatMyBookings(list.Bookings), cancelKeyboard(list.Bookings, false))
}

func requesterOf(session *Session, role Role) domain.Requester {
	r := domain.NewRequester(session.Name, session.Org)
	r.IsAdmin = role.IsAdmin()
	return r
}
