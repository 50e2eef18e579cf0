package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Role положение пользователя в группе
type Role string

const (
	RoleOwner   Role = "owner"
	RoleAdmin   Role = "admin"
	RoleMember  Role = "member"
	RoleUnknown Role = "unknown"
)

// IsAdmin владелец и администраторы группы могут отменять чужие брони
func (r Role) IsAdmin() bool {
	return r == RoleOwner || r == RoleAdmin
}

// CanUseBot доступ есть у любого участника группы
func (r Role) CanUseBot() bool {
	return r == RoleOwner || r == RoleAdmin || r == RoleMember
}

// roleOf id из ADMIN_IDS всегда администраторы, остальных спрашиваем у Telegram.
// Ошибка означает, что статус проверить не удалось.
func (b *Bot) roleOf(userID int64) (Role, error) {
	if _, ok := b.adminIDs[userID]; ok {
		return RoleAdmin, nil
	}

	member, err := b.api.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
			ChatID: b.groupID,
			UserID: userID,
		},
	})
	if err != nil {
		return RoleUnknown, err
	}

	switch member.Status {
	case "creator":
		return RoleOwner, nil
	case "administrator":
		return RoleAdmin, nil
	case "member":
		return RoleMember, nil
	default:
		// left, kicked, restricted
		return RoleUnknown, nil
	}
}
