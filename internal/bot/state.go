package bot

// State шаг диалога с пользователем
type State string

const (
	StateAwaitingName   State = "awaiting_name"
	StateAwaitingOrg    State = "awaiting_org"
	StateMainMenu       State = "main_menu"
	StateSelectRoom     State = "select_room"
	StateSelectDate     State = "select_date"
	StateSelectHour     State = "select_hour"
	StateSelectMinute   State = "select_minute"
	StateSelectDuration State = "select_duration"
)

// Session профиль и черновик бронирования одного пользователя.
// Профиль (Name, Org) переживает сброс черновика.
type Session struct {
	UserID int64  `json:"user_id"`
	State  State  `json:"state"`
	Name   string `json:"name"`
	Org    string `json:"org"`

	RoomID int64  `json:"room_id,omitempty"`
	Date   string `json:"date,omitempty"`
	Hour   int    `json:"hour,omitempty"`
	Minute int    `json:"minute,omitempty"`
}

// NewSession сессия пользователя, который еще не представился
func NewSession(userID int64) *Session {
	return &Session{UserID: userID, State: StateAwaitingName}
}

// HasProfile имя и организация уже известны
func (s *Session) HasProfile() bool {
	return s.Name != "" && s.Org != ""
}

// ResetDraft возвращает в главное меню, забывая выбранные комнату и время
func (s *Session) ResetDraft() {
	s.State = StateMainMenu
	s.RoomID = 0
	s.Date = ""
	s.Hour = 0
	s.Minute = 0
}
