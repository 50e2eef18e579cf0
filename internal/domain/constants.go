package domain

// Default working day
const (
	DefaultOpenTime          = "09:00"
	DefaultLastStartTime     = "17:45"
	DefaultMinEndTime        = "09:15"
	DefaultCloseTime         = "18:00"
	DefaultEndGraceMinutes   = 1
	DefaultPastBufferMinutes = 1
	DefaultTimezone          = "Asia/Almaty"
	DefaultUTCOffsetHours    = 5
)

// Business validation constants
const (
	MinRequesterFieldLength = 2
	MaxRequesterFieldLength = 100
	MaxPurposeLength        = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
