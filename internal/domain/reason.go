package domain

import "errors"

// Reason is a machine-readable rejection code shared by all front ends
type Reason string

const (
	ReasonInvalidTime         Reason = "invalid_time"
	ReasonPastTime            Reason = "cannot_book_past_time"
	ReasonOutsideWorkingHours Reason = "outside_working_hours"
	ReasonRoomUnavailable     Reason = "room_unavailable"
	ReasonNotFound            Reason = "not_found"
	ReasonNotOwner            Reason = "not_owner"
	ReasonStorageError        Reason = "storage_error"

	// ReasonInvalidRequest malformed input that never reached the engine rules
	// (empty requester, unknown room id format and so on)
	ReasonInvalidRequest Reason = "invalid_request"
)

// Reason errors. Packages wrap them into their own sentinels,
// so errors.Is works on both levels.
var (
	ErrInvalidTime         = errors.New(string(ReasonInvalidTime))
	ErrPastTime            = errors.New(string(ReasonPastTime))
	ErrOutsideWorkingHours = errors.New(string(ReasonOutsideWorkingHours))
	ErrRoomUnavailable     = errors.New(string(ReasonRoomUnavailable))
	ErrNotFound            = errors.New(string(ReasonNotFound))
	ErrNotOwner            = errors.New(string(ReasonNotOwner))
	ErrStorage             = errors.New(string(ReasonStorageError))
	ErrInvalidRequest      = errors.New(string(ReasonInvalidRequest))
)

var reasonErrors = []struct {
	err    error
	reason Reason
}{
	{ErrInvalidTime, ReasonInvalidTime},
	{ErrPastTime, ReasonPastTime},
	{ErrOutsideWorkingHours, ReasonOutsideWorkingHours},
	{ErrRoomUnavailable, ReasonRoomUnavailable},
	{ErrNotFound, ReasonNotFound},
	{ErrNotOwner, ReasonNotOwner},
	{ErrStorage, ReasonStorageError},
	{ErrInvalidRequest, ReasonInvalidRequest},
}

// ReasonOf maps an error to its rejection code.
// Unknown non-nil errors are reported as storage_error, nil gives an empty reason.
func ReasonOf(err error) Reason {
	if err == nil {
		return ""
	}
	for _, re := range reasonErrors {
		if errors.Is(err, re.err) {
			return re.reason
		}
	}
	return ReasonStorageError
}
