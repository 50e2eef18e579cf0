package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReasonOf(t *testing.T) {
	pkgErr := fmt.Errorf("create_booking: %w", ErrRoomUnavailable)

	tests := []struct {
		name string
		err  error
		want Reason
	}{
		{name: "nil", err: nil, want: ""},
		{name: "direct", err: ErrPastTime, want: ReasonPastTime},
		{name: "package sentinel", err: pkgErr, want: ReasonRoomUnavailable},
		{name: "wrapped twice", err: fmt.Errorf("%w: 10:00-11:00", pkgErr), want: ReasonRoomUnavailable},
		{name: "unknown", err: errors.New("disk full"), want: ReasonStorageError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReasonOf(tt.err))
		})
	}
}

func TestBooking_IsOwnedBy(t *testing.T) {
	b := &Booking{RequesterName: "Айгерим", RequesterOrg: "Kaspi"}

	assert.True(t, b.IsOwnedBy(Requester{Name: "Айгерим", Org: "Kaspi"}))
	assert.False(t, b.IsOwnedBy(Requester{Name: "Айгерим", Org: "Halyk"}))
	assert.False(t, b.IsOwnedBy(Requester{Name: "Ержан", Org: "Kaspi"}))
}

func TestRequester_IsValid(t *testing.T) {
	assert.True(t, NewRequester("  Ан ", "ИП").IsValid())
	assert.False(t, NewRequester("А", "Kaspi").IsValid())
	assert.False(t, NewRequester("Anna", " ").IsValid())
}
