package update_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/infra/storage/filestore"
	"github.com/m04kA/SMC-RoomBooking/internal/schedule"
	"github.com/m04kA/SMC-RoomBooking/pkg/keylock"
	"github.com/m04kA/SMC-RoomBooking/pkg/logger"
	"github.com/m04kA/SMC-RoomBooking/pkg/simpletxmanager"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// 2025-01-15 10:00 по Алматы
var testNow = time.Date(2025, 1, 15, 5, 0, 0, 0, time.UTC)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

var owner = domain.Requester{Name: "Anna", Org: "Kaspi"}

func setup(t *testing.T) (*UseCase, *filestore.Store) {
	t.Helper()

	store, err := filestore.New(t.TempDir())
	require.NoError(t, err)

	validator := schedule.NewValidator(schedule.DefaultRules(), schedule.LoadLocation(domain.DefaultTimezone, domain.DefaultUTCOffsetHours))
	uc := NewUseCase(store, validator, keylock.New(), simpletxmanager.NewTransactionManager(), nil, logger.Nop())
	uc.timeProvider = fixedTime{t: testNow}
	return uc, store
}

func seed(t *testing.T, store *filestore.Store, date, start, end string, who domain.Requester) *domain.Booking {
	t.Helper()

	d, err := time.Parse(domain.DateFormat, date)
	require.NoError(t, err)

	b, err := store.Create(context.Background(), &domain.Booking{
		RoomID:        1,
		RoomName:      "Каспий",
		Date:          d,
		StartTime:     types.MustTimeString(start),
		EndTime:       types.MustTimeString(end),
		RequesterName: who.Name,
		RequesterOrg:  who.Org,
	})
	require.NoError(t, err)
	return b
}

func TestUseCase_Execute_ShrinkOwnInterval(t *testing.T) {
	uc, store := setup(t)
	b := seed(t, store, "2025-01-16", "10:00", "12:00", owner)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: b.ID,
		Date:      "2025-01-16",
		StartTime: "10:30",
		EndTime:   "11:30",
		Purpose:   "  ретро ",
		Requester: owner,
	})
	require.NoError(t, err)
	assert.Equal(t, "10:30", resp.StartTime.String())
	assert.Equal(t, "11:30", resp.EndTime.String())
	assert.Equal(t, "ретро", resp.Purpose)
	assert.Equal(t, "Каспий", resp.RoomName)
}

func TestUseCase_Execute_MoveToAnotherDate(t *testing.T) {
	uc, store := setup(t)
	b := seed(t, store, "2025-01-16", "10:00", "11:00", owner)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: b.ID,
		Date:      "2025-01-17",
		StartTime: "10:00",
		EndTime:   "11:00",
		Requester: owner,
	})
	require.NoError(t, err)

	day1, _ := time.Parse(domain.DateFormat, "2025-01-16")
	day2, _ := time.Parse(domain.DateFormat, "2025-01-17")

	list, err := store.ListConfirmed(context.Background(), 1, day1)
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = store.ListConfirmed(context.Background(), 1, day2)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)
}

func TestUseCase_Execute_Rejections(t *testing.T) {
	other := domain.Requester{Name: "Ержан", Org: "Halyk"}

	tests := []struct {
		name    string
		prepare func(t *testing.T, store *filestore.Store) *Request
		reason  domain.Reason
	}{
		{
			name: "not owner",
			prepare: func(t *testing.T, store *filestore.Store) *Request {
				b := seed(t, store, "2025-01-16", "10:00", "11:00", owner)
				return &Request{BookingID: b.ID, Date: "2025-01-16", StartTime: "10:00", EndTime: "10:30", Requester: other}
			},
			reason: domain.ReasonNotOwner,
		},
		{
			name: "missing",
			prepare: func(t *testing.T, store *filestore.Store) *Request {
				return &Request{BookingID: 99, Date: "2025-01-16", StartTime: "10:00", EndTime: "10:30", Requester: owner}
			},
			reason: domain.ReasonNotFound,
		},
		{
			name: "cancelled",
			prepare: func(t *testing.T, store *filestore.Store) *Request {
				b := seed(t, store, "2025-01-16", "10:00", "11:00", owner)
				require.NoError(t, store.Cancel(context.Background(), b.ID))
				return &Request{BookingID: b.ID, Date: "2025-01-16", StartTime: "10:00", EndTime: "10:30", Requester: owner}
			},
			reason: domain.ReasonNotFound,
		},
		{
			name: "overlaps another booking",
			prepare: func(t *testing.T, store *filestore.Store) *Request {
				b := seed(t, store, "2025-01-16", "10:00", "11:00", owner)
				seed(t, store, "2025-01-16", "12:00", "13:00", other)
				return &Request{BookingID: b.ID, Date: "2025-01-16", StartTime: "11:30", EndTime: "12:30", Requester: owner}
			},
			reason: domain.ReasonRoomUnavailable,
		},
		{
			name: "into the past",
			prepare: func(t *testing.T, store *filestore.Store) *Request {
				b := seed(t, store, "2025-01-16", "10:00", "11:00", owner)
				return &Request{BookingID: b.ID, Date: "2025-01-15", StartTime: "09:00", EndTime: "09:30", Requester: owner}
			},
			reason: domain.ReasonPastTime,
		},
		{
			name: "reversed interval",
			prepare: func(t *testing.T, store *filestore.Store) *Request {
				b := seed(t, store, "2025-01-16", "10:00", "11:00", owner)
				return &Request{BookingID: b.ID, Date: "2025-01-16", StartTime: "11:00", EndTime: "10:00", Requester: owner}
			},
			reason: domain.ReasonInvalidTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, store := setup(t)
			req := tt.prepare(t, store)

			_, err := uc.Execute(context.Background(), req)
			require.Error(t, err)
			assert.Equal(t, tt.reason, domain.ReasonOf(err))
		})
	}
}
