package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/infra/storage/filestore"
	"github.com/m04kA/SMC-RoomBooking/internal/infra/storage/room"
	"github.com/m04kA/SMC-RoomBooking/internal/schedule"
	"github.com/m04kA/SMC-RoomBooking/pkg/keylock"
	"github.com/m04kA/SMC-RoomBooking/pkg/logger"
	"github.com/m04kA/SMC-RoomBooking/pkg/simpletxmanager"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

var (
	anna   = domain.Requester{Name: "Anna", Org: "Kaspi"}
	erzhan = domain.Requester{Name: "Ержан", Org: "Halyk"}
	admin  = domain.Requester{Name: "Админ", Org: "Офис", IsAdmin: true}
)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func setup(t *testing.T) (*Service, *filestore.Store) {
	t.Helper()

	store, err := filestore.New(t.TempDir())
	require.NoError(t, err)

	rooms := room.NewStatic([]domain.Room{
		{ID: 1, Name: "Каспий", Capacity: 12, Features: []string{"проектор"}},
		{ID: 2, Name: "Алатау", Capacity: 6},
	})
	validator := schedule.NewValidator(schedule.DefaultRules(), time.FixedZone("UTC+5", 5*60*60))

	svc := NewService(store, rooms, validator, keylock.New(), simpletxmanager.NewTransactionManager(), nil, logger.Nop())
	// 2025-01-15 23:30 UTC = 2025-01-16 04:30 по UTC+5
	svc.timeProvider = fixedTime{t: time.Date(2025, 1, 15, 23, 30, 0, 0, time.UTC)}
	return svc, store
}

func seed(t *testing.T, store *filestore.Store, roomID int64, date, start, end string, who domain.Requester) *domain.Booking {
	t.Helper()
	d, _ := time.Parse(domain.DateFormat, date)
	b, err := store.Create(context.Background(), &domain.Booking{
		RoomID:        roomID,
		Date:          d,
		StartTime:     types.MustTimeString(start),
		EndTime:       types.MustTimeString(end),
		RequesterName: who.Name,
		RequesterOrg:  who.Org,
	})
	require.NoError(t, err)
	return b
}

func TestService_Cancel(t *testing.T) {
	tests := []struct {
		name      string
		requester domain.Requester
		cancelled bool
		missing   bool
		reason    domain.Reason
	}{
		{name: "owner", requester: anna},
		{name: "admin", requester: admin},
		{name: "not owner", requester: erzhan, reason: domain.ReasonNotOwner},
		{name: "already cancelled", requester: anna, cancelled: true, reason: domain.ReasonNotFound},
		{name: "missing", requester: anna, missing: true, reason: domain.ReasonNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := setup(t)
			ctx := context.Background()
			b := seed(t, store, 1, "2025-01-16", "10:00", "11:00", anna)

			if tt.cancelled {
				require.NoError(t, store.Cancel(ctx, b.ID))
			}
			id := b.ID
			if tt.missing {
				id = 404
			}

			err := svc.Cancel(ctx, id, tt.requester)
			if tt.reason == "" {
				require.NoError(t, err)
				list, err := store.ListConfirmed(ctx, 1, b.Date)
				require.NoError(t, err)
				assert.Empty(t, list)
				return
			}
			assert.Equal(t, tt.reason, domain.ReasonOf(err))
		})
	}
}

func TestService_GetRoomSchedule(t *testing.T) {
	svc, store := setup(t)
	ctx := context.Background()

	seed(t, store, 1, "2025-01-16", "14:00", "15:00", anna)
	seed(t, store, 1, "2025-01-16", "09:00", "10:00", erzhan)
	seed(t, store, 1, "2025-01-17", "09:00", "10:00", erzhan)
	cancelled := seed(t, store, 1, "2025-01-16", "11:00", "12:00", anna)
	require.NoError(t, store.Cancel(ctx, cancelled.ID))

	// пустая дата = сегодня по UTC+5
	sched, err := svc.GetRoomSchedule(ctx, 1, "")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-16", sched.Date)
	assert.Equal(t, "Каспий", sched.Room.Name)
	require.Len(t, sched.Bookings, 2)
	assert.Equal(t, "09:00", sched.Bookings[0].StartTime)
	assert.Equal(t, "14:00", sched.Bookings[1].StartTime)

	_, err = svc.GetRoomSchedule(ctx, 9, "2025-01-16")
	assert.ErrorIs(t, err, ErrRoomNotFound)

	_, err = svc.GetRoomSchedule(ctx, 1, "16-01-2025")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestService_GetDaySchedule(t *testing.T) {
	svc, store := setup(t)
	seed(t, store, 2, "2025-01-16", "10:00", "11:00", anna)

	day, err := svc.GetDaySchedule(context.Background(), "2025-01-16")
	require.NoError(t, err)
	require.Len(t, day, 2)
	assert.Empty(t, day[0].Bookings)
	assert.Len(t, day[1].Bookings, 1)
	assert.Equal(t, []string{"проектор"}, day[0].Room.Features)
	assert.Equal(t, []string{}, day[1].Room.Features)
}

func TestService_GetMyBookingsAndGetByID(t *testing.T) {
	svc, store := setup(t)
	ctx := context.Background()

	mine := seed(t, store, 1, "2025-01-17", "10:00", "11:00", anna)
	seed(t, store, 2, "2025-01-16", "10:00", "11:00", anna)
	seed(t, store, 1, "2025-01-16", "12:00", "13:00", erzhan)

	list, err := svc.GetMyBookings(ctx, anna)
	require.NoError(t, err)
	require.Len(t, list.Bookings, 2)
	assert.Equal(t, "2025-01-16", list.Bookings[0].Date)
	assert.Equal(t, "2025-01-17", list.Bookings[1].Date)

	got, err := svc.GetByID(ctx, mine.ID, anna)
	require.NoError(t, err)
	assert.Equal(t, mine.ID, got.ID)

	_, err = svc.GetByID(ctx, mine.ID, erzhan)
	assert.ErrorIs(t, err, ErrNotOwner)

	_, err = svc.GetByID(ctx, mine.ID, admin)
	assert.NoError(t, err)

	_, err = svc.GetMyBookings(ctx, domain.Requester{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_ListRooms(t *testing.T) {
	svc, _ := setup(t)

	rooms, err := svc.ListRooms(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "Каспий", rooms[0].Name)
}
