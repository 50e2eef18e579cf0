package get_room_status

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
	"github.com/m04kA/SMC-RoomBooking/pkg/logger"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

var utcPlus5 = time.FixedZone("UTC+5", 5*60*60)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func setup(t *testing.T) (*UseCase, *filestore.Store) {
	t.Helper()

	store, err := filestore.New(t.TempDir())
	require.NoError(t, err)

	rooms := room.NewStatic([]domain.Room{
		{ID: 1, Name: "Каспий"},
		{ID: 2, Name: "Алатау"},
	})
	validator := schedule.NewValidator(schedule.DefaultRules(), utcPlus5)

	return NewUseCase(store, rooms, validator, logger.Nop()), store
}

func seed(t *testing.T, store *filestore.Store, roomID int64, date, start, end string) *domain.Booking {
	t.Helper()
	d, _ := time.Parse(domain.DateFormat, date)
	b, err := store.Create(context.Background(), &domain.Booking{
		RoomID:        roomID,
		Date:          d,
		StartTime:     types.MustTimeString(start),
		EndTime:       types.MustTimeString(end),
		RequesterName: "Anna",
		RequesterOrg:  "Kaspi",
	})
	require.NoError(t, err)
	return b
}

func TestUseCase_Execute(t *testing.T) {
	uc, store := setup(t)
	b := seed(t, store, 1, "2025-01-16", "10:00", "11:00")

	tests := []struct {
		name string
		at   time.Time
		want domain.RoomStatus
	}{
		{name: "before start", at: time.Date(2025, 1, 16, 9, 59, 0, 0, utcPlus5), want: domain.RoomAvailable},
		{name: "at start", at: time.Date(2025, 1, 16, 10, 0, 0, 0, utcPlus5), want: domain.RoomOccupied},
		{name: "inside", at: time.Date(2025, 1, 16, 10, 59, 30, 0, utcPlus5), want: domain.RoomOccupied},
		{name: "at end", at: time.Date(2025, 1, 16, 11, 0, 0, 0, utcPlus5), want: domain.RoomAvailable},
		// 05:30 UTC = 10:30 по UTC+5
		{name: "instant in utc", at: time.Date(2025, 1, 16, 5, 30, 0, 0, time.UTC), want: domain.RoomOccupied},
		{name: "other date", at: time.Date(2025, 1, 17, 10, 30, 0, 0, utcPlus5), want: domain.RoomAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Execute(context.Background(), &Request{RoomID: 1, At: tt.at})
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.Status)
			if tt.want == domain.RoomOccupied {
				require.NotNil(t, resp.Current)
				assert.Equal(t, b.ID, resp.Current.BookingID)
			} else {
				assert.Nil(t, resp.Current)
			}
		})
	}
}

func TestUseCase_Execute_CancelledFreesRoom(t *testing.T) {
	uc, store := setup(t)
	b := seed(t, store, 1, "2025-01-16", "10:00", "11:00")
	at := time.Date(2025, 1, 16, 10, 30, 0, 0, utcPlus5)

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 1, At: at})
	require.NoError(t, err)
	require.Equal(t, domain.RoomOccupied, resp.Status)

	require.NoError(t, store.Cancel(context.Background(), b.ID))

	resp, err = uc.Execute(context.Background(), &Request{RoomID: 1, At: at})
	require.NoError(t, err)
	assert.Equal(t, domain.RoomAvailable, resp.Status)
}

func TestUseCase_ExecuteAll(t *testing.T) {
	uc, store := setup(t)
	seed(t, store, 2, "2025-01-16", "10:00", "11:00")
	uc.timeProvider = fixedTime{t: time.Date(2025, 1, 16, 5, 15, 0, 0, time.UTC)}

	all, err := uc.ExecuteAll(context.Background(), time.Time{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	assert.Equal(t, int64(1), all[0].Room.ID)
	assert.Equal(t, domain.RoomAvailable, all[0].Status)
	assert.Equal(t, int64(2), all[1].Room.ID)
	assert.Equal(t, domain.RoomOccupied, all[1].Status)
	assert.Equal(t, 10, all[1].At.Hour())
}

func TestUseCase_Execute_UnknownRoom(t *testing.T) {
	uc, _ := setup(t)

	_, err := uc.Execute(context.Background(), &Request{RoomID: 9})
	assert.ErrorIs(t, err, ErrRoomNotFound)
	assert.Equal(t, domain.ReasonNotFound, domain.ReasonOf(err))
}
