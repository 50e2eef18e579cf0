package get_room_availability

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

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func setup(t *testing.T, now time.Time) (*UseCase, *filestore.Store) {
	t.Helper()

	store, err := filestore.New(t.TempDir())
	require.NoError(t, err)

	rooms := room.NewStatic([]domain.Room{{ID: 1, Name: "Каспий", Capacity: 12}})
	validator := schedule.NewValidator(schedule.DefaultRules(), time.FixedZone("UTC+5", 5*60*60))

	uc := NewUseCase(store, rooms, validator, logger.Nop())
	uc.timeProvider = fixedTime{t: now}
	return uc, store
}

func seed(t *testing.T, store *filestore.Store, date, start, end string) *domain.Booking {
	t.Helper()
	d, _ := time.Parse(domain.DateFormat, date)
	b, err := store.Create(context.Background(), &domain.Booking{
		RoomID:        1,
		Date:          d,
		StartTime:     types.MustTimeString(start),
		EndTime:       types.MustTimeString(end),
		RequesterName: "Anna",
		RequesterOrg:  "Kaspi",
		Purpose:       "планерка",
	})
	require.NoError(t, err)
	return b
}

func TestUseCase_Execute(t *testing.T) {
	// 2025-01-15 10:05 по UTC+5, запрашиваем следующий день
	uc, store := setup(t, time.Date(2025, 1, 15, 5, 5, 0, 0, time.UTC))
	seed(t, store, "2025-01-16", "13:00", "14:00")
	seed(t, store, "2025-01-16", "09:00", "10:00")

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 1, Date: "2025-01-16", StepMinutes: 30})
	require.NoError(t, err)

	assert.Equal(t, "Каспий", resp.RoomName)
	require.Len(t, resp.Occupied, 2)
	assert.Equal(t, "09:00", resp.Occupied[0].Start.String())
	assert.Equal(t, "Anna", resp.Occupied[0].RequesterName)

	require.Len(t, resp.Free, 2)
	assert.Equal(t, domain.TimeRange{Start: "10:00", End: "13:00"}, resp.Free[0])
	assert.Equal(t, domain.TimeRange{Start: "14:00", End: "18:00"}, resp.Free[1])

	assert.NotContains(t, resp.StartOptions, types.TimeString("09:00"))
	assert.NotContains(t, resp.StartOptions, types.TimeString("09:30"))
	assert.Contains(t, resp.StartOptions, types.TimeString("10:00"))
	assert.NotContains(t, resp.StartOptions, types.TimeString("13:30"))
	assert.Contains(t, resp.StartOptions, types.TimeString("14:00"))
	assert.Equal(t, types.TimeString("17:30"), resp.StartOptions[len(resp.StartOptions)-1])
}

func TestUseCase_Execute_TodayDropsPastStarts(t *testing.T) {
	// 2025-01-15 12:00 по UTC+5
	uc, _ := setup(t, time.Date(2025, 1, 15, 7, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 1, Date: "2025-01-15"})
	require.NoError(t, err)

	require.NotEmpty(t, resp.StartOptions)
	assert.Equal(t, types.TimeString("12:10"), resp.StartOptions[0])
	require.Len(t, resp.Free, 1)
	assert.Equal(t, domain.TimeRange{Start: "09:00", End: "18:00"}, resp.Free[0])
}

func TestUseCase_Execute_Errors(t *testing.T) {
	uc, _ := setup(t, time.Date(2025, 1, 15, 5, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), &Request{RoomID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{RoomID: 1, Date: "15/01/2025"})
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Equal(t, domain.ReasonInvalidTime, domain.ReasonOf(err))

	_, err = uc.Execute(context.Background(), &Request{RoomID: 7, Date: "2025-01-16"})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}
