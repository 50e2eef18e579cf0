package room

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

func TestStatic(t *testing.T) {
	repo := NewStatic([]domain.Room{
		{ID: 2, Name: "Алатау", Capacity: 8},
		{ID: 1, Name: "Каспий", Capacity: 12, Features: []string{"проектор"}},
	})

	rooms, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, int64(1), rooms[0].ID)
	assert.Equal(t, int64(2), rooms[1].ID)

	got, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Каспий", got.Name)

	_, err = repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrRoomNotFound)
	assert.Equal(t, domain.ReasonNotFound, domain.ReasonOf(err))
}
