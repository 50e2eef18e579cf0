package room

import (
	"context"
	"sort"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// Static справочник комнат в памяти, заполняется из конфигурации
type Static struct {
	rooms map[int64]domain.Room
	order []int64
}

// NewStatic создает справочник. List возвращает комнаты по возрастанию ID.
func NewStatic(rooms []domain.Room) *Static {
	s := &Static{rooms: make(map[int64]domain.Room, len(rooms))}
	for _, r := range rooms {
		if _, ok := s.rooms[r.ID]; !ok {
			s.order = append(s.order, r.ID)
		}
		s.rooms[r.ID] = r
	}
	sort.Slice(s.order, func(i, j int) bool { return s.order[i] < s.order[j] })
	return s
}

func (s *Static) List(_ context.Context) ([]domain.Room, error) {
	rooms := make([]domain.Room, 0, len(s.order))
	for _, id := range s.order {
		rooms = append(rooms, s.rooms[id])
	}
	return rooms, nil
}

func (s *Static) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	r, ok := s.rooms[id]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return &r, nil
}
