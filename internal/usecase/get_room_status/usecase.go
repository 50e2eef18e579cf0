package get_room_status

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/schedule"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// UseCase занятость комнат в момент времени.
// Дата и время суток берутся в том же часовом поясе, что и при проверке слотов.
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	loc          *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	validator *schedule.Validator,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		loc:          validator.Location(),
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает available/occupied для одной комнаты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.RoomID <= 0 {
		return nil, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.logger.Warn("GetRoomStatus: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("GetRoomStatus: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	return uc.status(ctx, *room, uc.at(req.At))
}

// ExecuteAll возвращает состояние всех комнат, по возрастанию ID
func (uc *UseCase) ExecuteAll(ctx context.Context, at time.Time) ([]*Response, error) {
	rooms, err := uc.roomRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetRoomStatus: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	local := uc.at(at)
	result := make([]*Response, 0, len(rooms))
	for _, room := range rooms {
		resp, err := uc.status(ctx, room, local)
		if err != nil {
			return nil, err
		}
		result = append(result, resp)
	}

	return result, nil
}

func (uc *UseCase) at(at time.Time) time.Time {
	if at.IsZero() {
		at = uc.timeProvider.Now()
	}
	return at.In(uc.loc)
}

func (uc *UseCase) status(ctx context.Context, room domain.Room, local time.Time) (*Response, error) {
	date := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)

	bookings, err := uc.bookingRepo.ListConfirmed(ctx, room.ID, date)
	if err != nil {
		uc.logger.Error("GetRoomStatus: failed to list bookings for room=%d: %v", room.ID, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	resp := &Response{
		Room:   room,
		Status: domain.RoomAvailable,
		At:     local,
	}

	if current := schedule.OccupiedBy(bookings, types.NewTimeString(local)); current != nil {
		resp.Status = domain.RoomOccupied
		resp.Current = &CurrentBooking{
			BookingID:     current.ID,
			Start:         current.StartTime,
			End:           current.EndTime,
			RequesterName: current.RequesterName,
			RequesterOrg:  current.RequesterOrg,
		}
	}

	return resp, nil
}
