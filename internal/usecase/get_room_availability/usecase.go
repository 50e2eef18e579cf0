package get_room_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/schedule"
)

// UseCase use case занятости комнаты на дату
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	validator    *schedule.Validator
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
		validator:    validator,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает занятые интервалы, свободные окна рабочего дня
// и сетку времен, с которых сейчас можно начать бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetRoomAvailability: validation failed: %v", err)
		return nil, err
	}

	date, err := schedule.ParseDate(req.Date)
	if err != nil {
		uc.logger.Warn("GetRoomAvailability: %v", err)
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.logger.Warn("GetRoomAvailability: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("GetRoomAvailability: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.ListConfirmed(ctx, room.ID, date)
	if err != nil {
		uc.logger.Error("GetRoomAvailability: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}
	schedule.SortByStart(bookings)

	step := req.StepMinutes
	if step == 0 {
		step = DefaultStepMinutes
	}

	rules := uc.validator.Rules()

	resp := &Response{
		RoomID:       room.ID,
		RoomName:     room.Name,
		Date:         date,
		Occupied:     toOccupied(bookings),
		Free:         schedule.FreeWindows(bookings, rules.Open, rules.Close),
		StartOptions: generateStartOptions(uc.validator, bookings, date, uc.timeProvider.Now(), step),
	}

	uc.logger.Info("GetRoomAvailability: room=%d, date=%s, occupied=%d, free=%d",
		room.ID, req.Date, len(resp.Occupied), len(resp.Free))

	return resp, nil
}
