package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/schedule"
)

const operation = "create"

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	validator    *schedule.Validator
	locker       Locker
	txManager    TransactionManager
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	validator *schedule.Validator,
	locker Locker,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		validator:    validator,
		locker:       locker,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка пересечений и запись выполняются под блокировкой (комната, дата)
// в сериализуемой транзакции, поэтому два пересекающихся запроса не пройдут оба.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	defer func() {
		uc.record(err)
	}()

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: room=%d, date=%s, %s-%s, requester=%s/%s",
		req.RoomID, req.Date, req.StartTime, req.EndTime, req.Requester.Name, req.Requester.Org)

	// 1. Правила слота: формат, порядок, прошлое, рабочие часы
	slot, err := uc.validator.Validate(req.Date, req.StartTime, req.EndTime, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("CreateBooking: slot rejected: %v", err)
		return nil, err
	}

	// 2. Комната
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.logger.Warn("CreateBooking: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateBooking: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 3. Критическая секция по (комната, дата)
	unlock, err := uc.locker.Lock(ctx, schedule.LockKey(room.ID, slot.Date))
	if err != nil {
		uc.logger.Error("CreateBooking: failed to acquire lock: %v", err)
		return nil, fmt.Errorf("%w: failed to acquire lock: %v", ErrInternal, err)
	}
	defer unlock()

	var result *domain.Booking

	// 4. Проверка пересечений и запись в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		bookings, err := uc.bookingRepo.ListConfirmed(txCtx, room.ID, slot.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list bookings: %v", err)
			return fmt.Errorf("%w: failed to list bookings: %w", ErrInternal, err)
		}

		if conflict := schedule.FindConflict(bookings, slot.StartTime, slot.EndTime, 0); conflict != nil {
			uc.logger.Warn("CreateBooking: %s-%s overlaps booking id=%d %s-%s",
				slot.StartTime, slot.EndTime, conflict.ID, conflict.StartTime, conflict.EndTime)
			return ErrSlotNotAvailable
		}

		booking := &domain.Booking{
			RoomID:        room.ID,
			RoomName:      room.Name,
			Date:          slot.Date,
			StartTime:     slot.StartTime,
			EndTime:       slot.EndTime,
			RequesterName: req.Requester.Name,
			RequesterOrg:  req.Requester.Org,
			Purpose:       req.Purpose,
			Status:        domain.StatusConfirmed,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, domain.ErrRoomUnavailable) {
				uc.logger.Warn("CreateBooking: slot taken concurrently: %v", err)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrRoomUnavailable) {
			return nil, ErrSlotNotAvailable
		}
		if domain.ReasonOf(err) == domain.ReasonStorageError && !errors.Is(err, ErrInternal) {
			return nil, fmt.Errorf("%w: %w", ErrInternal, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return toResponse(result), nil
}

func (uc *UseCase) record(err error) {
	if uc.metrics == nil {
		return
	}
	if err == nil {
		uc.metrics.RecordBooking(operation, "ok")
		return
	}
	uc.metrics.RecordBooking(operation, string(domain.ReasonOf(err)))
}
