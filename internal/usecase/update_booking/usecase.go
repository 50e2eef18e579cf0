package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/schedule"
)

const operation = "update"

// UseCase use case переноса бронирования
type UseCase struct {
	bookingRepo  BookingRepository
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
	validator *schedule.Validator,
	locker Locker,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		validator:    validator,
		locker:       locker,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute переносит бронирование владельца на новую дату/время.
// Новый слот проходит те же проверки, что и при создании; собственный прежний
// интервал из проверки пересечений исключается.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	defer func() {
		uc.record(err)
	}()

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("UpdateBooking: id=%d, date=%s, %s-%s, requester=%s/%s",
		req.BookingID, req.Date, req.StartTime, req.EndTime, req.Requester.Name, req.Requester.Org)

	// 1. Правила нового слота
	slot, err := uc.validator.Validate(req.Date, req.StartTime, req.EndTime, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("UpdateBooking: slot rejected: %v", err)
		return nil, err
	}

	// 2. Текущее состояние нужно, чтобы знать старую дату для блокировки
	current, err := uc.getBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if err := checkEditable(current, req.Requester); err != nil {
		uc.logger.Warn("UpdateBooking: id=%d rejected: %v", req.BookingID, err)
		return nil, err
	}

	// 3. Блокируем старый и новый день комнаты в фиксированном порядке
	keys := schedule.LockKeys(
		schedule.LockKey(current.RoomID, current.Date),
		schedule.LockKey(current.RoomID, slot.Date),
	)
	for _, key := range keys {
		unlock, err := uc.locker.Lock(ctx, key)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to acquire lock %s: %v", key, err)
			return nil, fmt.Errorf("%w: failed to acquire lock: %v", ErrInternal, err)
		}
		defer unlock()
	}

	var result *domain.Booking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Перечитываем под блокировкой: бронирование могли отменить
		booking, err := uc.getBooking(txCtx, req.BookingID)
		if err != nil {
			return err
		}
		if err := checkEditable(booking, req.Requester); err != nil {
			return err
		}

		bookings, err := uc.bookingRepo.ListConfirmed(txCtx, booking.RoomID, slot.Date)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to list bookings: %v", err)
			return fmt.Errorf("%w: failed to list bookings: %w", ErrInternal, err)
		}

		if conflict := schedule.FindConflict(bookings, slot.StartTime, slot.EndTime, booking.ID); conflict != nil {
			uc.logger.Warn("UpdateBooking: %s-%s overlaps booking id=%d %s-%s",
				slot.StartTime, slot.EndTime, conflict.ID, conflict.StartTime, conflict.EndTime)
			return ErrSlotNotAvailable
		}

		booking.Date = slot.Date
		booking.StartTime = slot.StartTime
		booking.EndTime = slot.EndTime
		booking.Purpose = req.Purpose

		updated, err := uc.bookingRepo.Update(txCtx, booking)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrRoomUnavailable):
				return ErrSlotNotAvailable
			case errors.Is(err, domain.ErrNotFound):
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking: %w", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		if domain.ReasonOf(err) == domain.ReasonStorageError && !errors.Is(err, ErrInternal) {
			return nil, fmt.Errorf("%w: %w", ErrInternal, err)
		}
		return nil, err
	}

	uc.logger.Info("UpdateBooking: booking id=%d moved to %s %s-%s",
		result.ID, result.Date.Format(domain.DateFormat), result.StartTime, result.EndTime)

	return toResponse(result), nil
}

func (uc *UseCase) getBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.logger.Warn("UpdateBooking: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
	}
	return booking, nil
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
