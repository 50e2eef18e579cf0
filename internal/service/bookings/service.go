package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/schedule"
	"github.com/m04kA/SMC-RoomBooking/internal/service/bookings/models"
)

const operationCancel = "cancel"

// Service сервис для чтения бронирований и их отмены
type Service struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	validator    *schedule.Validator
	locker       Locker
	txManager    TransactionManager
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	validator *schedule.Validator,
	locker Locker,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
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

// ListRooms возвращает справочник комнат
func (s *Service) ListRooms(ctx context.Context) ([]models.RoomResponse, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListRooms: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRooms - repository error: %v", ErrInternal, err)
	}

	result := make([]models.RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		result = append(result, models.FromDomainRoom(r))
	}
	return result, nil
}

// GetByID получает бронирование по ID.
// Видеть его может владелец или администратор.
func (s *Service) GetByID(ctx context.Context, id int64, requester domain.Requester) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for %s/%s", id, requester.Name, requester.Org)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if !booking.IsOwnedBy(requester) && !requester.IsAdmin {
		s.logger.Warn("GetByID: access denied for %s/%s to booking id=%d", requester.Name, requester.Org, id)
		return nil, ErrNotOwner
	}

	return models.FromDomainBooking(booking), nil
}

// GetMyBookings подтвержденные бронирования пользователя по дате и времени начала
func (s *Service) GetMyBookings(ctx context.Context, requester domain.Requester) (*models.BookingListResponse, error) {
	if !requester.IsValid() {
		return nil, fmt.Errorf("%w: requester is empty", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.ListByRequester(ctx, requester.Name, requester.Org)
	if err != nil {
		s.logger.Error("GetMyBookings: repository error for %s/%s: %v", requester.Name, requester.Org, err)
		return nil, fmt.Errorf("%w: GetMyBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetMyBookings: fetched %d bookings for %s/%s", len(bookings), requester.Name, requester.Org)
	return models.FromDomainBookingList(bookings), nil
}

// GetRoomSchedule подтвержденные бронирования комнаты на дату по возрастанию начала.
// Пустая дата означает сегодня в рабочем часовом поясе.
func (s *Service) GetRoomSchedule(ctx context.Context, roomID int64, date string) (*models.RoomScheduleResponse, error) {
	day, err := s.resolveDate(date)
	if err != nil {
		return nil, err
	}

	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("GetRoomSchedule: room id=%d not found", roomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetRoomSchedule: repository error for room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: GetRoomSchedule - repository error: %v", ErrInternal, err)
	}

	return s.roomSchedule(ctx, *room, day)
}

// GetDaySchedule расписание всех комнат на дату
func (s *Service) GetDaySchedule(ctx context.Context, date string) ([]*models.RoomScheduleResponse, error) {
	day, err := s.resolveDate(date)
	if err != nil {
		return nil, err
	}

	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("GetDaySchedule: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetDaySchedule - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.RoomScheduleResponse, 0, len(rooms))
	for _, room := range rooms {
		sched, err := s.roomSchedule(ctx, room, day)
		if err != nil {
			return nil, err
		}
		result = append(result, sched)
	}

	return result, nil
}

// Cancel отменяет бронирование.
// Отменить может владелец, администратор отменяет любое.
func (s *Service) Cancel(ctx context.Context, bookingID int64, requester domain.Requester) (err error) {
	defer func() {
		s.record(err)
	}()

	s.logger.Info("Cancel: cancelling booking id=%d by %s/%s (admin=%t)",
		bookingID, requester.Name, requester.Org, requester.IsAdmin)

	booking, err := s.getBooking(ctx, "Cancel", bookingID)
	if err != nil {
		return err
	}
	if err := checkCancellable(booking, requester); err != nil {
		s.logger.Warn("Cancel: booking id=%d rejected: %v", bookingID, err)
		return err
	}

	unlock, err := s.locker.Lock(ctx, schedule.LockKey(booking.RoomID, booking.Date))
	if err != nil {
		s.logger.Error("Cancel: failed to acquire lock: %v", err)
		return fmt.Errorf("%w: Cancel - lock: %v", ErrInternal, err)
	}
	defer unlock()

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := s.getBooking(txCtx, "Cancel", bookingID)
		if err != nil {
			return err
		}
		if err := checkCancellable(current, requester); err != nil {
			return err
		}

		if err := s.bookingRepo.Cancel(txCtx, bookingID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: Cancel - repository error: %w", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if domain.ReasonOf(err) == domain.ReasonStorageError && !errors.Is(err, ErrInternal) {
			return fmt.Errorf("%w: %w", ErrInternal, err)
		}
		return err
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

func checkCancellable(booking *domain.Booking, requester domain.Requester) error {
	if !booking.CanBeCancelled() {
		return ErrBookingNotFound
	}
	if !booking.IsOwnedBy(requester) && !requester.IsAdmin {
		return ErrNotOwner
	}
	return nil
}

func (s *Service) getBooking(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
	}
	return booking, nil
}

func (s *Service) roomSchedule(ctx context.Context, room domain.Room, day time.Time) (*models.RoomScheduleResponse, error) {
	bookings, err := s.bookingRepo.ListConfirmed(ctx, room.ID, day)
	if err != nil {
		s.logger.Error("RoomSchedule: repository error for room id=%d: %v", room.ID, err)
		return nil, fmt.Errorf("%w: RoomSchedule - repository error: %v", ErrInternal, err)
	}
	schedule.SortByStart(bookings)

	return &models.RoomScheduleResponse{
		Room:     models.FromDomainRoom(room),
		Date:     day.Format(domain.DateFormat),
		Bookings: models.FromDomainBookingList(bookings).Bookings,
	}, nil
}

func (s *Service) resolveDate(date string) (time.Time, error) {
	if date == "" {
		return s.validator.Today(s.timeProvider.Now()), nil
	}
	day, err := schedule.ParseDate(date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return day, nil
}

func (s *Service) record(err error) {
	if s.metrics == nil {
		return
	}
	if err == nil {
		s.metrics.RecordBooking(operationCancel, "ok")
		return
	}
	s.metrics.RecordBooking(operationCancel, string(domain.ReasonOf(err)))
}
