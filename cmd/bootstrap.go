package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	goredis "github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-RoomBooking/internal/config"
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/infra/lock"
	"github.com/m04kA/SMC-RoomBooking/internal/infra/redis"
	bookingRepo "github.com/m04kA/SMC-RoomBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-RoomBooking/internal/infra/storage/filestore"
	roomRepo "github.com/m04kA/SMC-RoomBooking/internal/infra/storage/room"
	"github.com/m04kA/SMC-RoomBooking/internal/schedule"
	bookingsService "github.com/m04kA/SMC-RoomBooking/internal/service/bookings"
	createBookingUC "github.com/m04kA/SMC-RoomBooking/internal/usecase/create_booking"
	getRoomAvailabilityUC "github.com/m04kA/SMC-RoomBooking/internal/usecase/get_room_availability"
	getRoomStatusUC "github.com/m04kA/SMC-RoomBooking/internal/usecase/get_room_status"
	updateBookingUC "github.com/m04kA/SMC-RoomBooking/internal/usecase/update_booking"
	"github.com/m04kA/SMC-RoomBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-RoomBooking/pkg/keylock"
	"github.com/m04kA/SMC-RoomBooking/pkg/logger"
	"github.com/m04kA/SMC-RoomBooking/pkg/metrics"
	"github.com/m04kA/SMC-RoomBooking/pkg/simpletxmanager"
	"github.com/m04kA/SMC-RoomBooking/pkg/txmanager"
)

// bookingStore общее подмножество PostgreSQL-репозитория и файлового хранилища
type bookingStore interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListConfirmed(ctx context.Context, roomID int64, date time.Time) ([]*domain.Booking, error)
	ListByRequester(ctx context.Context, name, org string) ([]*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	Cancel(ctx context.Context, id int64) error
}

type roomStore interface {
	List(ctx context.Context) ([]domain.Room, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

type txManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

type locker interface {
	Lock(ctx context.Context, key string) (func(), error)
}

// engine хранилища и бизнес-логика, общие для api и bot
type engine struct {
	metrics   *metrics.Metrics
	validator *schedule.Validator

	bookings      *bookingsService.Service
	createBooking *createBookingUC.UseCase
	updateBooking *updateBookingUC.UseCase
	availability  *getRoomAvailabilityUC.UseCase
	roomStatus    *getRoomStatusUC.UseCase

	redis   *goredis.Client
	closers []func()
}

func newEngine(ctx context.Context, cfg *config.Config, log *logger.Logger) (*engine, error) {
	e := &engine{}

	if cfg.Metrics.Enabled {
		e.metrics = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	rules, err := cfg.Schedule.Rules()
	if err != nil {
		return nil, fmt.Errorf("schedule rules: %w", err)
	}
	e.validator = schedule.NewValidator(rules, cfg.Schedule.Location())
	log.Info("Working hours %s-%s (last start %s) in %s", rules.Open, rules.Close, rules.LastStart, e.validator.Location())

	var (
		bookings bookingStore
		rooms    roomStore
		tx       txManager
	)

	switch cfg.Storage.Backend {
	case config.StoragePostgres:
		bookings, rooms, tx, err = e.openPostgres(ctx, cfg, log)
	case config.StorageFile:
		bookings, rooms, tx, err = e.openFile(cfg, log)
	default:
		err = fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
	if err != nil {
		e.Close()
		return nil, err
	}

	var keyLocker locker
	switch cfg.Lock.Backend {
	case config.LockRedis:
		client, err := e.redisClient(ctx, cfg, log)
		if err != nil {
			e.Close()
			return nil, err
		}
		keyLocker = lock.NewRedis(client, cfg.LockTTL(), cfg.LockRetryDelay(), log)
		log.Info("Using Redis locks (ttl=%s)", cfg.LockTTL())
	default:
		keyLocker = keylock.New()
		log.Info("Using in-process locks")
	}

	e.bookings = bookingsService.NewService(bookings, rooms, e.validator, keyLocker, tx, e.metrics, log)
	e.createBooking = createBookingUC.NewUseCase(bookings, rooms, e.validator, keyLocker, tx, e.metrics, log)
	e.updateBooking = updateBookingUC.NewUseCase(bookings, e.validator, keyLocker, tx, e.metrics, log)
	e.availability = getRoomAvailabilityUC.NewUseCase(bookings, rooms, e.validator, log)
	e.roomStatus = getRoomStatusUC.NewUseCase(bookings, rooms, e.validator, log)

	return e, nil
}

func (e *engine) openPostgres(ctx context.Context, cfg *config.Config, log *logger.Logger) (bookingStore, roomStore, txManager, error) {
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	e.closers = append(e.closers, func() { _ = db.Close() })

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	stopStats := make(chan struct{})
	e.closers = append(e.closers, func() { close(stopStats) })
	wrapped := dbmetrics.WrapWithDefault(db, e.metrics, stopStats)

	rooms := roomRepo.NewRepository(wrapped)
	if err := rooms.Sync(ctx, cfg.DomainRooms()); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to sync rooms: %w", err)
	}
	log.Info("Synced %d rooms from configuration", len(cfg.Rooms))

	tx := txmanager.NewTransactionManager(wrapped,
		txmanager.WithRetries(cfg.Database.TxMaxRetries, txmanager.DefaultRetryDelay))

	return bookingRepo.NewRepository(wrapped), rooms, tx, nil
}

func (e *engine) openFile(cfg *config.Config, log *logger.Logger) (bookingStore, roomStore, txManager, error) {
	store, err := filestore.New(cfg.Storage.FileDir)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open file storage: %w", err)
	}
	log.Info("Using file storage at %s", store.Path())

	tx := simpletxmanager.NewTransactionManager(simpletxmanager.WithGuard(store))
	return store, roomRepo.NewStatic(cfg.DomainRooms()), tx, nil
}

// redisClient один клиент на процесс для блокировок и сессий бота
func (e *engine) redisClient(ctx context.Context, cfg *config.Config, log *logger.Logger) (*goredis.Client, error) {
	if e.redis != nil {
		return e.redis, nil
	}

	client, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	log.Info("Connected to Redis at %s (db=%d)", cfg.Redis.Address, cfg.Redis.DB)

	e.redis = client
	e.closers = append(e.closers, func() { _ = redis.Close(client) })
	return client, nil
}

// Close освобождает ресурсы в обратном порядке
func (e *engine) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		e.closers[i]()
	}
	e.closers = nil
}
