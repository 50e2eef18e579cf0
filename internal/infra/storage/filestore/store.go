package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

const (
	// BookingsFile имя файла с бронированиями в каталоге хранилища
	BookingsFile = "bookings.json"

	lockSuffix     = ".lock"
	lockRetryDelay = 10 * time.Millisecond
)

// Store хранилище бронирований в одном JSON-файле.
// Файл перечитывается на каждую операцию и перезаписывается целиком
// через временный файл и rename, поэтому неудачная запись не меняет состояние.
// Каждая операция идет под flock на bookings.json.lock: файл могут делить
// несколько процессов (api и bot).
type Store struct {
	mu    sync.Mutex
	flock *flock.Flock
	path  string
	now   func() time.Time

	rename func(oldpath, newpath string) error
}

// Option настройка хранилища
type Option func(*Store)

// WithClock задает источник времени для created_at/updated_at
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New открывает хранилище в каталоге dir, создавая каталог и пустой файл при необходимости
func New(dir string, opts ...Option) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create dir %s: %v", ErrWrite, dir, err)
	}

	path := filepath.Join(dir, BookingsFile)
	s := &Store{
		flock:  flock.New(path + lockSuffix),
		path:   path,
		now:    time.Now,
		rename: os.Rename,
	}
	for _, opt := range opts {
		opt(s)
	}

	err := s.Exclusive(context.Background(), func(context.Context) error {
		if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
			return s.save(nil)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

type heldKey struct{}

// Exclusive выполняет fn, удерживая файл хранилища.
// Вызовы Store с контекстом fn не захватывают блокировку повторно,
// так что чтение, проверка и запись внутри fn идут как одна операция.
func (s *Store) Exclusive(ctx context.Context, fn func(ctx context.Context) error) error {
	unlock, err := s.acquire(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	return fn(context.WithValue(ctx, heldKey{}, s))
}

func (s *Store) acquire(ctx context.Context) (func(), error) {
	if holder, _ := ctx.Value(heldKey{}).(*Store); holder == s {
		return func() {}, nil
	}

	s.mu.Lock()
	locked, err := s.flock.TryLockContext(ctx, lockRetryDelay)
	if err != nil || !locked {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s: %v", ErrLock, s.flock.Path(), err)
	}

	return func() {
		_ = s.flock.Unlock()
		s.mu.Unlock()
	}, nil
}

// Path путь к файлу бронирований
func (s *Store) Path() string {
	return s.path
}

// Create добавляет подтвержденное бронирование с ID = max(ID) + 1
func (s *Store) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	unlock, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}

	var maxID int64
	for _, r := range records {
		if r.ID > maxID {
			maxID = r.ID
		}
	}

	created := booking.Clone()
	now := s.now()
	created.ID = maxID + 1
	created.Status = domain.StatusConfirmed
	created.CreatedAt = now
	created.UpdatedAt = now
	created.CancelledAt = nil

	if err := s.save(append(records, fromDomain(created))); err != nil {
		return nil, err
	}

	return created, nil
}

// GetByID получает бронирование по ID (в любом статусе)
func (s *Store) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	unlock, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}

	for _, r := range records {
		if r.ID == id {
			return r.toDomain()
		}
	}

	return nil, ErrBookingNotFound
}

// ListConfirmed подтвержденные бронирования комнаты на дату, по возрастанию начала
func (s *Store) ListConfirmed(ctx context.Context, roomID int64, date time.Time) ([]*domain.Booking, error) {
	day := date.Format(domain.DateFormat)

	bookings, err := s.filter(ctx, func(r record) bool {
		return r.RoomID == roomID && r.Date == day && r.Status == string(domain.StatusConfirmed)
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].StartTime.IsBefore(bookings[j].StartTime)
	})
	return bookings, nil
}

// ListByRequester подтвержденные бронирования пользователя, по дате и началу
func (s *Store) ListByRequester(ctx context.Context, name, org string) ([]*domain.Booking, error) {
	bookings, err := s.filter(ctx, func(r record) bool {
		return r.UserName == name && r.UserCompany == org && r.Status == string(domain.StatusConfirmed)
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		if !bookings[i].Date.Equal(bookings[j].Date) {
			return bookings[i].Date.Before(bookings[j].Date)
		}
		return bookings[i].StartTime.IsBefore(bookings[j].StartTime)
	})
	return bookings, nil
}

// Update переносит подтвержденное бронирование: дата, время и цель
func (s *Store) Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	unlock, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}

	idx := indexOf(records, booking.ID)
	if idx < 0 || records[idx].Status != string(domain.StatusConfirmed) {
		return nil, ErrBookingNotFound
	}

	current, err := records[idx].toDomain()
	if err != nil {
		return nil, err
	}

	current.Date = booking.Date
	current.StartTime = booking.StartTime
	current.EndTime = booking.EndTime
	current.Purpose = booking.Purpose
	current.UpdatedAt = s.now()

	updated := make([]record, len(records))
	copy(updated, records)
	updated[idx] = fromDomain(current)

	if err := s.save(updated); err != nil {
		return nil, err
	}

	return current, nil
}

// Cancel переводит подтвержденное бронирование в статус cancelled
func (s *Store) Cancel(ctx context.Context, id int64) error {
	unlock, err := s.acquire(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	records, err := s.load()
	if err != nil {
		return err
	}

	idx := indexOf(records, id)
	if idx < 0 || records[idx].Status != string(domain.StatusConfirmed) {
		return ErrBookingNotFound
	}

	now := formatTimestamp(s.now())
	updated := make([]record, len(records))
	copy(updated, records)
	updated[idx].Status = string(domain.StatusCancelled)
	updated[idx].CancelledAt = now
	updated[idx].UpdatedAt = now

	return s.save(updated)
}

func (s *Store) filter(ctx context.Context, match func(record) bool) ([]*domain.Booking, error) {
	unlock, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}

	bookings := make([]*domain.Booking, 0)
	for _, r := range records {
		if !match(r) {
			continue
		}
		b, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func (s *Store) load() ([]record, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}

	if len(data) == 0 {
		return []record{}, nil
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrRead, s.path, err)
	}
	return records, nil
}

func (s *Store) save(records []record) error {
	if records == nil {
		records = []record{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrWrite, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "bookings-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", ErrWrite, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: write temp file: %v", ErrWrite, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: sync temp file: %v", ErrWrite, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: close temp file: %v", ErrWrite, err)
	}

	if err := s.rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: replace %s: %v", ErrWrite, s.path, err)
	}

	return nil
}

func indexOf(records []record, id int64) int {
	for i, r := range records {
		if r.ID == id {
			return i
		}
	}
	return -1
}
