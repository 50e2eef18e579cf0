package simpletxmanager

import "context"

// Guard захватывает хранилище на время fn (например, файл под flock)
type Guard interface {
	Exclusive(ctx context.Context, fn func(ctx context.Context) error) error
}

// Manager менеджер "транзакций" для хранилищ без транзакций (файловый бэкенд).
// Атомарность каждой записи обеспечивает само хранилище.
// С Guard чтение, проверка и запись внутри fn не перемежаются с другими процессами.
type Manager struct {
	guard Guard
}

// Option настройка менеджера
type Option func(*Manager)

// WithGuard выполняет каждую "транзакцию" под захватом хранилища
func WithGuard(g Guard) Option {
	return func(m *Manager) {
		m.guard = g
	}
}

// NewTransactionManager создает менеджер, который вызывает fn (под Guard, если он задан)
func NewTransactionManager(opts ...Option) *Manager {
	m := &Manager{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *Manager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *Manager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *Manager) run(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.guard == nil {
		return fn(ctx)
	}
	return m.guard.Exclusive(ctx, fn)
}
