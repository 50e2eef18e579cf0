package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "roombooking:lock:"

// Освобождаем только свою блокировку
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Redis блокировка по ключу для нескольких процессов (HTTP API и бот).
// Ключ живет не дольше ttl, чтобы упавший процесс не держал комнату вечно.
type Redis struct {
	client     goredis.UniversalClient
	ttl        time.Duration
	retryDelay time.Duration
	logger     Logger
}

// NewRedis создает блокировку поверх клиента Redis
func NewRedis(client goredis.UniversalClient, ttl, retryDelay time.Duration, logger Logger) *Redis {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	if retryDelay <= 0 {
		retryDelay = 25 * time.Millisecond
	}
	return &Redis{
		client:     client,
		ttl:        ttl,
		retryDelay: retryDelay,
		logger:     logger,
	}
}

// Lock ждет ключ, пока не отменен контекст.
// Возвращенная функция освобождает ключ, повторный вызов ничего не делает.
func (r *Redis) Lock(ctx context.Context, key string) (func(), error) {
	redisKey := keyPrefix + key
	token := uuid.NewString()

	for {
		ok, err := r.client.SetNX(ctx, redisKey, token, r.ttl).Result()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, fmt.Errorf("%w: %s: %v", ErrLockFailed, key, err)
		}
		if ok {
			break
		}

		timer := time.NewTimer(r.retryDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() { r.release(key, redisKey, token) })
	}, nil
}

func (r *Redis) release(key, redisKey, token string) {
	// контекст запроса может быть уже отменен
	releaseCtx, cancel := context.WithTimeout(context.Background(), r.ttl)
	defer cancel()

	n, err := releaseScript.Run(releaseCtx, r.client, []string{redisKey}, token).Int()
	if err != nil && !errors.Is(err, goredis.Nil) {
		r.logger.Error("Lock: failed to release %s: %v", key, err)
		return
	}
	if n == 0 {
		r.logger.Warn("Lock: %s expired before release", key)
	}
}
