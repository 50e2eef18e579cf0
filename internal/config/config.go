package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/schedule"
)

// EnvPrefix префикс переменных окружения, переопределяющих config.toml
const EnvPrefix = "ROOMBOOK"

// Бэкенды хранилища и блокировок
const (
	StoragePostgres = "postgres"
	StorageFile     = "file"

	LockMemory = "memory"
	LockRedis  = "redis"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server" envconfig:"SERVER"`
	Database DatabaseConfig `toml:"database" envconfig:"DATABASE"`
	Logs     LogsConfig     `toml:"logs" envconfig:"LOGS"`
	Metrics  MetricsConfig  `toml:"metrics" envconfig:"METRICS"`
	Storage  StorageConfig  `toml:"storage" envconfig:"STORAGE"`
	Schedule ScheduleConfig `toml:"schedule" envconfig:"SCHEDULE"`
	Lock     LockConfig     `toml:"lock" envconfig:"LOCK"`
	Redis    RedisConfig    `toml:"redis" envconfig:"REDIS"`
	Telegram TelegramConfig `toml:"telegram" envconfig:"TELEGRAM"`
	Web      WebConfig      `toml:"web" envconfig:"WEB"`

	// Комнаты задаются только в файле
	Rooms []RoomConfig `toml:"rooms" ignored:"true"`
}

// ServerConfig HTTP-сервер
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" split_words:"true"`
	ReadTimeout     int `toml:"read_timeout" split_words:"true"`     // секунды
	WriteTimeout    int `toml:"write_timeout" split_words:"true"`    // секунды
	IdleTimeout     int `toml:"idle_timeout" split_words:"true"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout" split_words:"true"` // секунды
}

// DatabaseConfig PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host" split_words:"true"`
	Port            int    `toml:"port" split_words:"true"`
	User            string `toml:"user" split_words:"true"`
	Password        string `toml:"password" split_words:"true"`
	DBName          string `toml:"dbname" split_words:"true"`
	SSLMode         string `toml:"sslmode" split_words:"true"`
	MaxOpenConns    int    `toml:"max_open_conns" split_words:"true"`
	MaxIdleConns    int    `toml:"max_idle_conns" split_words:"true"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" split_words:"true"` // секунды
	TxMaxRetries    int    `toml:"tx_max_retries" split_words:"true"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// URL строка подключения в формате URL для golang-migrate
func (d DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode)
}

// LogsConfig логирование
type LogsConfig struct {
	File  string `toml:"file" split_words:"true"`
	Level string `toml:"level" split_words:"true"`
}

// MetricsConfig Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" split_words:"true"`
	Path        string `toml:"path" split_words:"true"`
	ServiceName string `toml:"service_name" split_words:"true"`
	BotPort     int    `toml:"bot_port" split_words:"true"` // порт /metrics процесса бота, 0 = выключено
}

// StorageConfig хранилище бронирований
type StorageConfig struct {
	Backend string `toml:"backend" split_words:"true"`
	FileDir string `toml:"file_dir" split_words:"true"`
}

// ScheduleConfig рабочий день и часовой пояс
type ScheduleConfig struct {
	Timezone          string `toml:"timezone" split_words:"true"`
	UTCOffsetHours    int    `toml:"utc_offset_hours" split_words:"true"`
	Open              string `toml:"open" split_words:"true"`
	LastStart         string `toml:"last_start" split_words:"true"`
	MinEnd            string `toml:"min_end" split_words:"true"`
	Close             string `toml:"close" split_words:"true"`
	EndGraceMinutes   int    `toml:"end_grace_minutes" split_words:"true"`
	PastBufferMinutes int    `toml:"past_buffer_minutes" split_words:"true"`
}

// Rules правила рабочего дня
func (s ScheduleConfig) Rules() (schedule.Rules, error) {
	return schedule.NewRules(s.Open, s.LastStart, s.MinEnd, s.Close, s.EndGraceMinutes, s.PastBufferMinutes)
}

// Location часовой пояс; без базы tz используется фиксированное смещение
func (s ScheduleConfig) Location() *time.Location {
	return schedule.LoadLocation(s.Timezone, s.UTCOffsetHours)
}

// LockConfig критические секции (комната, дата)
type LockConfig struct {
	Backend      string `toml:"backend" split_words:"true"`
	TTLSeconds   int    `toml:"ttl_seconds" split_words:"true"`
	RetryDelayMs int    `toml:"retry_delay_ms" split_words:"true"`
}

// RedisConfig Redis (блокировки и сессии бота)
type RedisConfig struct {
	Address  string `toml:"address" split_words:"true"`
	Password string `toml:"password" split_words:"true"`
	DB       int    `toml:"db" split_words:"true"`
	PoolSize int    `toml:"pool_size" split_words:"true"`
}

// TelegramConfig бот
type TelegramConfig struct {
	Token           string  `toml:"token" split_words:"true"`
	GroupID         int64   `toml:"group_id" split_words:"true"`
	AdminIDs        []int64 `toml:"admin_ids" envconfig:"ADMIN_IDS"`
	Debug           bool    `toml:"debug" split_words:"true"`
	UpdateTimeout   int     `toml:"update_timeout" split_words:"true"` // секунды long polling
	SessionBackend  string  `toml:"session_backend" split_words:"true"`
	SessionTTLHours int     `toml:"session_ttl_hours" split_words:"true"`
}

// WebConfig ключи подписи cookie
type WebConfig struct {
	HashKey      string `toml:"hash_key" split_words:"true"`
	BlockKey     string `toml:"block_key" split_words:"true"`
	CookieMaxAge int    `toml:"cookie_max_age_days" split_words:"true"`
	SecureCookie bool   `toml:"secure_cookie" split_words:"true"`
}

// RoomConfig комната из справочника
type RoomConfig struct {
	ID       int64    `toml:"id"`
	Name     string   `toml:"name"`
	Capacity int      `toml:"capacity"`
	Features []string `toml:"features"`
}

// Load читает config.toml, затем .env рядом с ним (если есть) и переменные ROOMBOOK_*
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrLoad, path, err)
	}

	envFile := filepath.Join(filepath.Dir(path), ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: load %s: %v", ErrLoad, envFile, err)
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("%w: environment: %v", ErrLoad, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default значения по умолчанию; файл и окружение их перекрывают
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    20,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			TxMaxRetries:    3,
		},
		Logs: LogsConfig{
			File:  "logs/roombooking.log",
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "roombooking",
		},
		Storage: StorageConfig{
			Backend: StoragePostgres,
			FileDir: "data",
		},
		Schedule: ScheduleConfig{
			Timezone:          domain.DefaultTimezone,
			UTCOffsetHours:    domain.DefaultUTCOffsetHours,
			Open:              domain.DefaultOpenTime,
			LastStart:         domain.DefaultLastStartTime,
			MinEnd:            domain.DefaultMinEndTime,
			Close:             domain.DefaultCloseTime,
			EndGraceMinutes:   domain.DefaultEndGraceMinutes,
			PastBufferMinutes: domain.DefaultPastBufferMinutes,
		},
		Lock: LockConfig{
			Backend:      LockMemory,
			TTLSeconds:   10,
			RetryDelayMs: 25,
		},
		Redis: RedisConfig{
			Address:  "localhost:6379",
			PoolSize: 10,
		},
		Telegram: TelegramConfig{
			UpdateTimeout:   60,
			SessionBackend:  LockMemory,
			SessionTTLHours: 24 * 30,
		},
		Web: WebConfig{
			CookieMaxAge: 30,
		},
	}
}

// Validate проверяет общие параметры
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case StoragePostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database host and dbname are required for postgres storage", ErrInvalidConfig)
		}
	case StorageFile:
		if c.Storage.FileDir == "" {
			return fmt.Errorf("%w: storage.file_dir is required for file storage", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown storage backend %q", ErrInvalidConfig, c.Storage.Backend)
	}

	if c.Lock.Backend != LockMemory && c.Lock.Backend != LockRedis {
		return fmt.Errorf("%w: unknown lock backend %q", ErrInvalidConfig, c.Lock.Backend)
	}
	if c.Telegram.SessionBackend != LockMemory && c.Telegram.SessionBackend != LockRedis {
		return fmt.Errorf("%w: unknown session backend %q", ErrInvalidConfig, c.Telegram.SessionBackend)
	}
	if (c.Lock.Backend == LockRedis || c.Telegram.SessionBackend == LockRedis) && c.Redis.Address == "" {
		return fmt.Errorf("%w: redis.address is required", ErrInvalidConfig)
	}

	if _, err := c.Schedule.Rules(); err != nil {
		return fmt.Errorf("%w: schedule: %v", ErrInvalidConfig, err)
	}

	if len(c.Rooms) == 0 {
		return fmt.Errorf("%w: at least one [[rooms]] entry is required", ErrInvalidConfig)
	}
	seen := make(map[int64]struct{}, len(c.Rooms))
	for _, r := range c.Rooms {
		if r.ID <= 0 || r.Name == "" {
			return fmt.Errorf("%w: room needs positive id and name", ErrInvalidConfig)
		}
		if _, ok := seen[r.ID]; ok {
			return fmt.Errorf("%w: duplicate room id %d", ErrInvalidConfig, r.ID)
		}
		seen[r.ID] = struct{}{}
	}

	return nil
}

// ValidateWeb параметры HTTP API
func (c *Config) ValidateWeb() error {
	if len(c.Web.HashKey) < 32 {
		return fmt.Errorf("%w: web.hash_key must be at least 32 bytes", ErrInvalidConfig)
	}
	switch len(c.Web.BlockKey) {
	case 0, 16, 24, 32:
	default:
		return fmt.Errorf("%w: web.block_key must be 16, 24 or 32 bytes", ErrInvalidConfig)
	}
	return nil
}

// ValidateTelegram параметры бота
func (c *Config) ValidateTelegram() error {
	if c.Telegram.Token == "" {
		return fmt.Errorf("%w: telegram.token is required", ErrInvalidConfig)
	}
	if c.Telegram.GroupID == 0 {
		return fmt.Errorf("%w: telegram.group_id is required", ErrInvalidConfig)
	}
	return nil
}

// DomainRooms комнаты справочника
func (c *Config) DomainRooms() []domain.Room {
	rooms := make([]domain.Room, 0, len(c.Rooms))
	for _, r := range c.Rooms {
		rooms = append(rooms, domain.Room{
			ID:       r.ID,
			Name:     r.Name,
			Capacity: r.Capacity,
			Features: append([]string(nil), r.Features...),
		})
	}
	return rooms
}

// LockTTL время жизни блокировки в Redis
func (c *Config) LockTTL() time.Duration {
	return time.Duration(c.Lock.TTLSeconds) * time.Second
}

// LockRetryDelay пауза между попытками взять блокировку в Redis
func (c *Config) LockRetryDelay() time.Duration {
	return time.Duration(c.Lock.RetryDelayMs) * time.Millisecond
}
