package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-RoomBooking/internal/bot"
	"github.com/m04kA/SMC-RoomBooking/internal/config"
	"github.com/m04kA/SMC-RoomBooking/pkg/logger"
	"github.com/m04kA/SMC-RoomBooking/pkg/metrics"
)

func newBotCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Запустить Telegram-бота",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBot(cmd.Context(), *configPath)
		},
	}
}

func runBot(ctx context.Context, configPath string) error {
	cfg, log, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	defer log.Close()

	if err := cfg.ValidateTelegram(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("Starting room booking bot...")

	eng, err := newEngine(ctx, cfg, log)
	if err != nil {
		log.Error("Failed to initialize: %v", err)
		return err
	}
	defer eng.Close()

	botAPI, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return fmt.Errorf("failed to connect to telegram: %w", err)
	}
	botAPI.Debug = cfg.Telegram.Debug
	log.Info("Authorized on account %s", botAPI.Self.UserName)

	var sessions bot.SessionStore
	switch cfg.Telegram.SessionBackend {
	case config.LockRedis:
		client, err := eng.redisClient(ctx, cfg, log)
		if err != nil {
			return err
		}
		sessions = bot.NewRedisStore(client, time.Duration(cfg.Telegram.SessionTTLHours)*time.Hour)
		log.Info("Bot sessions are stored in Redis")
	default:
		sessions = bot.NewMemoryStore()
		log.Info("Bot sessions are stored in memory")
	}

	var botMetrics bot.Metrics
	if eng.metrics != nil {
		botMetrics = eng.metrics
		if cfg.Metrics.BotPort > 0 {
			srv := serveMetrics(eng.metrics, cfg.Metrics.Path, cfg.Metrics.BotPort, log)
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = srv.Shutdown(shutdownCtx)
			}()
		}
	}

	b := bot.New(botAPI, eng.createBooking, eng.bookings, sessions, eng.validator, bot.Options{
		GroupID:       cfg.Telegram.GroupID,
		AdminIDs:      cfg.Telegram.AdminIDs,
		UpdateTimeout: cfg.Telegram.UpdateTimeout,
	}, botMetrics, log)

	return b.Run(ctx)
}

// serveMetrics отдельный /metrics для процесса бота
func serveMetrics(m *metrics.Metrics, path string, port int, log *logger.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle(path, m.Handler())

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("Prometheus metrics endpoint exposed at :%d%s", port, path)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Metrics server failed: %v", err)
		}
	}()

	return srv
}
