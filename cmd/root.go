package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-RoomBooking/internal/config"
	"github.com/m04kA/SMC-RoomBooking/pkg/logger"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "roombooking",
		Short:         "Бронирование переговорных: HTTP API, Telegram-бот и миграции",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.toml", "путь к config.toml")

	root.AddCommand(newAPICmd(&configPath))
	root.AddCommand(newBotCmd(&configPath))
	root.AddCommand(newMigrateCmd(&configPath))
	root.AddCommand(newKeysCmd())

	return root
}

// loadConfig читает конфигурацию и открывает логгер
func loadConfig(path string) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	log.Info("Configuration loaded from %s (storage=%s, lock=%s)", path, cfg.Storage.Backend, cfg.Lock.Backend)
	return cfg, log, nil
}
