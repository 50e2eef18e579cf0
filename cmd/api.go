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

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-RoomBooking/internal/api"
	"github.com/m04kA/SMC-RoomBooking/internal/api/middleware"
)

func newAPICmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "api",
		Short: "Запустить HTTP API веб-фронтенда",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAPI(cmd.Context(), *configPath)
		},
	}
}

func runAPI(ctx context.Context, configPath string) error {
	cfg, log, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	defer log.Close()

	if err := cfg.ValidateWeb(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("Starting room booking API...")

	eng, err := newEngine(ctx, cfg, log)
	if err != nil {
		log.Error("Failed to initialize: %v", err)
		return err
	}
	defer eng.Close()

	sessions := middleware.NewSessionManager(
		[]byte(cfg.Web.HashKey),
		[]byte(cfg.Web.BlockKey),
		time.Duration(cfg.Web.CookieMaxAge)*24*time.Hour,
		cfg.Web.SecureCookie,
	)

	router := api.NewRouter(api.Dependencies{
		Bookings:            eng.bookings,
		CreateBooking:       eng.createBooking,
		UpdateBooking:       eng.updateBooking,
		GetRoomAvailability: eng.availability,
		GetRoomStatus:       eng.roomStatus,
		Schedule:            eng.validator,
		Sessions:            sessions,
		Metrics:             eng.metrics,
		MetricsPath:         cfg.Metrics.Path,
		Logger:              log,
	})

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		log.Error("Server failed: %v", err)
		return fmt.Errorf("http server: %w", err)
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
