package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"homehub/config"
	"homehub/internal/api"
	"homehub/internal/application"
	"homehub/internal/conversation"
	"homehub/internal/device"
	"homehub/internal/interpreter"
	"homehub/internal/scheduler"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Optional .env for ${VAR} expansion inside the config file.
	_ = godotenv.Load()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}

	logger := setupLogger(cfg.Log)

	seed, err := cfg.DeviceSeed()
	if err != nil {
		logger.Error("invalid device config", "error", err)
		os.Exit(1)
	}

	registry, err := device.NewRegistry(seed, logger)
	if err != nil {
		logger.Error("building device registry", "error", err)
		os.Exit(1)
	}

	loc, err := time.LoadLocation(cfg.Scheduler.Timezone)
	if err != nil {
		logger.Warn("invalid timezone, using local", "error", err, "value", cfg.Scheduler.Timezone)
		loc = time.Local
	}

	history := conversation.NewLog()
	sched := scheduler.New(registry, loc, logger)
	interp := interpreter.New(registry, history, sched, logger)
	svc := application.NewService(registry, history, sched, interp, logger)
	server := api.New(cfg.Server, svc, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutting down")
		cancel()
	}()

	if err := sched.Start(); err != nil {
		logger.Error("starting scheduler", "error", err)
		os.Exit(1)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			logger.Error("http server", "error", err)
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", "error", err)
	}
	sched.Stop()
}

// loadConfig falls back to built-in defaults when the default config file is
// absent, so the server runs out of the box.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Info("config file not found, using defaults", "path", path)
		return config.Default(), nil
	}
	return cfg, err
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
