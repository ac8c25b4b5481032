package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventTicketing/internal/auth"
	"eventTicketing/internal/catalog"
	"eventTicketing/internal/config"
	"eventTicketing/internal/http-server/router"
	"eventTicketing/internal/lib/logger/handlers/slogpretty"
	"eventTicketing/internal/lib/logger/sl"
	"eventTicketing/internal/storage/file"
	"eventTicketing/internal/storage/memory"
	"eventTicketing/internal/storage/postgres"
	redisstorage "eventTicketing/internal/storage/redis"
	"eventTicketing/internal/tickets"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

type blobStorage interface {
	tickets.Blob
	Close() error
}

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting event ticketing", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := openStorage(&cfg.Storage)
	if err != nil {
		log.Error("failed to init storage", slog.String("driver", cfg.Storage.Driver), sl.Err(err))
		os.Exit(1)
	}

	log.Info("storage initialized", slog.String("driver", cfg.Storage.Driver))

	ticketService := tickets.NewService(log, tickets.NewStore(log, storage, cfg.Storage.Key))

	handler := router.New(log, router.Deps{
		Tickets:  ticketService,
		Catalog:  catalog.New(),
		Sessions: auth.NewSessions(),
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      handler,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	refreshCtx, cancelRefresh := context.WithCancel(context.Background())
	defer cancelRefresh()

	refreshInterval := cfg.Metrics.RefreshInterval
	if refreshInterval <= 0 {
		refreshInterval = time.Minute
	}

	go func() {
		ticker := time.NewTicker(refreshInterval)
		defer ticker.Stop()

		ticketService.RefreshMetrics(refreshCtx)

		for {
			select {
			case <-ticker.C:
				stats := ticketService.RefreshMetrics(refreshCtx)
				log.Debug("ticket gauges refreshed",
					slog.Int("total", stats.TotalTickets),
					slog.Int("checked_in", stats.CheckedIn),
				)
			case <-refreshCtx.Done():
				return
			}
		}
	}()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	cancelRefresh()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	log.Info("storage closed")
}

func openStorage(cfg *config.Storage) (blobStorage, error) {
	var (
		s   blobStorage
		err error
	)

	switch cfg.Driver {
	case config.DriverMemory:
		s = memory.New()
	case config.DriverFile:
		s, err = file.New(cfg.File.Dir)
	case config.DriverPostgres:
		s, err = postgres.InitDB(&cfg.Database)
	case config.DriverRedis:
		s, err = redisstorage.Connect(&cfg.Redis)
	default:
		err = fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}

	if err != nil {
		return nil, err
	}

	return s, nil
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
