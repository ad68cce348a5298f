// Package server boots the API process: config, database, cache, storage,
// queue workers, and the HTTP listener with graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/isipark/siteapi/app/routes"
	"github.com/isipark/siteapi/config"
	"github.com/isipark/siteapi/pkg/cache"
	"github.com/isipark/siteapi/pkg/database"
	"github.com/isipark/siteapi/pkg/logger"
	"github.com/isipark/siteapi/pkg/queue"
	"github.com/isipark/siteapi/pkg/storage"
)

// workerCount is the number of in-process queue workers the API runs.
// A dedicated worker process (`siteapi queue:work`) can take over under
// heavier load.
const workerCount = 4

// Run boots everything and blocks until SIGINT/SIGTERM.
func Run() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("server: load config: %w", err)
	}

	if err := database.Connect(); err != nil {
		return fmt.Errorf("server: %w", err)
	}

	// Redis is optional: without it reads go straight to the database and
	// jobs run on the in-memory queue.
	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, serving uncached", "error", err)
	} else {
		queue.SetDriver(queue.NewRedisDriver())
	}

	if err := storage.Connect(); err != nil {
		return fmt.Errorf("server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	queue.StartWorkers(ctx, workerCount)

	r := routes.Build(database.DB)

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}
