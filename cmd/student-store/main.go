// main is the entry point of the student store.
//
// STARTUP SEQUENCE:
//  1. Load configuration
//  2. Initialise the logger
//  3. Open the SQLite database and build the student repository
//  4. Register the HTTP routes
//  5. Serve until SIGINT/SIGTERM, then shut down gracefully
//
// RUNNING THE SERVER:
//
//	go run ./cmd/student-store --config=config/local.yaml
//
// or:
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/student-store
package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aanand-mishra/student-store/internal/config"
	"github.com/aanand-mishra/student-store/internal/http/handlers/student"
	"github.com/aanand-mishra/student-store/internal/logger"
	"github.com/aanand-mishra/student-store/internal/storage/repository"
	"github.com/aanand-mishra/student-store/internal/storage/sqlite"
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	log.Info("starting student-store",
		slog.String("env", cfg.Env),
		slog.String("version", "1.0.0"),
	)

	db, err := sqlite.New(cfg)
	if err != nil {
		log.Error("failed to initialise storage",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("storage initialised",
		slog.String("path", cfg.StoragePath))

	students := repository.New(db)

	server := &http.Server{
		Addr:         cfg.HTTPServer.Addr,
		Handler:      student.Routes(students),
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	if code := serve(log, server, db, done, cfg.HTTPServer.ShutdownTimeout); code != 0 {
		os.Exit(code)
	}

	log.Info("server stopped gracefully")
}

// serve runs server until stop fires or ListenAndServe fails, then shuts it
// down and closes db. It returns the process exit code; the caller exits
// only after db is closed, since os.Exit skips deferred calls.
func serve(log *slog.Logger, server *http.Server, db io.Closer, stop <-chan os.Signal, shutdownTimeout time.Duration) int {
	// ErrServerClosed, the expected result of Shutdown, is not sent.
	serveErr := make(chan error, 1)
	go func() {
		log.Info("server started", slog.String("address", server.Addr))

		if err := server.ListenAndServe(); err != nil &&
			!errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	exitCode := 0
	select {
	case <-stop:
		log.Info("shutdown signal received, stopping server...")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		if err := server.Shutdown(ctx); err != nil {
			log.Error("failed to shutdown server gracefully",
				slog.String("error", err.Error()))
			exitCode = 1
		}
		cancel()
	case err := <-serveErr:
		log.Error("server encountered an error",
			slog.String("error", err.Error()))
		exitCode = 1
	}

	if err := db.Close(); err != nil {
		log.Error("failed to close storage",
			slog.String("error", err.Error()))
		exitCode = 1
	}

	return exitCode
}
