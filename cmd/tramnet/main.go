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

	"tramnet.onebusaway.org/internal/app"
	"tramnet.onebusaway.org/internal/console"
	"tramnet.onebusaway.org/internal/logging"
	"tramnet.onebusaway.org/internal/restapi"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := loadConfig(args, os.LookupEnv, stderr)
	if err != nil {
		logging.LogError(logging.NewStructuredLogger(stderr, slog.LevelError), "failed to load configuration", err)
		return 2
	}

	level, _ := logging.ParseLevel(cfg.LogLevel)
	logger := logging.NewStructuredLogger(stderr, level).With(slog.String("env", cfg.Environment().String()))

	application := app.New(cfg, logger)

	input := stdin
	quiet := cfg.Quiet
	if cfg.Script != "" {
		f, err := os.Open(cfg.Script)
		if err != nil {
			logging.LogError(logger, "failed to open command script", err, slog.String("script", cfg.Script))
			return 1
		}
		defer logging.SafeCloseWithLogging(f, logger, "close_command_script")
		input = f
		quiet = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var srv *http.Server
	if cfg.DebugAddr != "" {
		srv = &http.Server{
			Addr:         cfg.DebugAddr,
			Handler:      restapi.NewRestAPI(application).Handler(),
			IdleTimeout:  time.Minute,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
		}
		go func() {
			logger.Info("starting debug server", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logging.LogError(logger, "debug server stopped", err, slog.String("addr", srv.Addr))
			}
		}()
	}

	runErr := console.New(application, stdout, quiet).Run(ctx, input)

	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logging.LogError(logger, "failed to shut down debug server", err)
		}
	}

	if runErr != nil {
		return 1
	}
	return 0
}
