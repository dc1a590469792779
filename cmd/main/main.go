package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnknownOlympus/staffbook/internal/cli"
	"github.com/UnknownOlympus/staffbook/internal/config"
	"github.com/UnknownOlympus/staffbook/internal/lib/logger/sl"
	"github.com/UnknownOlympus/staffbook/internal/metrics"
	"github.com/UnknownOlympus/staffbook/internal/repository"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
)

const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	code := execute(ctx, afero.NewOsFs(), os.Stdout, os.Stderr, os.Args[1:])
	stop()
	os.Exit(code)
}

// execute loads the configuration and runs one command, returning the process exit status.
func execute(ctx context.Context, fs afero.Fs, stdout, stderr io.Writer, args []string) int {
	cfg, err := config.Load()
	if err != nil {
		slog.New(slog.NewTextHandler(stderr, nil)).ErrorContext(ctx, "Failed to load configuration", sl.Err(err))
		return 1
	}

	if err = run(ctx, cfg, fs, stdout, stderr, args); err != nil {
		return 1
	}

	return 0
}

// run wires one invocation: logger, metrics, store and dispatcher. Product output goes
// to stdout, logs to stderr.
func run(ctx context.Context, cfg *config.Config, fs afero.Fs, stdout, stderr io.Writer, args []string) error {
	logger := setupLogger(cfg.Env, stderr)

	reg := prometheus.NewRegistry()
	appMetrics := metrics.NewMetrics(reg)

	repo := repository.NewEmployeeRepository(fs, cfg.Storage.Path, appMetrics)
	dispatcher := cli.NewDispatcher(logger, repo, appMetrics, stdout)

	err := dispatcher.Run(ctx, args)
	if err != nil {
		logger.ErrorContext(ctx, "Command failed", sl.Args(args), sl.Err(err))
	}

	if cfg.Metrics.Textfile != "" {
		if exportErr := metrics.WriteTextfile(cfg.Metrics.Textfile, reg); exportErr != nil {
			logger.WarnContext(ctx, "Failed to export metrics", "path", cfg.Metrics.Textfile, sl.Err(exportErr))
		}
	}

	return err
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string, w io.Writer) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(w, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: false,
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{
				Level:     slog.LevelInfo,
				AddSource: false,
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{
				Level:       slog.LevelWarn,
				AddSource:   false,
				ReplaceAttr: dropTime,
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{
				Level:       slog.LevelError,
				AddSource:   false,
				ReplaceAttr: dropTime,
			}),
		)

		log.Error(
			"The env parameter was not specified, or was invalid. Logging will be minimal, by default." +
				" Please specify the value of `env`: local, development, production")
	}

	return log
}

func dropTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.Attr{Key: "", Value: slog.Value{}}
	}

	return a
}
