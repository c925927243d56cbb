package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"vehicles-api/internal/repository"
	"vehicles-api/internal/seed"
	"vehicles-api/internal/server"
	"vehicles-api/internal/service"
)

type options struct {
	port            int
	shutdownTimeout time.Duration
	storage         string
	dbPath          string
	seedFile        string
	rateLimit       float64
	rateBurst       int
	logLevel        string
	logFormat       string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:           "vehicles-api",
		Short:         "Serve the vehicle records HTTP API",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(opts.logLevel, opts.logFormat)
			if err != nil {
				return err
			}
			slog.SetDefault(logger)

			if err := run(cmd.Context(), opts, logger); err != nil {
				logger.Error("server error", "error", err)
				return err
			}
			logger.Info("server stopped gracefully")
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.port, "port", getEnvInt("PORT", 8080), "HTTP listen port")
	f.DurationVar(&opts.shutdownTimeout, "shutdown-timeout", getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second), "graceful shutdown timeout")
	f.StringVar(&opts.storage, "storage", getEnvString("STORAGE", "memory"), "storage backend: memory or sqlite")
	f.StringVar(&opts.dbPath, "db-path", getEnvString("DB_PATH", "vehicles.db"), "SQLite database path")
	f.StringVar(&opts.seedFile, "seed", getEnvString("SEED_FILE", ""), "YAML or JSON file of vehicles to load at startup")
	f.Float64Var(&opts.rateLimit, "rate-limit", getEnvFloat("RATE_LIMIT", 0), "requests per second, 0 disables limiting")
	f.IntVar(&opts.rateBurst, "rate-burst", getEnvInt("RATE_BURST", 20), "rate limiter burst size")
	f.StringVar(&opts.logLevel, "log-level", getEnvString("LOG_LEVEL", "info"), "log level: debug, info, warn, error")
	f.StringVar(&opts.logFormat, "log-format", getEnvString("LOG_FORMAT", "text"), "log format: text or json")

	return cmd
}

func run(ctx context.Context, opts options, logger *slog.Logger) error {
	var repo repository.Repository
	switch opts.storage {
	case "memory":
		repo = repository.NewMemoryRepository()
	case "sqlite":
		sqliteRepo, err := repository.OpenSQLite(ctx, opts.dbPath)
		if err != nil {
			return err
		}
		defer sqliteRepo.Close()
		repo = sqliteRepo
	default:
		return fmt.Errorf("unknown storage backend %q", opts.storage)
	}

	vehicleService := service.NewVehicleService(repo, logger)

	if opts.seedFile != "" {
		vehicles, err := seed.LoadFile(opts.seedFile)
		if err != nil {
			return err
		}
		res, err := seed.Apply(ctx, vehicleService, vehicles)
		if err != nil {
			return err
		}
		logger.Info("seeded vehicles", "file", opts.seedFile, "created", res.Created, "skipped", res.Skipped)
	}

	srv := server.New(server.Config{
		Port:            opts.port,
		ShutdownTimeout: opts.shutdownTimeout,
		RateLimit:       opts.rateLimit,
		RateBurst:       opts.rateBurst,
		Logger:          logger,
	}, vehicleService)

	logger.Info("starting server", "port", opts.port, "storage", opts.storage)

	return srv.Run(ctx)
}

func newLogger(level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	handlerOpts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "json":
		return slog.New(slog.NewJSONHandler(os.Stdout, handlerOpts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(os.Stdout, handlerOpts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

func getEnvString(key string, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
