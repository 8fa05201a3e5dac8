// Package main provides feedctl, the operator CLI of the community feed engine.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"community-feed/internal/common/pagination"
	"community-feed/internal/config"
	pgRepo "community-feed/internal/infra/adapter/persistence/postgres"
	"community-feed/internal/infra/db"
	"community-feed/internal/observability/logging"
	"community-feed/internal/observability/metrics"
	"community-feed/internal/observability/tracing"
	"community-feed/internal/resilience/circuitbreaker"
	"community-feed/internal/usecase/community"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

const usage = `Usage: feedctl [flags] <command> [args]

Commands:
  migrate                                   create the schema
  migrate-down                              drop the schema
  feed <community>                          community feed within the window
  related-author <article> <community>      linked articles by the same writer
  related-category <article> <community>    linked articles sharing a category
  link <community> <article> <user>         cross-post an article
  unlink <community> <article> <user>       remove a cross-post
  candidates <user> <community>             articles the user may still post
  posted <user> <community>                 articles the user has posted

Flags:
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options are the command-line flags. Zero durations defer to the configuration.
type options struct {
	output     string
	window     time.Duration
	timeout    time.Duration
	configFile string
	page       pagination.Params
}

func parseFlags(args []string, stderr io.Writer) (options, []string, error) {
	var opts options
	flags := flag.NewFlagSet("feedctl", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprint(stderr, usage)
		flags.PrintDefaults()
	}
	flags.StringVar(&opts.output, "output", "text", "Output format: text, json or yaml")
	flags.DurationVar(&opts.window, "window", 0, "Feed window, overrides FEED_WINDOW")
	flags.DurationVar(&opts.timeout, "timeout", 0, "Command timeout, overrides QUERY_TIMEOUT")
	flags.StringVar(&opts.configFile, "config", "", "HCL configuration file")
	flags.IntVar(&opts.page.Page, "page", 1, "Page of records to print, 1-based")
	flags.IntVar(&opts.page.Limit, "limit", 0, "Records per page, 0 prints all")
	if err := flags.Parse(args); err != nil {
		return opts, nil, err
	}
	opts.page = opts.page.WithDefaults(pagination.DefaultConfig())
	if err := opts.page.Validate(pagination.DefaultConfig()); err != nil {
		flags.Usage()
		return opts, nil, err
	}
	if !validFormat(opts.output) {
		flags.Usage()
		return opts, nil, fmt.Errorf("unknown output format %q", opts.output)
	}
	if flags.NArg() == 0 {
		flags.Usage()
		return opts, nil, errors.New("command is required")
	}
	return opts, flags.Args(), nil
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, rest, err := parseFlags(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return exitUsage
	}
	command, cmdArgs := rest[0], rest[1:]
	if !knownCommand(command) {
		fmt.Fprintf(stderr, "Error: unknown command %q\n\n%s", command, usage)
		return exitUsage
	}

	// Load environment variables from .env file if it exists
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(stderr, "Error: failed to load .env: %v\n", err)
		return exitFailure
	}

	var files []string
	if opts.configFile != "" {
		files = []string{opts.configFile}
	}
	cfg, err := config.Load(files...)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}
	if opts.window > 0 {
		cfg.FeedWindow = opts.window
	}
	if opts.timeout > 0 {
		cfg.QueryTimeout = opts.timeout
	}

	logger := logging.NewLogger(stderr, cfg.LogLevel, cfg.LogFormat)
	ctx := logging.WithCorrelationID(context.Background(), logging.NewCorrelationID())
	logger = logging.WithContextCorrelation(ctx, logger)
	ctx = logging.WithLogger(ctx, logger)

	if cfg.TracingEnabled {
		shutdown := tracing.InitTracer("community-feed", logger)
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Warn("tracer shutdown failed", slog.Any("error", err))
			}
		}()
	}

	if cfg.MetricsFile != "" {
		defer func() {
			if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
				logger.Warn("failed to write metrics file", slog.String("path", cfg.MetricsFile), slog.Any("error", err))
			}
		}()
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.QueryTimeout)
	defer cancel()

	database, err := db.Open(ctx, cfg.DatabaseURL, db.ConnectionConfig{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
		ConnMaxIdleTime: cfg.DBConnMaxIdleTime,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	switch command {
	case "migrate":
		return migrate(ctx, logger, stderr, "migrate up", database, db.MigrateUp)
	case "migrate-down":
		return migrate(ctx, logger, stderr, "migrate down", database, db.MigrateDown)
	}

	svc := newService(database, cfg, logger)
	return dispatch(ctx, svc, printer{w: stdout, format: opts.output, page: opts.page}, stderr, command, cmdArgs)
}

func migrate(ctx context.Context, logger *slog.Logger, stderr io.Writer, name string, database *sql.DB, fn func(context.Context, *sql.DB) error) int {
	if err := fn(ctx, database); err != nil {
		logger.Error("migration failed", slog.String("migration", name), slog.Any("error", err))
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}
	logger.Info("migration completed", slog.String("migration", name))
	return exitOK
}

// newService wires the postgres repositories, guarded by the circuit breaker when enabled.
func newService(database *sql.DB, cfg *config.Config, logger *slog.Logger) *community.Service {
	var conn pgRepo.DBTX = database
	if cfg.DBCircuitBreaker {
		conn = circuitbreaker.NewDBCircuitBreaker(database, logger)
	}
	return &community.Service{
		Articles:    pgRepo.NewArticleRepo(conn),
		Communities: pgRepo.NewCommunityRepo(conn),
		Categories:  pgRepo.NewCategoryRepo(conn),
		Writers:     pgRepo.NewWriterRepo(conn),
		Links:       pgRepo.NewLinkRepo(conn),
		Window:      cfg.FeedWindow,
		Logger:      logger,
	}
}
