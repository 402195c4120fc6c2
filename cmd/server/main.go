package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/csg33k/employee-directory/internal/adapters/memory"
	"github.com/csg33k/employee-directory/internal/adapters/pdf"
	sqliteadapter "github.com/csg33k/employee-directory/internal/adapters/sqlite"
	"github.com/csg33k/employee-directory/internal/adapters/table"
	"github.com/csg33k/employee-directory/internal/handlers"
	"github.com/csg33k/employee-directory/internal/metrics"
	"github.com/csg33k/employee-directory/internal/ports"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

type serveOptions struct {
	port            string
	store           string
	dsn             string
	logLevel        string
	shutdownTimeout time.Duration
}

func main() {
	err := godotenv.Load()
	if err != nil {
		slog.Warn("error loading .env file", "err", err)
	}
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := serveOptions{}

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the employee directory web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}
	serve.Flags().StringVar(&opts.port, "port", envOr("PORT", "8080"), "HTTP listen port")
	serve.Flags().StringVar(&opts.store, "store", envOr("STORE", "memory"), "Record store: memory or sqlite")
	serve.Flags().StringVar(&opts.dsn, "sqlite-dsn", envOr("DB_PATH", sqliteadapter.MemoryDSN), "SQLite DSN when --store=sqlite")
	serve.Flags().StringVar(&opts.logLevel, "log-level", envOr("LOG_LEVEL", "info"), "Log level (debug, info, warn, error)")
	serve.Flags().DurationVar(&opts.shutdownTimeout, "shutdown-timeout", 10*time.Second, "Grace period for in-flight requests on shutdown")

	root := &cobra.Command{
		Use:          "employee-directory",
		Short:        "Single-page employee directory",
		SilenceUsage: true,
		// bare invocation serves with defaults
		RunE: serve.RunE,
	}
	root.Flags().AddFlagSet(serve.Flags())
	root.AddCommand(serve)
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "employee-directory %s\n", Version)
		},
	})
	return root
}

func run(ctx context.Context, opts serveOptions) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(opts.logLevel)}))
	slog.SetDefault(logger)

	repo, closeRepo, err := openStore(opts)
	if err != nil {
		return err
	}
	defer closeRepo()

	h := handlers.New(repo, metrics.New(true), logger, table.New(), pdf.New())
	if err := h.SyncMetrics(ctx); err != nil {
		return fmt.Errorf("read store: %w", err)
	}
	srv := &http.Server{
		Addr:              net.JoinHostPort("", opts.port),
		Handler:           h.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.Info("employee directory running", "url", "http://localhost:"+opts.port, "store", opts.store)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", "timeout", opts.shutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), opts.shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openStore(opts serveOptions) (ports.EmployeeRepository, func(), error) {
	switch opts.store {
	case "memory":
		return memory.New(), func() {}, nil
	case "sqlite":
		repo, err := sqliteadapter.New(opts.dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return repo, func() { repo.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q (want memory or sqlite)", opts.store)
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
