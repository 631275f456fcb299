package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/ijalalfrz/flight-price-watch-service/internal/app/config"
	"github.com/ijalalfrz/flight-price-watch-service/internal/app/transport"
	"github.com/ijalalfrz/flight-price-watch-service/internal/app/worker"
	"github.com/ijalalfrz/flight-price-watch-service/internal/pkg/logger"
	"github.com/ijalalfrz/flight-price-watch-service/internal/pkg/storage/postgres"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// @title           Flight Price Watch Service API
// @version         0.1.0
// @description     flight-price-watch-service
// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @license.name Rizal Alfarizi
// @license.url https://github.com/ijalalfrz
func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:          "flight-price-watch",
		Short:        "Flight search and saved-search price watch",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", ".env", "path to the .env config file")

	cmd.AddCommand(newServeCommand(&configFile))
	cmd.AddCommand(newWorkerCommand(&configFile))
	cmd.AddCommand(newReconcileCommand(&configFile))
	cmd.AddCommand(newMigrateCommand(&configFile))

	return cmd
}

func loadConfig(configFile string) config.Config {
	cfg := config.MustInitConfig(configFile)
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.String("log_level", string(cfg.LogLevel)))

	return cfg
}

func newServeCommand(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := loadConfig(*configFile)

			return runApp(func(ctx context.Context) error {
				return startHTTPServer(ctx, cfg)
			})
		},
	}
}

func newWorkerCommand(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Run the background worker and the reconciliation schedule",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := loadConfig(*configFile)

			return runApp(func(ctx context.Context) error {
				return startWorker(ctx, cfg)
			})
		},
	}
}

func newReconcileCommand(configFile *string) *cobra.Command {
	var enqueue bool

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Run one reconciliation cycle and exit",
		Long: "Run one reconciliation cycle in this process and exit. With --enqueue the cycle is\n" +
			"handed to the running workers instead.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := loadConfig(*configFile)

			if enqueue {
				return enqueueReconciliationCycle(cmd.Context(), cfg)
			}

			return runApp(func(ctx context.Context) error {
				return runReconciliationCycle(ctx, cfg)
			})
		},
	}

	cmd.Flags().BoolVar(&enqueue, "enqueue", false, "queue a cycle for the workers instead of running it here")

	return cmd
}

func newMigrateCommand(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := loadConfig(*configFile)

			pool, err := postgres.NewPool(cmd.Context(), postgresConfig(cfg))
			if err != nil {
				return err
			}
			defer pool.Close()

			return postgres.Migrate(cmd.Context(), pool)
		},
	}
}

// runApp runs fn until it returns or the process receives a stop signal.
func runApp(fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...")

	var (
		waitGroup sync.WaitGroup
		errCh     = make(chan error, 1)
	)

	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		errCh <- fn(ctx)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	var runErr error

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case runErr = <-errCh:
		cancel()
	}

	waitGroup.Wait()

	if runErr == nil {
		select {
		case runErr = <-errCh:
		default:
		}
	}

	if runErr != nil {
		slog.Error("service stopped with error", slog.String("error", runErr.Error()))
		return runErr
	}

	slog.Info("All service closed...")

	return nil
}

func startHTTPServer(ctx context.Context, cfg config.Config) error {
	deps, err := newDependencies(ctx, cfg)
	if err != nil {
		return err
	}
	defer deps.Close()

	verifier, err := newVerifier(cfg)
	if err != nil {
		return err
	}

	router := transport.MakeHTTPRouter(&cfg, makeEndpoints(deps), verifier)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	serveErr := make(chan error, 1)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- fmt.Errorf("failed to start HTTP server: %w", err)
		}

		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	if err := server.Shutdown(context.WithoutCancel(ctx)); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")

	return nil
}

func startWorker(ctx context.Context, cfg config.Config) error {
	deps, err := newDependencies(ctx, cfg)
	if err != nil {
		return err
	}
	defer deps.Close()

	sender, err := newSender(ctx, cfg)
	if err != nil {
		return err
	}

	redisOpt := asynqRedisOpt(cfg)

	client := worker.NewClient(redisOpt, cfg.Worker.Queue)
	defer client.Close() //nolint:errcheck

	reconciliation := newReconciliationService(cfg, deps, client)

	backgroundWorker := worker.NewWorker(redisOpt, worker.Config{
		Queue:       cfg.Worker.Queue,
		Concurrency: cfg.Worker.Concurrency,
	}, reconciliation, sender)

	scheduler := worker.NewScheduler(redisOpt, cfg.Reconciliation.Cron,
		cfg.Worker.Queue, cfg.Reconciliation.LockTimeout)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return backgroundWorker.Run(gctx)
	})

	g.Go(func() error {
		return scheduler.Run(gctx)
	})

	return g.Wait()
}

func runReconciliationCycle(ctx context.Context, cfg config.Config) error {
	deps, err := newDependencies(ctx, cfg)
	if err != nil {
		return err
	}
	defer deps.Close()

	sender, err := newSender(ctx, cfg)
	if err != nil {
		return err
	}

	report, err := newReconciliationService(cfg, deps, sender).RunCycle(ctx)
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "reconciliation finished",
		slog.Int("total", report.Total),
		slog.Int("notified", report.Notified),
		slog.Duration("duration", report.Duration))

	return nil
}

func enqueueReconciliationCycle(ctx context.Context, cfg config.Config) error {
	client := worker.NewClient(asynqRedisOpt(cfg), cfg.Worker.Queue)
	defer client.Close() //nolint:errcheck

	err := client.EnqueueCycle(ctx, cfg.Reconciliation.LockTimeout)
	if errors.Is(err, asynq.ErrDuplicateTask) {
		slog.InfoContext(ctx, "reconciliation cycle already queued")
		return nil
	}

	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "reconciliation cycle queued", slog.String("queue", cfg.Worker.Queue))

	return nil
}
