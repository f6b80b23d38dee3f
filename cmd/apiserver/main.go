// Command apiserver runs the Fristenwächter HTTP API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	app "github.com/sozialtools/fristenwaechter/internal/application/reminder"
	"github.com/sozialtools/fristenwaechter/internal/config"
	"github.com/sozialtools/fristenwaechter/internal/domain/clock"
	"github.com/sozialtools/fristenwaechter/internal/domain/deadline"
	"github.com/sozialtools/fristenwaechter/internal/infrastructure/messaging/kafka"
	"github.com/sozialtools/fristenwaechter/internal/infrastructure/monitoring/logging"
	"github.com/sozialtools/fristenwaechter/internal/infrastructure/monitoring/prometheus"
	"github.com/sozialtools/fristenwaechter/internal/infrastructure/notify"
	"github.com/sozialtools/fristenwaechter/internal/infrastructure/storage"
	httpiface "github.com/sozialtools/fristenwaechter/internal/interfaces/http"
	"github.com/sozialtools/fristenwaechter/internal/interfaces/http/handlers"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "apiserver:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to config.yaml (empty: env vars only)")
	flag.Parse()

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	logger = logger.Named("fristenwaechter")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var metrics *prometheus.AppMetrics
	if cfg.Metrics.Enabled {
		metrics = prometheus.NewAppMetrics()
	}

	// Storage backend
	var blob storage.BlobStore
	switch cfg.Storage.Backend {
	case "redis":
		store, err := storage.NewRedisStore(ctx, cfg.Storage.Redis)
		if err != nil {
			return err
		}
		defer store.Close()
		blob = store
	default:
		blob = storage.NewFileStore(cfg.Storage.File.Path)
	}
	repo := storage.NewReminderRepository(blob, logger)

	clk := clock.System()
	var svcMetrics app.Metrics
	if metrics != nil {
		svcMetrics = metrics
	}
	service, err := app.NewService(ctx, repo, clk, logger, svcMetrics)
	if err != nil {
		return err
	}

	// Notification channel
	var notifier app.Notifier
	switch cfg.Notify.Channel {
	case "kafka":
		producer, err := kafka.NewProducer(cfg.Kafka, logger)
		if err != nil {
			return err
		}
		kn := notify.NewKafkaNotifier(producer)
		defer kn.Close()
		notifier = kn
	default:
		notifier = notify.NewLogNotifier(logger)
	}
	var dispMetrics app.DispatcherMetrics
	if metrics != nil {
		dispMetrics = metrics
	}
	dispatcher := app.NewDispatcher(notifier, clk, logger, dispMetrics)

	router := httpiface.NewRouter(httpiface.RouterConfig{
		ReminderHandler: handlers.NewReminderHandler(service, cfg.Reminders.UrgentHorizonDays),
		DeadlineHandler: handlers.NewDeadlineHandler(deadline.NewCalculator(clk), service),
		CalendarHandler: handlers.NewCalendarHandler(service),
		NotifyHandler:   handlers.NewNotifyHandler(service, dispatcher),
		HealthHandler:   handlers.NewHealthHandler(nil),
		Logger:          logger,
		Metrics:         metrics,
		MetricsPath:     cfg.Metrics.Path,
		Mode:            cfg.Server.Mode,
	})

	server := httpiface.NewServer(cfg.Server, router, logger)

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
