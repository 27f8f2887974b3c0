package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gitlab.ozon.dev/pupkingeorgij/returns/internal/cache"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/config"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/creator"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/eligibility"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/kafka"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/labels"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/lifecycle"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/logger"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/outbox"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/policy"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/repository/postgresql"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/rules"
	"gitlab.ozon.dev/pupkingeorgij/returns/internal/server"
	"gitlab.ozon.dev/pupkingeorgij/returns/migrations"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Config error:", err)
		return
	}

	log := logger.New(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	database, err := db.NewDb(ctx, cfg.DB.DSN(), cfg.DB.MaxConns)
	if err != nil {
		log.Fatal("Database init error", zap.Error(err))
	}
	defer database.Close()

	if err := db.Migrate(ctx, database, migrations.FS); err != nil {
		log.Fatal("Migration error", zap.Error(err))
	}

	orderRepo := postgresql.NewOrderRepo(database)
	merchantRepo := postgresql.NewMerchantRepo(database)
	ruleRepo := postgresql.NewReturnRuleRepo(database)
	requestRepo := postgresql.NewReturnRequestRepo(database)
	auditRepo := postgresql.NewAuditLogRepo(database)
	taskRepo := postgresql.NewOutboxTaskRepo(database)

	ruleCache := cache.NewRuleCache(ruleRepo, cfg.RuleCacheTTL, log)
	evaluator := rules.NewEvaluator(rules.NewRegistry(rules.DefaultStrategies(time.Now)...), log)
	checker := eligibility.NewChecker(orderRepo, ruleCache, evaluator, log, time.Now)
	rulePolicy := policy.NewService(ruleRepo, ruleCache, log)

	machine := lifecycle.NewMachine(database, requestRepo, auditRepo, taskRepo, log)
	scheduler := labels.NewScheduler(taskRepo, cfg.Labels.MaxAttempts)
	returnCreator := creator.NewCreator(database, requestRepo, checker, scheduler, log)

	store, labelDir, err := newLabelStore(ctx, cfg, log)
	if err != nil {
		log.Fatal("Label storage init error", zap.Error(err))
	}
	worker := labels.NewWorker(
		requestRepo,
		merchantRepo,
		labels.NewSimulatedCarrier(cfg.Labels.CarrierDelay),
		store,
		machine,
		labels.WorkerConfig{CarrierTimeout: cfg.Labels.CarrierTimeout, PublicPrefix: cfg.Labels.PublicPrefix},
		log,
	)

	var producer kafka.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		producer = kafka.NewWriterProducer(cfg.Kafka.Brokers)
		log.Info("Publishing status events to Kafka", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.StatusTopic))
	} else {
		producer = kafka.NewConsoleProducer(log)
		log.Info("KAFKA_BROKERS not set, status events go to the log")
	}
	defer func() {
		if err := producer.Close(); err != nil {
			log.Error("Failed to close producer", zap.Error(err))
		}
	}()
	relay := kafka.NewRelay(producer, cfg.Kafka.StatusTopic)

	dispatcher := outbox.NewDispatcher(database, taskRepo, outbox.Config{
		PollInterval: cfg.Dispatcher.PollInterval,
		BatchSize:    cfg.Dispatcher.BatchSize,
		Workers:      cfg.Dispatcher.Workers,
		Lease:        cfg.Dispatcher.Lease,
		BackoffBase:  cfg.Dispatcher.BackoffBase,
		BackoffMax:   cfg.Dispatcher.BackoffMax,
		MaxAttempts:  cfg.Labels.MaxAttempts,
	}, log)
	dispatcher.Register(labels.TopicGenerate, worker.Handle)
	dispatcher.Register(lifecycle.TopicStatusChanged, relay.Handle)

	srv := server.New(server.Deps{
		Creator:   returnCreator,
		Lifecycle: machine,
		Requests:  requestRepo,
		Rules:     rulePolicy,
		Checker:   checker,
		LabelDir:  labelDir,
	}, log)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gCtx, cfg.HTTPPort)
	})
	g.Go(func() error {
		dispatcher.Run(gCtx)
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Info("Shutting down")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		dispatcher.Shutdown()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("Service stopped with error", zap.Error(err))
		return
	}
	log.Info("Service gracefully stopped")
}

// newLabelStore picks MinIO when an endpoint is configured. The returned
// directory is served under /labels/ and is empty for remote storage.
func newLabelStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (labels.Store, string, error) {
	if cfg.Labels.Storage == "minio" && cfg.Minio.Endpoint != "" {
		store, err := labels.NewMinioStore(ctx, labels.MinioConfig{
			Endpoint:  cfg.Minio.Endpoint,
			AccessKey: cfg.Minio.AccessKey,
			SecretKey: cfg.Minio.SecretKey,
			Bucket:    cfg.Minio.Bucket,
			UseSSL:    cfg.Minio.UseSSL,
		}, log)
		return store, "", err
	}

	store, err := labels.NewLocalStore(cfg.Labels.Dir)
	if err != nil {
		return nil, "", err
	}
	return store, store.Dir(), nil
}
