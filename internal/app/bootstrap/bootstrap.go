package bootstrap

import (
	"context"
	"log/slog"
	"strings"
	"time"

	lifecycleservice "starcast/contexts/contestant-lifecycle/lifecycle-service"
	lifecyclememory "starcast/contexts/contestant-lifecycle/lifecycle-service/adapters/memory"
	lifecyclepostgres "starcast/contexts/contestant-lifecycle/lifecycle-service/adapters/postgres"
	workerapp "starcast/contexts/contestant-lifecycle/lifecycle-service/application/workers"
	"starcast/contexts/contestant-lifecycle/lifecycle-service/ports"
	securitycaseservice "starcast/contexts/moderation-safety/security-case-service"
	sponsorofferservice "starcast/contexts/partnerships/sponsor-offer-service"
	"starcast/internal/platform/config"
	"starcast/internal/platform/db"
	"starcast/internal/platform/httpserver"
	"starcast/internal/platform/messaging"
	"starcast/internal/shared/audit"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.
//
// The lifecycle store is the in-memory authority over the workspace records.
// When POSTGRES_DSN is set, the side logs (audit mirror, profile versions,
// outbox, idempotency) run against Postgres so they survive a restart;
// without a DSN everything runs in process.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres     *db.Postgres
	outboxRelay  workerapp.OutboxRelay
	relayEnabled bool
	pollInterval time.Duration
	logger       *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")

	store := lifecyclememory.NewStore()
	trail := audit.NewTrail(audit.DefaultCapacity)

	deps := lifecycleservice.Dependencies{
		Repo:           store,
		Versions:       store,
		Audit:          trail,
		Outbox:         store,
		Idempotency:    store,
		Clock:          store,
		IDGenerator:    lifecyclememory.UUIDIdentifiers{},
		Slugifier:      lifecyclememory.DisplayNameSlugifier{},
		IdempotencyTTL: cfg.IdempotencyTTL,
		Logger:         logger,
	}

	var pg *db.Postgres
	if strings.TrimSpace(cfg.PostgresDSN) != "" {
		pg, err = db.Connect(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		repo := lifecyclepostgres.NewRepository(pg.DB, logger)
		deps.Versions = repo
		deps.Outbox = repo
		deps.Idempotency = repo
		deps.Clock = lifecyclepostgres.SystemClock{}
		deps.IDGenerator = lifecyclepostgres.UUIDGenerator{}
		deps.Audit = lifecyclepostgres.MirroredAuditLog{Trail: trail, Repo: repo, Logger: logger}
	}

	lifecycleModule := lifecycleservice.NewModule(deps)
	lifecycleModule.Store = store

	// All three modules share one audit trail per workspace.
	offerModule := sponsorofferservice.NewInMemoryModule(deps.Audit, logger)
	caseModule := securitycaseservice.NewInMemoryModule(deps.Audit, logger)

	server := httpserver.New(lifecycleModule, offerModule, caseModule, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")

	bus := messaging.NewBus(logger)

	var pg *db.Postgres
	var outboxSource ports.OutboxRepository
	var clock ports.Clock
	if strings.TrimSpace(cfg.PostgresDSN) != "" {
		pg, err = db.Connect(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		outboxSource = lifecyclepostgres.NewRepository(pg.DB, logger)
		clock = lifecyclepostgres.SystemClock{}
	} else {
		// Without a DSN the worker drains its own process-local store.
		// Useful for local runs; production sets POSTGRES_DSN.
		store := lifecyclememory.NewStore()
		outboxSource = store
		clock = store
	}

	return &WorkerApp{
		postgres: pg,
		outboxRelay: workerapp.OutboxRelay{
			Outbox:    outboxSource,
			Publisher: bus,
			Clock:     clock,
			BatchSize: cfg.OutboxBatchSize,
			Logger:    logger,
		},
		relayEnabled: cfg.EnableOutboxRelay,
		pollInterval: cfg.OutboxPollInterval,
		logger:       logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
		"relay_enabled", w.relayEnabled,
	)

	for {
		if w.relayEnabled {
			if err := w.outboxRelay.RunOnce(ctx); err != nil {
				return err
			}
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
