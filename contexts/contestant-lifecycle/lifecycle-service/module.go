package lifecycleservice

import (
	"log/slog"
	"time"

	httpadapter "starcast/contexts/contestant-lifecycle/lifecycle-service/adapters/http"
	"starcast/contexts/contestant-lifecycle/lifecycle-service/adapters/memory"
	"starcast/contexts/contestant-lifecycle/lifecycle-service/application"
	"starcast/contexts/contestant-lifecycle/lifecycle-service/ports"
	"starcast/internal/shared/audit"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Repo           ports.Repository
	Versions       ports.VersionLedger
	Audit          ports.AuditLog
	Outbox         ports.OutboxWriter
	Idempotency    ports.IdempotencyStore
	Clock          ports.Clock
	IDGenerator    ports.IDGenerator
	Slugifier      ports.Slugifier
	IdempotencyTTL time.Duration
	Logger         *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:           deps.Repo,
		Versions:       deps.Versions,
		Audit:          deps.Audit,
		Outbox:         deps.Outbox,
		Idempotency:    deps.Idempotency,
		Clock:          deps.Clock,
		IDGenerator:    deps.IDGenerator,
		Slugifier:      deps.Slugifier,
		IdempotencyTTL: deps.IdempotencyTTL,
		Logger:         deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repo:           store,
		Versions:       store,
		Audit:          audit.NewTrail(audit.DefaultCapacity),
		Outbox:         store,
		Idempotency:    store,
		Clock:          store,
		IDGenerator:    memory.UUIDIdentifiers{},
		Slugifier:      memory.DisplayNameSlugifier{},
		IdempotencyTTL: 7 * 24 * time.Hour,
		Logger:         logger,
	})
	module.Store = store
	return module
}
