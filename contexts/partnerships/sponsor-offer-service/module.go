package sponsorofferservice

import (
	"log/slog"

	httpadapter "starcast/contexts/partnerships/sponsor-offer-service/adapters/http"
	"starcast/contexts/partnerships/sponsor-offer-service/adapters/memory"
	"starcast/contexts/partnerships/sponsor-offer-service/application"
	"starcast/contexts/partnerships/sponsor-offer-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Repo   ports.OfferRepository
	Audit  ports.AuditLog
	Clock  ports.Clock
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:   deps.Repo,
		Audit:  deps.Audit,
		Clock:  deps.Clock,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

func NewInMemoryModule(auditLog ports.AuditLog, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repo:   store,
		Audit:  auditLog,
		Clock:  store,
		Logger: logger,
	})
	module.Store = store
	return module
}
