package securitycaseservice

import (
	"log/slog"

	httpadapter "starcast/contexts/moderation-safety/security-case-service/adapters/http"
	"starcast/contexts/moderation-safety/security-case-service/adapters/memory"
	"starcast/contexts/moderation-safety/security-case-service/application"
	"starcast/contexts/moderation-safety/security-case-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Repo   ports.CaseRepository
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
