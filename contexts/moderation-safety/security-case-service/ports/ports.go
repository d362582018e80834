package ports

import (
	"context"
	"time"

	"starcast/contexts/moderation-safety/security-case-service/domain/entities"
	"starcast/internal/shared/audit"
)

type Clock interface {
	Now() time.Time
}

type AuditLog interface {
	Append(action string, detail string) audit.Entry
	List() []audit.Entry
}

// CaseUpdate carries one triage call: optional relabel action, optional note.
type CaseUpdate struct {
	Action entities.CaseAction
	Note   string
}

type CaseRepository interface {
	ListCases(ctx context.Context) ([]entities.SecurityCase, error)
	GetCase(ctx context.Context, caseID string) (entities.SecurityCase, error)
	ApplyUpdate(ctx context.Context, caseID string, update CaseUpdate, now time.Time) (entities.SecurityCase, error)
}
