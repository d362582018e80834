package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"starcast/contexts/moderation-safety/security-case-service/domain/entities"
	domainerrors "starcast/contexts/moderation-safety/security-case-service/domain/errors"
	"starcast/contexts/moderation-safety/security-case-service/ports"
)

const sourceService = "moderation-safety/security-case-service"

// Service runs security case triage for the contestant workspace.
type Service struct {
	Repo   ports.CaseRepository
	Audit  ports.AuditLog
	Clock  ports.Clock
	Logger *slog.Logger
}

func (s Service) Cases(ctx context.Context) ([]entities.SecurityCase, error) {
	return s.Repo.ListCases(ctx)
}

func (s Service) Case(ctx context.Context, caseID string) (entities.SecurityCase, error) {
	return s.Repo.GetCase(ctx, caseID)
}

// UpdateCase relabels and/or annotates one case. The optional note lands in
// the case history and in the audit detail.
func (s Service) UpdateCase(ctx context.Context, caseID string, actionRaw string, note string) (entities.SecurityCase, error) {
	update := ports.CaseUpdate{Note: strings.TrimSpace(note)}
	if trimmed := strings.TrimSpace(strings.ToLower(actionRaw)); trimmed != "" {
		action := entities.CaseAction(trimmed)
		if !entities.IsSupportedCaseAction(action) {
			return entities.SecurityCase{}, domainerrors.ErrUnknownCaseAction
		}
		update.Action = action
	}

	item, err := s.Repo.ApplyUpdate(ctx, caseID, update, s.now())
	if err != nil {
		return entities.SecurityCase{}, err
	}

	detail := item.CaseID + " status " + string(item.Status)
	if update.Note != "" {
		detail += ", note: " + update.Note
	}
	s.Audit.Append("security_case_updated", detail)
	resolveLogger(s.Logger).Info("security case updated",
		"event", "security_case_updated",
		"module", sourceService,
		"layer", "application",
		"case_id", item.CaseID,
		"status", string(item.Status),
		"severity", string(item.Severity),
	)
	return item, nil
}

func (s Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now().UTC()
	}
	return time.Now().UTC()
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}
