package application

import (
	"context"
	"errors"
	"strings"
	"testing"

	"starcast/contexts/moderation-safety/security-case-service/adapters/memory"
	"starcast/contexts/moderation-safety/security-case-service/domain/entities"
	domainerrors "starcast/contexts/moderation-safety/security-case-service/domain/errors"
	"starcast/internal/shared/audit"
)

func newTestService() Service {
	store := memory.NewStore()
	return Service{
		Repo:  store,
		Audit: audit.NewTrail(audit.DefaultCapacity),
		Clock: store,
	}
}

func TestAnyStatusReachableInOneCall(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	steps := []struct {
		action string
		want   entities.CaseStatus
	}{
		{"resolve", entities.CaseStatusResolved},
		{"reopen", entities.CaseStatusOpen},
		{"monitor", entities.CaseStatusMonitoring},
		{"resolve", entities.CaseStatusResolved},
	}
	for _, step := range steps {
		item, err := service.UpdateCase(ctx, "case_seed_1", step.action, "")
		if err != nil {
			t.Fatalf("action %q: %v", step.action, err)
		}
		if item.Status != step.want {
			t.Fatalf("action %q: expected %q, got %q", step.action, step.want, item.Status)
		}
	}
}

func TestUpdateCaseNoteLandsInHistoryAndAudit(t *testing.T) {
	service := newTestService()
	item, err := service.UpdateCase(context.Background(), "case_seed_2", "monitor", "subnet watchlisted")
	if err != nil {
		t.Fatalf("update case: %v", err)
	}
	if len(item.Notes) != 1 || item.Notes[0].Body != "subnet watchlisted" {
		t.Fatalf("note must land in the case history, got %+v", item.Notes)
	}

	trail := service.Audit.List()
	if len(trail) != 1 || trail[0].Action != "security_case_updated" {
		t.Fatalf("expected one security_case_updated entry, got %+v", trail)
	}
	if !strings.Contains(trail[0].Detail, "subnet watchlisted") {
		t.Fatalf("audit detail must include the note, got %q", trail[0].Detail)
	}
}

func TestUpdateCaseNoteOnlyKeepsStatus(t *testing.T) {
	service := newTestService()
	item, err := service.UpdateCase(context.Background(), "case_seed_1", "", "still investigating")
	if err != nil {
		t.Fatalf("update case: %v", err)
	}
	if item.Status != entities.CaseStatusOpen {
		t.Fatalf("note-only update must not relabel, got %q", item.Status)
	}
}

func TestUpdateCaseUnknownID(t *testing.T) {
	service := newTestService()
	_, err := service.UpdateCase(context.Background(), "case_missing", "resolve", "")
	if !errors.Is(err, domainerrors.ErrCaseNotFound) {
		t.Fatalf("expected ErrCaseNotFound, got %v", err)
	}
}

func TestUpdateCaseUnknownAction(t *testing.T) {
	service := newTestService()
	_, err := service.UpdateCase(context.Background(), "case_seed_1", "dismiss", "")
	if !errors.Is(err, domainerrors.ErrUnknownCaseAction) {
		t.Fatalf("expected ErrUnknownCaseAction, got %v", err)
	}
}

func TestListCasesReturnsSeededSeverities(t *testing.T) {
	service := newTestService()
	items, err := service.Cases(context.Background())
	if err != nil {
		t.Fatalf("list cases: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 seeded cases, got %d", len(items))
	}
	if items[0].Severity != entities.CaseSeverityHigh || items[1].Severity != entities.CaseSeverityMedium {
		t.Fatalf("unexpected seeded severities: %q, %q", items[0].Severity, items[1].Severity)
	}
}
