package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"starcast/contexts/moderation-safety/security-case-service/domain/entities"
	domainerrors "starcast/contexts/moderation-safety/security-case-service/domain/errors"
	"starcast/contexts/moderation-safety/security-case-service/ports"
)

// Store holds the security case list for one contestant workspace.
type Store struct {
	mu    sync.RWMutex
	cases []entities.SecurityCase
}

func NewStore() *Store {
	now := time.Now().UTC()
	return &Store{
		cases: []entities.SecurityCase{
			{
				CaseID:          "case_seed_1",
				Type:            "vote_anomaly",
				Severity:        entities.CaseSeverityHigh,
				Status:          entities.CaseStatusOpen,
				Summary:         "Burst of 400 votes from a single subnet within 2 minutes",
				RemediationPlan: "Quarantine affected votes and watch the subnet for 24h",
				DetectedAt:      now.Add(-6 * time.Hour),
				UpdatedAt:       now.Add(-6 * time.Hour),
			},
			{
				CaseID:          "case_seed_2",
				Type:            "account_takeover_attempt",
				Severity:        entities.CaseSeverityMedium,
				Status:          entities.CaseStatusOpen,
				Summary:         "Five failed password resets from a new device",
				RemediationPlan: "Force re-verification on next login",
				DetectedAt:      now.Add(-30 * time.Hour),
				UpdatedAt:       now.Add(-30 * time.Hour),
			},
		},
	}
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) ListCases(ctx context.Context) ([]entities.SecurityCase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.SecurityCase, 0, len(s.cases))
	for _, item := range s.cases {
		items = append(items, cloneCase(item))
	}
	return items, nil
}

func (s *Store) GetCase(ctx context.Context, caseID string) (entities.SecurityCase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexLocked(caseID)
	if idx == -1 {
		return entities.SecurityCase{}, domainerrors.ErrCaseNotFound
	}
	return cloneCase(s.cases[idx]), nil
}

func (s *Store) ApplyUpdate(ctx context.Context, caseID string, update ports.CaseUpdate, now time.Time) (entities.SecurityCase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(caseID)
	if idx == -1 {
		return entities.SecurityCase{}, domainerrors.ErrCaseNotFound
	}

	item := &s.cases[idx]
	if update.Action != "" {
		if !item.ApplyAction(update.Action, now) {
			return entities.SecurityCase{}, domainerrors.ErrUnknownCaseAction
		}
	}
	if strings.TrimSpace(update.Note) != "" {
		item.AppendNote(uuid.NewString(), strings.TrimSpace(update.Note), now)
	}
	return cloneCase(*item), nil
}

func (s *Store) indexLocked(caseID string) int {
	caseID = strings.TrimSpace(caseID)
	for i := range s.cases {
		if s.cases[i].CaseID == caseID {
			return i
		}
	}
	return -1
}

func cloneCase(item entities.SecurityCase) entities.SecurityCase {
	item.Notes = append([]entities.CaseNote(nil), item.Notes...)
	return item
}

var _ ports.CaseRepository = (*Store)(nil)
var _ ports.Clock = (*Store)(nil)
