package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"starcast/contexts/contestant-lifecycle/lifecycle-service/adapters/memory"
	"starcast/contexts/contestant-lifecycle/lifecycle-service/domain/entities"
	domainerrors "starcast/contexts/contestant-lifecycle/lifecycle-service/domain/errors"
	"starcast/internal/shared/audit"
)

func newTestService() (Service, *memory.Store) {
	store := memory.NewStore()
	service := Service{
		Repo:        store,
		Versions:    store,
		Audit:       audit.NewTrail(audit.DefaultCapacity),
		Outbox:      store,
		Idempotency: store,
		Clock:       store,
		Slugifier:   memory.DisplayNameSlugifier{},
	}
	return service, store
}

func strPtr(value string) *string { return &value }

func TestSeededReadinessScore(t *testing.T) {
	service, _ := newTestService()
	report, err := service.Readiness(context.Background())
	if err != nil {
		t.Fatalf("readiness: %v", err)
	}
	// The seed passes only the onboarding identity check.
	if report.Score != 20 {
		t.Fatalf("expected seeded score 20, got %d", report.Score)
	}
}

func TestReadinessClimbsAsRecordsComplete(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	if _, err := service.UpdateProfile(ctx, entities.ProfilePatch{
		Biography: strPtr("Vocalist from London"),
	}); err != nil {
		t.Fatalf("update profile: %v", err)
	}
	report, _ := service.Readiness(ctx)
	if report.Score != 40 {
		t.Fatalf("expected 40 after completing the profile, got %d", report.Score)
	}

	if _, err := service.AddMedia(ctx, "profile_photo", "Headshot", "https://cdn.starcast.live/m/1.jpg"); err != nil {
		t.Fatalf("add media: %v", err)
	}
	report, _ = service.Readiness(ctx)
	if report.Score != 60 {
		t.Fatalf("expected 60 after the profile photo, got %d", report.Score)
	}
}

func TestUpdateProfileAppendsVersionAndAudit(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	if _, err := service.UpdateProfile(ctx, entities.ProfilePatch{
		DisplayName: strPtr("Amara O."),
		Location:    strPtr("Manchester"),
	}); err != nil {
		t.Fatalf("update profile: %v", err)
	}

	versions, err := service.ProfileVersions(ctx)
	if err != nil {
		t.Fatalf("profile versions: %v", err)
	}
	if len(versions) != 1 {
		t.Fatalf("expected one version entry, got %d", len(versions))
	}
	if got := versions[0].ChangedFields; len(got) != 2 || got[0] != "display_name" || got[1] != "location" {
		t.Fatalf("version must list exactly the patched fields, got %v", got)
	}

	trail := service.AuditTrail(ctx)
	if len(trail) != 1 || trail[0].Action != "profile_updated" {
		t.Fatalf("expected one profile_updated audit entry, got %+v", trail)
	}
}

func TestEmptyProfilePatchSkipsVersionButStillAudits(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	if _, err := service.UpdateProfile(ctx, entities.ProfilePatch{}); err != nil {
		t.Fatalf("update profile: %v", err)
	}
	versions, _ := service.ProfileVersions(ctx)
	if len(versions) != 0 {
		t.Fatalf("empty patch must not append a version, got %d", len(versions))
	}
	if len(service.AuditTrail(ctx)) != 1 {
		t.Fatalf("the write itself is still audited")
	}
}

func TestAddMediaValidation(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	if _, err := service.AddMedia(ctx, "hologram", "x", "https://x"); !errors.Is(err, domainerrors.ErrUnknownMediaKind) {
		t.Fatalf("expected ErrUnknownMediaKind, got %v", err)
	}
	if _, err := service.AddMedia(ctx, "intro_video", "  ", "https://x"); !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for blank label, got %v", err)
	}
}

func TestSubmissionThenApprovePublishes(t *testing.T) {
	service, store := newTestService()
	ctx := context.Background()

	if _, err := service.SetSubmissionStatus(ctx, "submitted"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	state, err := service.AdminReview(ctx, "", "approve", "")
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if !state.Published() || !state.ProfileLocked() {
		t.Fatalf("approved review must publish and lock")
	}

	pending, err := store.ListPendingOutbox(ctx, 10)
	if err != nil {
		t.Fatalf("list outbox: %v", err)
	}
	if len(pending) != 1 || pending[0].EventType != TopicProfilePublished {
		t.Fatalf("approval must enqueue %s, got %+v", TopicProfilePublished, pending)
	}
}

func TestRejectionStampsReasonAndEnqueuesEvent(t *testing.T) {
	service, store := newTestService()
	ctx := context.Background()

	state, err := service.AdminReview(ctx, "", "reject", "   incomplete compliance   ")
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if state.RejectionReason != "incomplete compliance" {
		t.Fatalf("expected trimmed reason, got %q", state.RejectionReason)
	}
	pending, _ := store.ListPendingOutbox(ctx, 10)
	if len(pending) != 1 || pending[0].EventType != TopicProfileRejected {
		t.Fatalf("rejection must enqueue %s", TopicProfileRejected)
	}
}

func TestAdminReviewReplaysWithIdempotencyKey(t *testing.T) {
	service, store := newTestService()
	ctx := context.Background()

	first, err := service.AdminReview(ctx, "op-key-1", "approve", "")
	if err != nil {
		t.Fatalf("first approve: %v", err)
	}
	second, err := service.AdminReview(ctx, "op-key-1", "approve", "")
	if err != nil {
		t.Fatalf("replay approve: %v", err)
	}
	if first != second {
		t.Fatalf("replay must return the stored outcome")
	}
	// The transition ran once: one audit entry, one outbox row.
	if got := len(service.AuditTrail(ctx)); got != 1 {
		t.Fatalf("expected one audit entry after replay, got %d", got)
	}
	pending, _ := store.ListPendingOutbox(ctx, 10)
	if len(pending) != 1 {
		t.Fatalf("expected one outbox row after replay, got %d", len(pending))
	}
}

func TestAdminReviewKeyReuseWithDifferentBodyConflicts(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	if _, err := service.AdminReview(ctx, "op-key-2", "approve", ""); err != nil {
		t.Fatalf("approve: %v", err)
	}
	_, err := service.AdminReview(ctx, "op-key-2", "reject", "changed my mind")
	if !errors.Is(err, domainerrors.ErrIdempotencyConflict) {
		t.Fatalf("expected ErrIdempotencyConflict, got %v", err)
	}
}

func TestSetSubmissionStatusUnknownValue(t *testing.T) {
	service, _ := newTestService()
	_, err := service.SetSubmissionStatus(context.Background(), "parked")
	if !errors.Is(err, domainerrors.ErrUnknownSubmissionStatus) {
		t.Fatalf("expected ErrUnknownSubmissionStatus, got %v", err)
	}
}

func TestApprovedProfileChangeRequestAppendsVersion(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	created, err := service.CreateChangeRequest(ctx, "", "profile", "update bio after lock", map[string]any{
		"biography": "New touring bio",
	})
	if err != nil {
		t.Fatalf("create change request: %v", err)
	}
	resolved, err := service.ReviewChangeRequest(ctx, "", created.RequestID, "approve", "checked")
	if err != nil {
		t.Fatalf("review change request: %v", err)
	}
	if resolved.Status != entities.ChangeRequestApproved {
		t.Fatalf("expected approved, got %q", resolved.Status)
	}

	versions, _ := service.ProfileVersions(ctx)
	if len(versions) != 1 {
		t.Fatalf("approved profile change request must append a version, got %d", len(versions))
	}
	if versions[0].Label != "change_request" || versions[0].Note != created.RequestID {
		t.Fatalf("version must reference the request, got %+v", versions[0])
	}

	profile, _ := service.Profile(ctx)
	if profile.Biography != "New touring bio" {
		t.Fatalf("approved payload must land, got %q", profile.Biography)
	}
}

func TestChangeRequestResolutionEnqueuesEvent(t *testing.T) {
	service, store := newTestService()
	ctx := context.Background()

	created, _ := service.CreateChangeRequest(ctx, "", "onboarding", "fix phone", map[string]any{"phone": "+44 1"})
	if _, err := service.ReviewChangeRequest(ctx, "", created.RequestID, "reject", "no"); err != nil {
		t.Fatalf("review: %v", err)
	}
	pending, _ := store.ListPendingOutbox(ctx, 10)
	if len(pending) != 1 || pending[0].EventType != TopicChangeRequestResolved {
		t.Fatalf("resolution must enqueue %s", TopicChangeRequestResolved)
	}
}

func TestReviewChangeRequestUnknownAction(t *testing.T) {
	service, _ := newTestService()
	_, err := service.ReviewChangeRequest(context.Background(), "", "cr-1", "escalate", "")
	if !errors.Is(err, domainerrors.ErrUnknownReviewAction) {
		t.Fatalf("expected ErrUnknownReviewAction, got %v", err)
	}
}

func TestCheckVisibilityGatesOwnSlugOnly(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	visible, err := service.CheckVisibility(ctx, "someone-else")
	if err != nil {
		t.Fatalf("check visibility: %v", err)
	}
	if !visible {
		t.Fatalf("foreign slugs are never gated")
	}

	// The seeded display name is "Amara" and publishing starts unapproved.
	visible, _ = service.CheckVisibility(ctx, "amara")
	if visible {
		t.Fatalf("own slug must be hidden while unpublished")
	}

	if _, err := service.AdminReview(ctx, "", "approve", ""); err != nil {
		t.Fatalf("approve: %v", err)
	}
	visible, _ = service.CheckVisibility(ctx, "amara")
	if !visible {
		t.Fatalf("own slug must be visible once published")
	}
}

func TestAuditTrailNewestFirstAndBounded(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	for i := 0; i < audit.DefaultCapacity+10; i++ {
		if _, err := service.UpdateOnboarding(ctx, entities.OnboardingPatch{Phone: strPtr("+44 7")}); err != nil {
			t.Fatalf("update onboarding: %v", err)
		}
	}
	trail := service.AuditTrail(ctx)
	if len(trail) != audit.DefaultCapacity {
		t.Fatalf("trail must stay at capacity, got %d", len(trail))
	}
	if trail[0].Action != "onboarding_updated" {
		t.Fatalf("unexpected head entry %+v", trail[0])
	}
}

func TestServiceClockFallback(t *testing.T) {
	service, _ := newTestService()
	service.Clock = nil
	before := time.Now().UTC().Add(-time.Second)
	if service.now().Before(before) {
		t.Fatalf("nil clock must fall back to wall time")
	}
}
