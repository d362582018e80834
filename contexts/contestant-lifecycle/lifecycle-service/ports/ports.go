package ports

import (
	"context"
	"time"

	"starcast/contexts/contestant-lifecycle/lifecycle-service/domain/entities"
	"starcast/internal/shared/audit"
	"starcast/internal/shared/events"
	"starcast/internal/shared/outbox"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// Slugifier derives the URL-safe public identifier from a display name.
// The derivation rule is owned by the content layer; the store only compares.
type Slugifier interface {
	Slugify(displayName string) string
}

// AuditLog is the shared, capacity-bounded mutation trail.
type AuditLog interface {
	Append(action string, detail string) audit.Entry
	List() []audit.Entry
}

// VersionLedger records public profile snapshots, independent of the audit
// trail, capped to the most recent entries.
type VersionLedger interface {
	AppendVersion(ctx context.Context, version entities.ProfileVersion) error
	ListVersions(ctx context.Context) ([]entities.ProfileVersion, error)
}

type OutboxWriter interface {
	AppendOutbox(ctx context.Context, envelope events.Envelope) error
}

type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]outbox.Message, error)
	MarkOutboxPublished(ctx context.Context, outboxID string, now time.Time) error
}

type EventPublisher interface {
	Publish(ctx context.Context, topic string, event events.Envelope) error
}

type IdempotencyRecord struct {
	Key             string
	RequestHash     string
	ResponsePayload []byte
	ExpiresAt       time.Time
}

type IdempotencyStore interface {
	GetRecord(ctx context.Context, key string, now time.Time) (IdempotencyRecord, bool, error)
	PutRecord(ctx context.Context, record IdempotencyRecord) error
}

// Repository is the single in-memory authority over one contestant
// workspace. Implementations return independent copies on every read and
// commit change-request approval as one atomic unit.
type Repository interface {
	GetRecords(ctx context.Context) (entities.ContestantRecords, error)
	GetOnboarding(ctx context.Context) (entities.OnboardingRecord, error)
	GetCompliance(ctx context.Context) (entities.ComplianceRecord, error)
	GetProfile(ctx context.Context) (entities.PublicProfile, error)
	ListMedia(ctx context.Context) ([]entities.MediaAsset, error)

	UpdateOnboarding(ctx context.Context, patch entities.OnboardingPatch) (entities.OnboardingRecord, error)
	UpdateCompliance(ctx context.Context, patch entities.CompliancePatch) (entities.ComplianceRecord, error)
	UpdateProfile(ctx context.Context, patch entities.ProfilePatch) (entities.PublicProfile, error)
	AddMedia(ctx context.Context, kind entities.MediaKind, label string, url string, status entities.MediaStatus, now time.Time) (entities.MediaAsset, error)

	GetPublishing(ctx context.Context) (entities.PublishingState, error)
	SetSubmissionStatus(ctx context.Context, next entities.SubmissionStatus) (entities.PublishingState, error)
	ApplyAdminReview(ctx context.Context, action entities.AdminAction, reason string) (entities.PublishingState, error)

	CreateChangeRequest(ctx context.Context, request entities.ChangeRequest) (entities.ChangeRequest, error)
	ListChangeRequests(ctx context.Context) ([]entities.ChangeRequest, error)
	// ResolveChangeRequest marks the request and, on approval, applies its
	// payload to the target record under the same lock.
	ResolveChangeRequest(ctx context.Context, requestID string, action entities.ReviewAction, note string, now time.Time) (entities.ChangeRequest, error)
}
