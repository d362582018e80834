package application

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"starcast/contexts/contestant-lifecycle/lifecycle-service/domain/entities"
	domainerrors "starcast/contexts/contestant-lifecycle/lifecycle-service/domain/errors"
	"starcast/contexts/contestant-lifecycle/lifecycle-service/ports"
	"starcast/internal/shared/audit"
	"starcast/internal/shared/events"
)

const (
	sourceService = "contestant-lifecycle/lifecycle-service"

	TopicProfilePublished      = "contestant.profile.published"
	TopicProfileRejected       = "contestant.profile.rejected"
	TopicChangeRequestResolved = "contestant.change_request.resolved"
)

// Service fronts the contestant workspace store. It normalizes input,
// funnels every mutation through the audit trail, and wraps the review
// mutations in the idempotency-key replay cycle.
type Service struct {
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

func (s Service) Records(ctx context.Context) (entities.ContestantRecords, error) {
	return s.Repo.GetRecords(ctx)
}

func (s Service) Onboarding(ctx context.Context) (entities.OnboardingRecord, error) {
	return s.Repo.GetOnboarding(ctx)
}

func (s Service) Compliance(ctx context.Context) (entities.ComplianceRecord, error) {
	return s.Repo.GetCompliance(ctx)
}

func (s Service) Profile(ctx context.Context) (entities.PublicProfile, error) {
	return s.Repo.GetProfile(ctx)
}

func (s Service) Media(ctx context.Context) ([]entities.MediaAsset, error) {
	return s.Repo.ListMedia(ctx)
}

// Readiness recomputes the completion checklist on demand. No audit entry.
func (s Service) Readiness(ctx context.Context) (entities.ReadinessReport, error) {
	records, err := s.Repo.GetRecords(ctx)
	if err != nil {
		return entities.ReadinessReport{}, err
	}
	return entities.ScoreReadiness(records), nil
}

func (s Service) UpdateOnboarding(ctx context.Context, patch entities.OnboardingPatch) (entities.OnboardingRecord, error) {
	record, err := s.Repo.UpdateOnboarding(ctx, patch)
	if err != nil {
		return entities.OnboardingRecord{}, err
	}
	s.Audit.Append("onboarding_updated", fieldsDetail(patch.Fields()))
	return record, nil
}

func (s Service) UpdateCompliance(ctx context.Context, patch entities.CompliancePatch) (entities.ComplianceRecord, error) {
	record, err := s.Repo.UpdateCompliance(ctx, patch)
	if err != nil {
		return entities.ComplianceRecord{}, err
	}
	s.Audit.Append("compliance_updated", fieldsDetail(patch.Fields()))
	return record, nil
}

// UpdateProfile merges the patch and, when the patch names any field, records
// one version ledger entry listing exactly those fields.
func (s Service) UpdateProfile(ctx context.Context, patch entities.ProfilePatch) (entities.PublicProfile, error) {
	profile, err := s.Repo.UpdateProfile(ctx, patch)
	if err != nil {
		return entities.PublicProfile{}, err
	}
	if !patch.IsEmpty() {
		if err := s.Versions.AppendVersion(ctx, entities.ProfileVersion{
			VersionID:     s.newID(ctx),
			Label:         "profile_update",
			ChangedFields: patch.Fields(),
			CreatedAt:     s.now(),
		}); err != nil {
			return entities.PublicProfile{}, err
		}
	}
	s.Audit.Append("profile_updated", fieldsDetail(patch.Fields()))
	return profile, nil
}

func (s Service) AddMedia(ctx context.Context, kindRaw string, label string, url string) (entities.MediaAsset, error) {
	kind := entities.MediaKind(strings.TrimSpace(strings.ToLower(kindRaw)))
	if !entities.IsSupportedMediaKind(kind) {
		return entities.MediaAsset{}, domainerrors.ErrUnknownMediaKind
	}
	if strings.TrimSpace(label) == "" || strings.TrimSpace(url) == "" {
		return entities.MediaAsset{}, domainerrors.ErrInvalidRequest
	}

	asset, err := s.Repo.AddMedia(ctx, kind, label, url, entities.MediaStatusPending, s.now())
	if err != nil {
		return entities.MediaAsset{}, err
	}
	s.Audit.Append("media_added", string(kind)+": "+asset.Label)
	return asset, nil
}

func (s Service) Publishing(ctx context.Context) (entities.PublishingState, error) {
	return s.Repo.GetPublishing(ctx)
}

func (s Service) SetSubmissionStatus(ctx context.Context, statusRaw string) (entities.PublishingState, error) {
	next := entities.SubmissionStatus(strings.TrimSpace(strings.ToLower(statusRaw)))
	if !entities.IsSupportedSubmissionStatus(next) {
		return entities.PublishingState{}, domainerrors.ErrUnknownSubmissionStatus
	}

	state, err := s.Repo.SetSubmissionStatus(ctx, next)
	if err != nil {
		return entities.PublishingState{}, err
	}
	s.Audit.Append("submission_status_set", string(next))
	resolveLogger(s.Logger).Info("submission status set",
		"event", "lifecycle_submission_status_set",
		"module", sourceService,
		"layer", "application",
		"status", string(next),
		"phase", state.Phase(),
	)
	return state, nil
}

// AdminReview runs the admin-driven transition. Approve publishes and locks
// the profile; reject stamps a reason; reopen returns the workspace to
// review. With an idempotency key, an identical retry replays the stored
// outcome instead of transitioning twice.
func (s Service) AdminReview(ctx context.Context, idempotencyKey string, actionRaw string, reason string) (entities.PublishingState, error) {
	action := entities.AdminAction(strings.TrimSpace(strings.ToLower(actionRaw)))
	if !entities.IsSupportedAdminAction(action) {
		return entities.PublishingState{}, domainerrors.ErrUnknownAdminAction
	}
	reason = strings.TrimSpace(reason)

	var state entities.PublishingState
	err := s.runIdempotent(ctx, idempotencyKey, hashStrings("admin_review", string(action), reason),
		func(raw []byte) error { return json.Unmarshal(raw, &state) },
		func() ([]byte, error) {
			applied, err := s.Repo.ApplyAdminReview(ctx, action, reason)
			if err != nil {
				return nil, err
			}
			state = applied
			s.Audit.Append("admin_review_"+string(action), state.RejectionReason)
			s.publishReviewEvent(ctx, applied)
			return json.Marshal(applied)
		},
	)
	if err != nil {
		return entities.PublishingState{}, err
	}
	return state, nil
}

func (s Service) CreateChangeRequest(ctx context.Context, idempotencyKey string, typeRaw string, reason string, payload map[string]any) (entities.ChangeRequest, error) {
	requestType := entities.ChangeRequestType(strings.TrimSpace(strings.ToLower(typeRaw)))
	if !entities.IsSupportedChangeRequestType(requestType) {
		return entities.ChangeRequest{}, domainerrors.ErrUnknownChangeRequestType
	}

	var created entities.ChangeRequest
	err := s.runIdempotent(ctx, idempotencyKey, hashStrings("change_request_create", string(requestType), reason, hashPayload(payload)),
		func(raw []byte) error { return json.Unmarshal(raw, &created) },
		func() ([]byte, error) {
			request, err := s.Repo.CreateChangeRequest(ctx, entities.ChangeRequest{
				RequestID:   s.newID(ctx),
				Type:        requestType,
				Reason:      strings.TrimSpace(reason),
				Payload:     payload,
				RequestedAt: s.now(),
			})
			if err != nil {
				return nil, err
			}
			created = request
			s.Audit.Append("change_request_created", string(requestType)+" "+request.RequestID)
			return json.Marshal(request)
		},
	)
	if err != nil {
		return entities.ChangeRequest{}, err
	}
	return created, nil
}

func (s Service) ListChangeRequests(ctx context.Context) ([]entities.ChangeRequest, error) {
	return s.Repo.ListChangeRequests(ctx)
}

// ReviewChangeRequest resolves a pending request exactly once. Approval and
// patch application commit together inside the repository; a second review
// of the same request fails with ErrChangeRequestResolved.
func (s Service) ReviewChangeRequest(ctx context.Context, idempotencyKey string, requestID string, actionRaw string, note string) (entities.ChangeRequest, error) {
	action := entities.ReviewAction(strings.TrimSpace(strings.ToLower(actionRaw)))
	if !entities.IsSupportedReviewAction(action) {
		return entities.ChangeRequest{}, domainerrors.ErrUnknownReviewAction
	}
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.ChangeRequest{}, domainerrors.ErrChangeRequestNotFound
	}

	var resolved entities.ChangeRequest
	err := s.runIdempotent(ctx, idempotencyKey, hashStrings("change_request_review", requestID, string(action), note),
		func(raw []byte) error { return json.Unmarshal(raw, &resolved) },
		func() ([]byte, error) {
			request, err := s.Repo.ResolveChangeRequest(ctx, requestID, action, note, s.now())
			if err != nil {
				return nil, err
			}
			resolved = request
			s.Audit.Append("change_request_"+string(request.Status), request.RequestID+" "+string(request.Type))
			if request.Status == entities.ChangeRequestApproved && request.Type == entities.ChangeRequestTypeProfile {
				if err := s.Versions.AppendVersion(ctx, entities.ProfileVersion{
					VersionID:     s.newID(ctx),
					Label:         "change_request",
					Note:          request.RequestID,
					ChangedFields: payloadKeys(request.Payload),
					CreatedAt:     s.now(),
				}); err != nil {
					return nil, err
				}
			}
			s.publishResolutionEvent(ctx, request)
			return json.Marshal(request)
		},
	)
	if err != nil {
		return entities.ChangeRequest{}, err
	}
	return resolved, nil
}

func (s Service) AuditTrail(ctx context.Context) []audit.Entry {
	return s.Audit.List()
}

func (s Service) ProfileVersions(ctx context.Context) ([]entities.ProfileVersion, error) {
	return s.Versions.ListVersions(ctx)
}

// CheckVisibility reports whether a public slug may be served. Only the
// current contestant's own slug is hidden, and only while publishing is not
// approved.
func (s Service) CheckVisibility(ctx context.Context, candidateSlug string) (bool, error) {
	candidateSlug = strings.TrimSpace(candidateSlug)
	profile, err := s.Repo.GetProfile(ctx)
	if err != nil {
		return false, err
	}
	if s.Slugifier == nil || s.Slugifier.Slugify(profile.DisplayName) != candidateSlug {
		return true, nil
	}
	state, err := s.Repo.GetPublishing(ctx)
	if err != nil {
		return false, err
	}
	return state.Published(), nil
}

func (s Service) publishReviewEvent(ctx context.Context, state entities.PublishingState) {
	if s.Outbox == nil {
		return
	}
	var topic string
	switch state.AdminReviewStatus {
	case entities.AdminReviewApproved:
		topic = TopicProfilePublished
	case entities.AdminReviewRejected:
		topic = TopicProfileRejected
	default:
		return
	}
	s.appendOutbox(ctx, topic, "publishing_state", state)
}

func (s Service) publishResolutionEvent(ctx context.Context, request entities.ChangeRequest) {
	if s.Outbox == nil {
		return
	}
	s.appendOutbox(ctx, TopicChangeRequestResolved, "change_request", request)
}

func (s Service) appendOutbox(ctx context.Context, topic string, entityType string, payload any) {
	records, err := s.Repo.GetRecords(ctx)
	if err != nil {
		return
	}
	envelope := events.Envelope{
		EventID:        s.newID(ctx),
		EventType:      topic,
		SourceService:  sourceService,
		OccurredAtUTC:  s.now(),
		EntityType:     entityType,
		EntityID:       records.ContestantID,
		PayloadVersion: 1,
		Payload:        payload,
	}
	if err := s.Outbox.AppendOutbox(ctx, envelope); err != nil {
		resolveLogger(s.Logger).Error("outbox append failed",
			"event", "lifecycle_outbox_append_failed",
			"module", sourceService,
			"layer", "application",
			"topic", topic,
			"error", err.Error(),
		)
	}
}

func (s Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now().UTC()
	}
	return time.Now().UTC()
}

func (s Service) newID(ctx context.Context) string {
	if s.IDGenerator != nil {
		if id, err := s.IDGenerator.NewID(ctx); err == nil {
			return id
		}
	}
	return uuid.NewString()
}

func (s Service) idempotencyTTL() time.Duration {
	if s.IdempotencyTTL <= 0 {
		return 7 * 24 * time.Hour
	}
	return s.IdempotencyTTL
}

// runIdempotent executes a mutation once per idempotency key, replaying the
// stored response for identical retries. An empty key executes directly:
// the request/response contract does not force callers to send one.
func (s Service) runIdempotent(
	ctx context.Context,
	key string,
	requestHash string,
	decode func([]byte) error,
	exec func() ([]byte, error),
) error {
	key = strings.TrimSpace(key)
	if key == "" || s.Idempotency == nil {
		_, err := exec()
		return err
	}

	now := s.now()
	record, found, err := s.Idempotency.GetRecord(ctx, key, now)
	if err != nil {
		return err
	}
	if found {
		if record.RequestHash != requestHash {
			return domainerrors.ErrIdempotencyConflict
		}
		return decode(record.ResponsePayload)
	}

	payload, err := exec()
	if err != nil {
		return err
	}
	if err := s.Idempotency.PutRecord(ctx, ports.IdempotencyRecord{
		Key:             key,
		RequestHash:     requestHash,
		ResponsePayload: payload,
		ExpiresAt:       now.Add(s.idempotencyTTL()),
	}); err != nil {
		return err
	}
	resolveLogger(s.Logger).Debug("lifecycle idempotent mutation committed",
		"event", "lifecycle_idempotent_mutation_committed",
		"module", sourceService,
		"layer", "application",
		"idempotency_key", key,
	)
	return decode(payload)
}

func fieldsDetail(fields []string) string {
	if len(fields) == 0 {
		return "no fields changed"
	}
	return "fields: " + strings.Join(fields, ", ")
}

func payloadKeys(payload map[string]any) []string {
	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func hashStrings(values ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(values, "|")))
	return hex.EncodeToString(sum[:])
}

func hashPayload(payload map[string]any) string {
	keys := payloadKeys(payload)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", key, payload[key]))
	}
	return strings.Join(parts, "&")
}
