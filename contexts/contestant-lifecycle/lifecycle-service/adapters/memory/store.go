package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"starcast/contexts/contestant-lifecycle/lifecycle-service/domain/entities"
	domainerrors "starcast/contexts/contestant-lifecycle/lifecycle-service/domain/errors"
	"starcast/contexts/contestant-lifecycle/lifecycle-service/ports"
	"starcast/internal/shared/events"
	"starcast/internal/shared/outbox"
)

// Store is the process-lifetime authority over one contestant workspace.
// A single coarse lock serializes writers; every read hands out an
// independent copy so callers can hold results across renders without
// corrupting store state.
type Store struct {
	mu sync.RWMutex

	contestantID string
	onboarding   entities.OnboardingRecord
	compliance   entities.ComplianceRecord
	media        []entities.MediaAsset
	profile      entities.PublicProfile
	publishing   entities.PublishingState

	changeRequests []entities.ChangeRequest

	versions     []entities.ProfileVersion
	versionsNext int
	versionsSize int

	outboxRows  []outbox.Message
	idempotency map[string]ports.IdempotencyRecord
}

func NewStore() *Store {
	return &Store{
		contestantID: "cont_default_1",
		onboarding: entities.OnboardingRecord{
			FullName:  "Amara Okafor",
			StageName: "Amara O.",
			Email:     "amara@starcast.live",
			Category:  "vocal",
		},
		compliance: entities.ComplianceRecord{
			LegalName: "Amara Okafor",
			BirthDate: "1999-04-12",
			Country:   "GB",
		},
		media: []entities.MediaAsset{
			{
				AssetID:   "asset_seed_1",
				Kind:      entities.MediaKindGalleryImage,
				Label:     "Rehearsal still",
				URL:       "https://cdn.starcast.live/media/asset_seed_1.jpg",
				Status:    entities.MediaStatusPending,
				CreatedAt: time.Now().UTC(),
			},
		},
		profile: entities.PublicProfile{
			DisplayName: "Amara",
			Category:    "vocal",
			Location:    "London",
		},
		publishing:  entities.NewPublishingState(),
		versions:    make([]entities.ProfileVersion, entities.ProfileVersionCapacity),
		idempotency: make(map[string]ports.IdempotencyRecord),
	}
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) GetRecords(ctx context.Context) (entities.ContestantRecords, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recordsLocked(), nil
}

func (s *Store) GetOnboarding(ctx context.Context) (entities.OnboardingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.onboarding, nil
}

func (s *Store) GetCompliance(ctx context.Context) (entities.ComplianceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.compliance, nil
}

func (s *Store) GetProfile(ctx context.Context) (entities.PublicProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile, nil
}

func (s *Store) ListMedia(ctx context.Context) ([]entities.MediaAsset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneMedia(s.media), nil
}

func (s *Store) UpdateOnboarding(ctx context.Context, patch entities.OnboardingPatch) (entities.OnboardingRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	patch.ApplyTo(&s.onboarding)
	return s.onboarding, nil
}

func (s *Store) UpdateCompliance(ctx context.Context, patch entities.CompliancePatch) (entities.ComplianceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	patch.ApplyTo(&s.compliance)
	return s.compliance, nil
}

func (s *Store) UpdateProfile(ctx context.Context, patch entities.ProfilePatch) (entities.PublicProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	patch.ApplyTo(&s.profile)
	return s.profile, nil
}

func (s *Store) AddMedia(ctx context.Context, kind entities.MediaKind, label string, url string, status entities.MediaStatus, now time.Time) (entities.MediaAsset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addMediaLocked(kind, label, url, status, now), nil
}

func (s *Store) addMediaLocked(kind entities.MediaKind, label string, url string, status entities.MediaStatus, now time.Time) entities.MediaAsset {
	asset := entities.MediaAsset{
		AssetID:   uuid.NewString(),
		Kind:      kind,
		Label:     strings.TrimSpace(label),
		URL:       strings.TrimSpace(url),
		Status:    status,
		CreatedAt: now.UTC(),
	}
	s.media = append(s.media, asset)
	return asset
}

func (s *Store) GetPublishing(ctx context.Context) (entities.PublishingState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.publishing, nil
}

func (s *Store) SetSubmissionStatus(ctx context.Context, next entities.SubmissionStatus) (entities.PublishingState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.publishing.ApplySubmissionStatus(next) {
		return entities.PublishingState{}, domainerrors.ErrUnknownSubmissionStatus
	}
	return s.publishing, nil
}

func (s *Store) ApplyAdminReview(ctx context.Context, action entities.AdminAction, reason string) (entities.PublishingState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.publishing.ApplyAdminAction(action, strings.TrimSpace(reason)) {
		return entities.PublishingState{}, domainerrors.ErrUnknownAdminAction
	}
	return s.publishing, nil
}

func (s *Store) CreateChangeRequest(ctx context.Context, request entities.ChangeRequest) (entities.ChangeRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(request.RequestID) == "" {
		request.RequestID = uuid.NewString()
	}
	request.Status = entities.ChangeRequestPending
	request.Payload = clonePayload(request.Payload)
	s.changeRequests = append(s.changeRequests, request)
	return cloneChangeRequest(request), nil
}

func (s *Store) ListChangeRequests(ctx context.Context) ([]entities.ChangeRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.ChangeRequest, 0, len(s.changeRequests))
	for i := len(s.changeRequests) - 1; i >= 0; i-- {
		items = append(items, cloneChangeRequest(s.changeRequests[i]))
	}
	return items, nil
}

// ResolveChangeRequest commits the status stamp and, on approval, the payload
// application as one atomic unit under the store lock. A resolved request is
// never resolved again.
func (s *Store) ResolveChangeRequest(ctx context.Context, requestID string, action entities.ReviewAction, note string, now time.Time) (entities.ChangeRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.changeRequests {
		if s.changeRequests[i].RequestID == strings.TrimSpace(requestID) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return entities.ChangeRequest{}, domainerrors.ErrChangeRequestNotFound
	}
	if s.changeRequests[idx].Resolved() {
		return entities.ChangeRequest{}, domainerrors.ErrChangeRequestResolved
	}

	reviewedAt := now.UTC()
	request := &s.changeRequests[idx]
	request.ReviewedAt = &reviewedAt
	request.ReviewNote = strings.TrimSpace(note)

	if action == entities.ReviewActionReject {
		request.Status = entities.ChangeRequestRejected
		return cloneChangeRequest(*request), nil
	}

	request.Status = entities.ChangeRequestApproved
	s.applyPayloadLocked(request.Type, request.Payload, reviewedAt)
	return cloneChangeRequest(*request), nil
}

// applyPayloadLocked merges an approved payload into the target record,
// bypassing the profile lock since the edit was already mediated. Unknown
// keys are ignored; a media payload missing kind/label/url applies nothing.
func (s *Store) applyPayloadLocked(target entities.ChangeRequestType, payload map[string]any, now time.Time) {
	switch target {
	case entities.ChangeRequestTypeOnboarding:
		patch := entities.OnboardingPatch{
			FullName:  payloadString(payload, "full_name", "fullName"),
			StageName: payloadString(payload, "stage_name", "stageName"),
			Email:     payloadString(payload, "email"),
			Phone:     payloadString(payload, "phone"),
			Category:  payloadString(payload, "category"),
		}
		patch.ApplyTo(&s.onboarding)
	case entities.ChangeRequestTypeCompliance:
		patch := entities.CompliancePatch{
			LegalName:     payloadString(payload, "legal_name", "legalName"),
			BirthDate:     payloadString(payload, "birth_date", "birthDate"),
			Country:       payloadString(payload, "country"),
			DocumentRef:   payloadString(payload, "document_ref", "documentRef"),
			TermsAccepted: payloadBool(payload, "terms_accepted", "termsAccepted"),
			DataConsent:   payloadBool(payload, "data_consent", "dataConsent"),
		}
		patch.ApplyTo(&s.compliance)
	case entities.ChangeRequestTypeProfile:
		patch := entities.ProfilePatch{
			DisplayName: payloadString(payload, "display_name", "displayName"),
			Biography:   payloadString(payload, "biography", "bio"),
			Category:    payloadString(payload, "category"),
			Location:    payloadString(payload, "location"),
			Instagram:   payloadString(payload, "instagram"),
			TikTok:      payloadString(payload, "tiktok"),
			YouTube:     payloadString(payload, "youtube"),
			Website:     payloadString(payload, "website"),
		}
		patch.ApplyTo(&s.profile)
	case entities.ChangeRequestTypeMedia:
		kind := payloadString(payload, "kind")
		label := payloadString(payload, "label")
		url := payloadString(payload, "url")
		if kind == nil || label == nil || url == nil {
			return
		}
		mediaKind := entities.MediaKind(strings.TrimSpace(*kind))
		if !entities.IsSupportedMediaKind(mediaKind) {
			return
		}
		// Mediated assets skip the pending stage.
		s.addMediaLocked(mediaKind, *label, *url, entities.MediaStatusApproved, now)
	}
}

func (s *Store) AppendVersion(ctx context.Context, version entities.ProfileVersion) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	version.ChangedFields = append([]string(nil), version.ChangedFields...)
	s.versions[s.versionsNext] = version
	s.versionsNext = (s.versionsNext + 1) % len(s.versions)
	if s.versionsSize < len(s.versions) {
		s.versionsSize++
	}
	return nil
}

func (s *Store) ListVersions(ctx context.Context) ([]entities.ProfileVersion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.ProfileVersion, 0, s.versionsSize)
	for i := 1; i <= s.versionsSize; i++ {
		idx := (s.versionsNext - i + len(s.versions)) % len(s.versions)
		version := s.versions[idx]
		version.ChangedFields = append([]string(nil), version.ChangedFields...)
		items = append(items, version)
	}
	return items, nil
}

func (s *Store) AppendOutbox(ctx context.Context, envelope events.Envelope) error {
	payload, err := encodeEnvelope(envelope)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.outboxRows = append(s.outboxRows, outbox.Message{
		ID:        envelope.EventID,
		EventType: envelope.EventType,
		Payload:   payload,
		Status:    outbox.StatusPending,
	})
	return nil
}

func (s *Store) ListPendingOutbox(ctx context.Context, limit int) ([]outbox.Message, error) {
	if limit <= 0 {
		limit = 100
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]outbox.Message, 0, limit)
	for _, row := range s.outboxRows {
		if row.Status != outbox.StatusPending {
			continue
		}
		items = append(items, outbox.Message{
			ID:         row.ID,
			EventType:  row.EventType,
			Payload:    append([]byte(nil), row.Payload...),
			Status:     row.Status,
			RetryCount: row.RetryCount,
		})
		if len(items) >= limit {
			break
		}
	}
	return items, nil
}

func (s *Store) MarkOutboxPublished(ctx context.Context, outboxID string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.outboxRows {
		if s.outboxRows[i].ID == outboxID {
			s.outboxRows[i].Status = outbox.StatusPublished
			return nil
		}
	}
	return nil
}

func (s *Store) GetRecord(ctx context.Context, key string, now time.Time) (ports.IdempotencyRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.idempotency[key]
	if !ok {
		return ports.IdempotencyRecord{}, false, nil
	}
	if !record.ExpiresAt.IsZero() && now.UTC().After(record.ExpiresAt.UTC()) {
		delete(s.idempotency, key)
		return ports.IdempotencyRecord{}, false, nil
	}
	record.ResponsePayload = append([]byte(nil), record.ResponsePayload...)
	return record, true, nil
}

func (s *Store) PutRecord(ctx context.Context, record ports.IdempotencyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record.ResponsePayload = append([]byte(nil), record.ResponsePayload...)
	s.idempotency[record.Key] = record
	return nil
}

func (s *Store) recordsLocked() entities.ContestantRecords {
	return entities.ContestantRecords{
		ContestantID: s.contestantID,
		Onboarding:   s.onboarding,
		Compliance:   s.compliance,
		Media:        cloneMedia(s.media),
		Profile:      s.profile,
	}
}

func cloneMedia(items []entities.MediaAsset) []entities.MediaAsset {
	return append([]entities.MediaAsset(nil), items...)
}

func clonePayload(payload map[string]any) map[string]any {
	if payload == nil {
		return nil
	}
	cloned := make(map[string]any, len(payload))
	for key, value := range payload {
		cloned[key] = value
	}
	return cloned
}

func cloneChangeRequest(request entities.ChangeRequest) entities.ChangeRequest {
	request.Payload = clonePayload(request.Payload)
	if request.ReviewedAt != nil {
		reviewedAt := *request.ReviewedAt
		request.ReviewedAt = &reviewedAt
	}
	return request
}

func payloadString(payload map[string]any, keys ...string) *string {
	for _, key := range keys {
		if raw, ok := payload[key]; ok {
			if value, ok := raw.(string); ok {
				return &value
			}
		}
	}
	return nil
}

func payloadBool(payload map[string]any, keys ...string) *bool {
	for _, key := range keys {
		if raw, ok := payload[key]; ok {
			if value, ok := raw.(bool); ok {
				return &value
			}
		}
	}
	return nil
}
