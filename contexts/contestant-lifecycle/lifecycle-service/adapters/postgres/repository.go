package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"starcast/contexts/contestant-lifecycle/lifecycle-service/domain/entities"
	domainerrors "starcast/contexts/contestant-lifecycle/lifecycle-service/domain/errors"
	"starcast/contexts/contestant-lifecycle/lifecycle-service/ports"
	"starcast/internal/shared/audit"
	"starcast/internal/shared/events"
	"starcast/internal/shared/outbox"
)

const (
	outboxStatusPending   = string(outbox.StatusPending)
	outboxStatusPublished = string(outbox.StatusPublished)

	auditMirrorCapacity = 100
)

// Repository mirrors the workspace side logs into Postgres: profile
// versions, audit entries, the event outbox, and idempotency records. The
// in-memory store stays the authority over the workspace records
// themselves; this mirror is what survives a restart.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) AppendVersion(ctx context.Context, version entities.ProfileVersion) error {
	row, err := versionModelFromEntity(version)
	if err != nil {
		return r.logError("lifecycle_repo_version_encode_failed", err,
			"version_id", strings.TrimSpace(version.VersionID),
		)
	}
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "version_id"}},
		DoNothing: true,
	}).Create(&row)
	if create.Error != nil {
		if isUniqueViolation(create.Error) {
			return nil
		}
		return r.logError("lifecycle_repo_version_insert_failed", create.Error,
			"version_id", row.VersionID,
		)
	}

	// Keep only the newest entries; the ledger is bounded by contract.
	if err := r.db.WithContext(ctx).Exec(
		`DELETE FROM lifecycle_profile_versions
		 WHERE version_id NOT IN (
			SELECT version_id FROM lifecycle_profile_versions
			ORDER BY created_at DESC, version_id DESC
			LIMIT ?
		 )`, entities.ProfileVersionCapacity,
	).Error; err != nil {
		return r.logError("lifecycle_repo_version_trim_failed", err)
	}
	return nil
}

func (r *Repository) ListVersions(ctx context.Context) ([]entities.ProfileVersion, error) {
	var rows []profileVersionModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, version_id DESC").
		Limit(entities.ProfileVersionCapacity).
		Find(&rows).Error; err != nil {
		return nil, r.logError("lifecycle_repo_list_versions_failed", err)
	}
	items := make([]entities.ProfileVersion, 0, len(rows))
	for _, row := range rows {
		version, err := row.toEntity()
		if err != nil {
			return nil, r.logError("lifecycle_repo_version_decode_failed", err, "version_id", row.VersionID)
		}
		items = append(items, version)
	}
	return items, nil
}

// RecordAuditEntry writes one trail entry through to the mirror table and
// trims it to the shared trail capacity.
func (r *Repository) RecordAuditEntry(ctx context.Context, entry audit.Entry) error {
	row := auditEntryModel{
		EntryID:   strings.TrimSpace(entry.EntryID),
		Action:    entry.Action,
		Detail:    entry.Detail,
		CreatedAt: entry.CreatedAt.UTC(),
	}
	if row.EntryID == "" {
		row.EntryID = uuid.NewString()
	}
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_id"}},
		DoNothing: true,
	}).Create(&row)
	if create.Error != nil {
		return r.logError("lifecycle_repo_audit_insert_failed", create.Error, "entry_id", row.EntryID)
	}

	if err := r.db.WithContext(ctx).Exec(
		`DELETE FROM lifecycle_audit_entries
		 WHERE entry_id NOT IN (
			SELECT entry_id FROM lifecycle_audit_entries
			ORDER BY created_at DESC, entry_id DESC
			LIMIT ?
		 )`, auditMirrorCapacity,
	).Error; err != nil {
		return r.logError("lifecycle_repo_audit_trim_failed", err)
	}
	return nil
}

func (r *Repository) AppendOutbox(ctx context.Context, envelope events.Envelope) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return r.logError("lifecycle_repo_append_outbox_marshal_failed", err,
			"event_id", strings.TrimSpace(envelope.EventID),
			"event_type", strings.TrimSpace(envelope.EventType),
		)
	}
	row := outboxModel{
		OutboxID:  strings.TrimSpace(envelope.EventID),
		EventType: strings.TrimSpace(envelope.EventType),
		Payload:   payload,
		Status:    outboxStatusPending,
		CreatedAt: envelope.OccurredAtUTC.UTC(),
	}
	if row.OutboxID == "" {
		row.OutboxID = uuid.NewString()
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "outbox_id"}},
		DoNothing: true,
	}).Create(&row)
	if create.Error != nil {
		return r.logError("lifecycle_repo_append_outbox_insert_failed", create.Error,
			"outbox_id", row.OutboxID,
		)
	}
	return nil
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]outbox.Message, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []outboxModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", outboxStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, r.logError("lifecycle_repo_list_pending_outbox_failed", err, "limit", limit)
	}
	items := make([]outbox.Message, 0, len(rows))
	for _, row := range rows {
		items = append(items, outbox.Message{
			ID:         row.OutboxID,
			EventType:  row.EventType,
			Payload:    append([]byte(nil), row.Payload...),
			Status:     outbox.Status(row.Status),
			RetryCount: row.RetryCount,
		})
	}
	return items, nil
}

func (r *Repository) MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&outboxModel{}).
		Where("outbox_id = ?", strings.TrimSpace(outboxID)).
		Updates(map[string]any{
			"status":       outboxStatusPublished,
			"published_at": publishedAt.UTC(),
		})
	if result.Error != nil {
		return r.logError("lifecycle_repo_mark_outbox_published_failed", result.Error,
			"outbox_id", strings.TrimSpace(outboxID),
		)
	}
	return nil
}

func (r *Repository) GetRecord(ctx context.Context, key string, now time.Time) (ports.IdempotencyRecord, bool, error) {
	var row idempotencyModel
	err := r.db.WithContext(ctx).
		Where("key = ?", strings.TrimSpace(key)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.IdempotencyRecord{}, false, nil
		}
		return ports.IdempotencyRecord{}, false, r.logError("lifecycle_repo_idempotency_get_failed", err,
			"idempotency_key", strings.TrimSpace(key),
		)
	}
	if !row.ExpiresAt.IsZero() && now.UTC().After(row.ExpiresAt.UTC()) {
		if err := r.db.WithContext(ctx).
			Where("key = ?", strings.TrimSpace(key)).
			Delete(&idempotencyModel{}).Error; err != nil {
			return ports.IdempotencyRecord{}, false, r.logError("lifecycle_repo_idempotency_expire_delete_failed", err,
				"idempotency_key", strings.TrimSpace(key),
			)
		}
		return ports.IdempotencyRecord{}, false, nil
	}
	return ports.IdempotencyRecord{
		Key:             row.Key,
		RequestHash:     row.RequestHash,
		ResponsePayload: append([]byte(nil), row.ResponsePayload...),
		ExpiresAt:       row.ExpiresAt.UTC(),
	}, true, nil
}

func (r *Repository) PutRecord(ctx context.Context, record ports.IdempotencyRecord) error {
	row := idempotencyModel{
		Key:             strings.TrimSpace(record.Key),
		RequestHash:     strings.TrimSpace(record.RequestHash),
		ResponsePayload: append([]byte(nil), record.ResponsePayload...),
		ExpiresAt:       record.ExpiresAt.UTC(),
	}
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoNothing: true,
	}).Create(&row)
	if create.Error != nil {
		return r.logError("lifecycle_repo_idempotency_put_failed", create.Error, "idempotency_key", row.Key)
	}
	if create.RowsAffected > 0 {
		return nil
	}

	var existing idempotencyModel
	if err := r.db.WithContext(ctx).
		Where("key = ?", row.Key).
		First(&existing).Error; err != nil {
		return r.logError("lifecycle_repo_idempotency_load_existing_failed", err, "idempotency_key", row.Key)
	}
	if existing.RequestHash != row.RequestHash {
		return domainerrors.ErrIdempotencyConflict
	}
	return nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "contestant-lifecycle/lifecycle-service",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("lifecycle repository operation failed", fields...)
	return err
}

// MirroredAuditLog write-throughs every trail append into the Postgres
// mirror. Mirror failures are logged, never surfaced: the in-memory trail
// remains the serving copy.
type MirroredAuditLog struct {
	Trail  ports.AuditLog
	Repo   *Repository
	Logger *slog.Logger
}

func (m MirroredAuditLog) Append(action string, detail string) audit.Entry {
	entry := m.Trail.Append(action, detail)
	if m.Repo != nil {
		if err := m.Repo.RecordAuditEntry(context.Background(), entry); err != nil {
			logger := m.Logger
			if logger == nil {
				logger = slog.Default()
			}
			logger.Warn("audit mirror write failed",
				"event", "lifecycle_audit_mirror_failed",
				"module", "contestant-lifecycle/lifecycle-service",
				"layer", "adapter",
				"entry_id", entry.EntryID,
				"error", err.Error(),
			)
		}
	}
	return entry
}

func (m MirroredAuditLog) List() []audit.Entry {
	return m.Trail.List()
}

type profileVersionModel struct {
	VersionID     string    `gorm:"column:version_id;primaryKey"`
	Label         string    `gorm:"column:label"`
	Note          string    `gorm:"column:note"`
	ChangedFields []byte    `gorm:"column:changed_fields"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (profileVersionModel) TableName() string {
	return "lifecycle_profile_versions"
}

func versionModelFromEntity(version entities.ProfileVersion) (profileVersionModel, error) {
	fields, err := json.Marshal(version.ChangedFields)
	if err != nil {
		return profileVersionModel{}, err
	}
	row := profileVersionModel{
		VersionID:     strings.TrimSpace(version.VersionID),
		Label:         strings.TrimSpace(version.Label),
		Note:          strings.TrimSpace(version.Note),
		ChangedFields: fields,
		CreatedAt:     version.CreatedAt.UTC(),
	}
	if row.VersionID == "" {
		row.VersionID = uuid.NewString()
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	return row, nil
}

func (m profileVersionModel) toEntity() (entities.ProfileVersion, error) {
	var fields []string
	if len(m.ChangedFields) > 0 {
		if err := json.Unmarshal(m.ChangedFields, &fields); err != nil {
			return entities.ProfileVersion{}, err
		}
	}
	return entities.ProfileVersion{
		VersionID:     m.VersionID,
		Label:         m.Label,
		Note:          m.Note,
		ChangedFields: fields,
		CreatedAt:     m.CreatedAt.UTC(),
	}, nil
}

type auditEntryModel struct {
	EntryID   string    `gorm:"column:entry_id;primaryKey"`
	Action    string    `gorm:"column:action"`
	Detail    string    `gorm:"column:detail"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (auditEntryModel) TableName() string {
	return "lifecycle_audit_entries"
}

type outboxModel struct {
	OutboxID    string     `gorm:"column:outbox_id;primaryKey"`
	EventType   string     `gorm:"column:event_type"`
	Payload     []byte     `gorm:"column:payload"`
	Status      string     `gorm:"column:status"`
	RetryCount  int        `gorm:"column:retry_count"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	PublishedAt *time.Time `gorm:"column:published_at"`
}

func (outboxModel) TableName() string {
	return "lifecycle_outbox"
}

type idempotencyModel struct {
	Key             string    `gorm:"column:key;primaryKey"`
	RequestHash     string    `gorm:"column:request_hash"`
	ResponsePayload []byte    `gorm:"column:response_payload"`
	ExpiresAt       time.Time `gorm:"column:expires_at"`
}

func (idempotencyModel) TableName() string {
	return "lifecycle_idempotency"
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ ports.VersionLedger = (*Repository)(nil)
var _ ports.OutboxWriter = (*Repository)(nil)
var _ ports.OutboxRepository = (*Repository)(nil)
var _ ports.IdempotencyStore = (*Repository)(nil)
var _ ports.AuditLog = MirroredAuditLog{}
