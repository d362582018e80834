package workers

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	application "starcast/contexts/contestant-lifecycle/lifecycle-service/application"
	"starcast/contexts/contestant-lifecycle/lifecycle-service/ports"
	"starcast/internal/shared/events"
)

// OutboxRelay publishes pending lifecycle outbox rows to the event bus.
type OutboxRelay struct {
	Outbox    ports.OutboxRepository
	Publisher ports.EventPublisher
	Clock     ports.Clock
	BatchSize int
	Logger    *slog.Logger
}

func (r OutboxRelay) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(r.Logger)
	limit := r.BatchSize
	if limit <= 0 {
		limit = 100
	}

	pending, err := r.Outbox.ListPendingOutbox(ctx, limit)
	if err != nil {
		logger.Error("lifecycle outbox list failed",
			"event", "lifecycle_outbox_list_failed",
			"module", "contestant-lifecycle/lifecycle-service",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}

	now := time.Now().UTC()
	if r.Clock != nil {
		now = r.Clock.Now().UTC()
	}

	for _, row := range pending {
		var event events.Envelope
		if err := json.Unmarshal(row.Payload, &event); err != nil {
			logger.Error("lifecycle outbox decode failed",
				"event", "lifecycle_outbox_decode_failed",
				"module", "contestant-lifecycle/lifecycle-service",
				"layer", "worker",
				"outbox_id", row.ID,
				"error", err.Error(),
			)
			return err
		}

		topic := event.EventType
		if topic == "" {
			topic = row.EventType
		}
		if err := r.Publisher.Publish(ctx, topic, event); err != nil {
			logger.Error("lifecycle outbox publish failed",
				"event", "lifecycle_outbox_publish_failed",
				"module", "contestant-lifecycle/lifecycle-service",
				"layer", "worker",
				"outbox_id", row.ID,
				"topic", topic,
				"error", err.Error(),
			)
			return err
		}
		if err := r.Outbox.MarkOutboxPublished(ctx, row.ID, now); err != nil {
			logger.Error("lifecycle outbox mark published failed",
				"event", "lifecycle_outbox_mark_published_failed",
				"module", "contestant-lifecycle/lifecycle-service",
				"layer", "worker",
				"outbox_id", row.ID,
				"error", err.Error(),
			)
			return err
		}
	}

	if len(pending) > 0 {
		logger.Info("lifecycle outbox relay cycle completed",
			"event", "lifecycle_outbox_relay_completed",
			"module", "contestant-lifecycle/lifecycle-service",
			"layer", "worker",
			"published_count", len(pending),
		)
	}
	return nil
}
