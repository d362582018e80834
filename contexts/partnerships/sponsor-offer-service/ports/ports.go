package ports

import (
	"context"
	"time"

	"starcast/contexts/partnerships/sponsor-offer-service/domain/entities"
	"starcast/internal/shared/audit"
)

type Clock interface {
	Now() time.Time
}

type AuditLog interface {
	Append(action string, detail string) audit.Entry
	List() []audit.Entry
}

// OfferUpdate carries the optional action and optional message of one
// negotiation call. Either side may be absent; both absent is a legal no-op.
type OfferUpdate struct {
	Action  entities.OfferAction
	Message string
}

type OfferRepository interface {
	ListOffers(ctx context.Context) ([]entities.SponsorOffer, error)
	GetOffer(ctx context.Context, offerID string) (entities.SponsorOffer, error)
	// ApplyUpdate commits status change and message threading as one unit.
	ApplyUpdate(ctx context.Context, offerID string, update OfferUpdate, now time.Time) (entities.SponsorOffer, error)
}
