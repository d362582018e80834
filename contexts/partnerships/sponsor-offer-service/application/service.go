package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"starcast/contexts/partnerships/sponsor-offer-service/domain/entities"
	domainerrors "starcast/contexts/partnerships/sponsor-offer-service/domain/errors"
	"starcast/contexts/partnerships/sponsor-offer-service/ports"
)

const sourceService = "partnerships/sponsor-offer-service"

// Service runs the contestant side of sponsor negotiations.
type Service struct {
	Repo   ports.OfferRepository
	Audit  ports.AuditLog
	Clock  ports.Clock
	Logger *slog.Logger
}

func (s Service) Offers(ctx context.Context) ([]entities.SponsorOffer, error) {
	return s.Repo.ListOffers(ctx)
}

func (s Service) Offer(ctx context.Context, offerID string) (entities.SponsorOffer, error) {
	return s.Repo.GetOffer(ctx, offerID)
}

// UpdateOffer handles one negotiation call: optional action, optional
// message, either alone or together. The thread message is always authored
// as contestant.
func (s Service) UpdateOffer(ctx context.Context, offerID string, actionRaw string, message string) (entities.SponsorOffer, error) {
	update := ports.OfferUpdate{Message: strings.TrimSpace(message)}
	if trimmed := strings.TrimSpace(strings.ToLower(actionRaw)); trimmed != "" {
		action := entities.OfferAction(trimmed)
		if !entities.IsSupportedOfferAction(action) {
			return entities.SponsorOffer{}, domainerrors.ErrUnknownOfferAction
		}
		update.Action = action
	}

	offer, err := s.Repo.ApplyUpdate(ctx, offerID, update, s.now())
	if err != nil {
		return entities.SponsorOffer{}, err
	}

	detail := offer.OfferID + " status " + string(offer.Status)
	if update.Message != "" {
		detail += ", message threaded"
	}
	s.Audit.Append("sponsor_offer_updated", detail)
	resolveLogger(s.Logger).Info("sponsor offer updated",
		"event", "sponsor_offer_updated",
		"module", sourceService,
		"layer", "application",
		"offer_id", offer.OfferID,
		"status", string(offer.Status),
	)
	return offer, nil
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
