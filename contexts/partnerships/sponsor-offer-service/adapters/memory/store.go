package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"starcast/contexts/partnerships/sponsor-offer-service/domain/entities"
	domainerrors "starcast/contexts/partnerships/sponsor-offer-service/domain/errors"
	"starcast/contexts/partnerships/sponsor-offer-service/ports"
)

// Store holds the sponsor offer book for one contestant workspace.
type Store struct {
	mu     sync.RWMutex
	offers []entities.SponsorOffer
}

func NewStore() *Store {
	now := time.Now().UTC()
	return &Store{
		offers: []entities.SponsorOffer{
			{
				OfferID:      "offer_seed_1",
				SponsorName:  "Northline Audio",
				Trusted:      true,
				Deliverables: "2 branded posts, 1 story mention",
				Duration:     "4 weeks",
				Price:        "GBP 1,200",
				Status:       entities.OfferStatusPending,
				Messages: []entities.OfferMessage{
					{
						MessageID: "msg_seed_1",
						Author:    entities.AuthorSponsor,
						Body:      "We loved your semifinal set. Open to a short collaboration?",
						SentAt:    now.Add(-48 * time.Hour),
					},
				},
				CreatedAt: now.Add(-48 * time.Hour),
				UpdatedAt: now.Add(-48 * time.Hour),
			},
			{
				OfferID:      "offer_seed_2",
				SponsorName:  "GlowUp Cosmetics",
				Trusted:      false,
				Deliverables: "1 unboxing video",
				Duration:     "1 week",
				Price:        "product only",
				Status:       entities.OfferStatusPending,
				CreatedAt:    now.Add(-24 * time.Hour),
				UpdatedAt:    now.Add(-24 * time.Hour),
			},
		},
	}
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) ListOffers(ctx context.Context) ([]entities.SponsorOffer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.SponsorOffer, 0, len(s.offers))
	for _, offer := range s.offers {
		items = append(items, cloneOffer(offer))
	}
	return items, nil
}

func (s *Store) GetOffer(ctx context.Context, offerID string) (entities.SponsorOffer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexLocked(offerID)
	if idx == -1 {
		return entities.SponsorOffer{}, domainerrors.ErrOfferNotFound
	}
	return cloneOffer(s.offers[idx]), nil
}

// ApplyUpdate commits the optional status transition and the optional message
// append under one lock hold.
func (s *Store) ApplyUpdate(ctx context.Context, offerID string, update ports.OfferUpdate, now time.Time) (entities.SponsorOffer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(offerID)
	if idx == -1 {
		return entities.SponsorOffer{}, domainerrors.ErrOfferNotFound
	}

	offer := &s.offers[idx]
	if update.Action != "" {
		if !offer.ApplyAction(update.Action, now) {
			return entities.SponsorOffer{}, domainerrors.ErrUnknownOfferAction
		}
	}
	if strings.TrimSpace(update.Message) != "" {
		offer.AppendMessage(uuid.NewString(), strings.TrimSpace(update.Message), now)
	}
	return cloneOffer(*offer), nil
}

func (s *Store) indexLocked(offerID string) int {
	offerID = strings.TrimSpace(offerID)
	for i := range s.offers {
		if s.offers[i].OfferID == offerID {
			return i
		}
	}
	return -1
}

func cloneOffer(offer entities.SponsorOffer) entities.SponsorOffer {
	offer.Messages = append([]entities.OfferMessage(nil), offer.Messages...)
	return offer
}

var _ ports.OfferRepository = (*Store)(nil)
var _ ports.Clock = (*Store)(nil)
