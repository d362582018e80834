package application

import (
	"context"
	"errors"
	"testing"

	"starcast/contexts/partnerships/sponsor-offer-service/adapters/memory"
	"starcast/contexts/partnerships/sponsor-offer-service/domain/entities"
	domainerrors "starcast/contexts/partnerships/sponsor-offer-service/domain/errors"
	"starcast/internal/shared/audit"
)

func newTestService() Service {
	store := memory.NewStore()
	return Service{
		Repo:  store,
		Audit: audit.NewTrail(audit.DefaultCapacity),
		Clock: store,
	}
}

func TestUpdateOfferAcceptSetsStatus(t *testing.T) {
	service := newTestService()
	offer, err := service.UpdateOffer(context.Background(), "offer_seed_1", "accept", "")
	if err != nil {
		t.Fatalf("update offer: %v", err)
	}
	if offer.Status != entities.OfferStatusAccepted {
		t.Fatalf("expected accepted, got %q", offer.Status)
	}
}

func TestUpdateOfferNegotiateWithMessage(t *testing.T) {
	service := newTestService()
	offer, err := service.UpdateOffer(context.Background(), "offer_seed_1", "negotiate", "Can we do 3 weeks instead?")
	if err != nil {
		t.Fatalf("update offer: %v", err)
	}
	if offer.Status != entities.OfferStatusNegotiation {
		t.Fatalf("expected negotiation, got %q", offer.Status)
	}
	last := offer.Messages[len(offer.Messages)-1]
	if last.Author != entities.AuthorContestant {
		t.Fatalf("threaded message must carry the contestant role, got %q", last.Author)
	}
	if last.Body != "Can we do 3 weeks instead?" {
		t.Fatalf("unexpected message body %q", last.Body)
	}
}

func TestUpdateOfferMessageOnlyLeavesStatus(t *testing.T) {
	service := newTestService()
	offer, err := service.UpdateOffer(context.Background(), "offer_seed_2", "", "Thanks, reviewing the terms.")
	if err != nil {
		t.Fatalf("update offer: %v", err)
	}
	if offer.Status != entities.OfferStatusPending {
		t.Fatalf("message-only update must not change status, got %q", offer.Status)
	}
	if len(offer.Messages) != 1 || offer.Messages[0].Author != entities.AuthorContestant {
		t.Fatalf("expected one contestant message, got %+v", offer.Messages)
	}
}

func TestUpdateOfferUnknownID(t *testing.T) {
	service := newTestService()
	_, err := service.UpdateOffer(context.Background(), "offer_missing", "accept", "")
	if !errors.Is(err, domainerrors.ErrOfferNotFound) {
		t.Fatalf("expected ErrOfferNotFound, got %v", err)
	}
}

func TestUpdateOfferUnknownAction(t *testing.T) {
	service := newTestService()
	_, err := service.UpdateOffer(context.Background(), "offer_seed_1", "counter", "")
	if !errors.Is(err, domainerrors.ErrUnknownOfferAction) {
		t.Fatalf("expected ErrUnknownOfferAction, got %v", err)
	}
}

func TestUpdateOfferAppendsAuditEntry(t *testing.T) {
	service := newTestService()
	if _, err := service.UpdateOffer(context.Background(), "offer_seed_1", "reject", ""); err != nil {
		t.Fatalf("update offer: %v", err)
	}
	trail := service.Audit.List()
	if len(trail) != 1 || trail[0].Action != "sponsor_offer_updated" {
		t.Fatalf("expected one sponsor_offer_updated entry, got %+v", trail)
	}
}

func TestListOffersReturnsCopies(t *testing.T) {
	service := newTestService()
	items, err := service.Offers(context.Background())
	if err != nil {
		t.Fatalf("list offers: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 seeded offers, got %d", len(items))
	}
	items[0].Status = entities.OfferStatusRejected

	again, _ := service.Offers(context.Background())
	if again[0].Status == entities.OfferStatusRejected {
		t.Fatalf("caller mutation leaked into store state")
	}
}
