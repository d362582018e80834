package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"starcast/contexts/partnerships/sponsor-offer-service/application"
	"starcast/contexts/partnerships/sponsor-offer-service/domain/entities"
	httptransport "starcast/contexts/partnerships/sponsor-offer-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ListOffersHandler(ctx context.Context) (httptransport.OfferListResponse, error) {
	items, err := h.Service.Offers(ctx)
	if err != nil {
		return httptransport.OfferListResponse{}, err
	}
	resp := httptransport.OfferListResponse{Status: "success", Timestamp: stamp()}
	resp.Data.Items = make([]httptransport.OfferData, 0, len(items))
	for _, item := range items {
		resp.Data.Items = append(resp.Data.Items, mapOfferData(item))
	}
	return resp, nil
}

func (h Handler) UpdateOfferHandler(ctx context.Context, offerID string, req httptransport.UpdateOfferRequest) (httptransport.OfferResponse, error) {
	offer, err := h.Service.UpdateOffer(ctx, offerID, req.Action, req.Message)
	if err != nil {
		return httptransport.OfferResponse{}, err
	}
	return httptransport.OfferResponse{Status: "success", Data: mapOfferData(offer), Timestamp: stamp()}, nil
}

func mapOfferData(offer entities.SponsorOffer) httptransport.OfferData {
	messages := make([]httptransport.OfferMessageData, 0, len(offer.Messages))
	for _, message := range offer.Messages {
		messages = append(messages, httptransport.OfferMessageData{
			MessageID: message.MessageID,
			Author:    message.Author,
			Body:      message.Body,
			SentAt:    message.SentAt.UTC().Format(time.RFC3339),
		})
	}
	return httptransport.OfferData{
		OfferID:      offer.OfferID,
		SponsorName:  offer.SponsorName,
		Trusted:      offer.Trusted,
		Deliverables: offer.Deliverables,
		Duration:     offer.Duration,
		Price:        offer.Price,
		Status:       string(offer.Status),
		Messages:     messages,
		CreatedAt:    offer.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    offer.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func stamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
