package entities

import "time"

type OfferStatus string
type OfferAction string

const (
	OfferStatusPending     OfferStatus = "pending"
	OfferStatusAccepted    OfferStatus = "accepted"
	OfferStatusRejected    OfferStatus = "rejected"
	OfferStatusNegotiation OfferStatus = "negotiation"

	OfferActionAccept    OfferAction = "accept"
	OfferActionReject    OfferAction = "reject"
	OfferActionNegotiate OfferAction = "negotiate"
)

// AuthorContestant labels thread messages written through the contestant
// workspace. Sponsor-side messages arrive via seeds or future ingestion.
const (
	AuthorContestant = "contestant"
	AuthorSponsor    = "sponsor"
)

func IsSupportedOfferAction(value OfferAction) bool {
	switch value {
	case OfferActionAccept, OfferActionReject, OfferActionNegotiate:
		return true
	default:
		return false
	}
}

type OfferMessage struct {
	MessageID string
	Author    string
	Body      string
	SentAt    time.Time
}

// SponsorOffer is one sponsor's proposal plus its negotiation thread. The
// status machine is unordered: any action is valid from any state.
type SponsorOffer struct {
	OfferID      string
	SponsorName  string
	Trusted      bool
	Deliverables string
	Duration     string
	Price        string
	Status       OfferStatus
	Messages     []OfferMessage
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ApplyAction maps the contestant action onto the offer status.
func (o *SponsorOffer) ApplyAction(action OfferAction, now time.Time) bool {
	switch action {
	case OfferActionAccept:
		o.Status = OfferStatusAccepted
	case OfferActionReject:
		o.Status = OfferStatusRejected
	case OfferActionNegotiate:
		o.Status = OfferStatusNegotiation
	default:
		return false
	}
	o.UpdatedAt = now.UTC()
	return true
}

// AppendMessage threads a contestant message onto the offer. The author role
// is fixed regardless of which action, if any, accompanied the message.
func (o *SponsorOffer) AppendMessage(messageID string, body string, now time.Time) OfferMessage {
	message := OfferMessage{
		MessageID: messageID,
		Author:    AuthorContestant,
		Body:      body,
		SentAt:    now.UTC(),
	}
	o.Messages = append(o.Messages, message)
	o.UpdatedAt = now.UTC()
	return message
}
