package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type UpdateOfferRequest struct {
	Action  string `json:"action,omitempty"`
	Message string `json:"message,omitempty"`
}

type OfferMessageData struct {
	MessageID string `json:"message_id"`
	Author    string `json:"author"`
	Body      string `json:"body"`
	SentAt    string `json:"sent_at"`
}

type OfferData struct {
	OfferID      string             `json:"offer_id"`
	SponsorName  string             `json:"sponsor_name"`
	Trusted      bool               `json:"trusted"`
	Deliverables string             `json:"deliverables"`
	Duration     string             `json:"duration"`
	Price        string             `json:"price"`
	Status       string             `json:"status"`
	Messages     []OfferMessageData `json:"messages"`
	CreatedAt    string             `json:"created_at"`
	UpdatedAt    string             `json:"updated_at"`
}

type OfferResponse struct {
	Status    string    `json:"status"`
	Data      OfferData `json:"data"`
	Timestamp string    `json:"timestamp"`
}

type OfferListResponse struct {
	Status string `json:"status"`
	Data   struct {
		Items []OfferData `json:"items"`
	} `json:"data"`
	Timestamp string `json:"timestamp"`
}
