package entities

import "time"

type ChangeRequestType string
type ChangeRequestStatus string
type ReviewAction string

const (
	ChangeRequestTypeOnboarding ChangeRequestType = "onboarding"
	ChangeRequestTypeProfile    ChangeRequestType = "profile"
	ChangeRequestTypeMedia      ChangeRequestType = "media"
	ChangeRequestTypeCompliance ChangeRequestType = "compliance"

	ChangeRequestPending  ChangeRequestStatus = "pending"
	ChangeRequestApproved ChangeRequestStatus = "approved"
	ChangeRequestRejected ChangeRequestStatus = "rejected"

	ReviewActionApprove ReviewAction = "approve"
	ReviewActionReject  ReviewAction = "reject"
)

func IsSupportedChangeRequestType(value ChangeRequestType) bool {
	switch value {
	case ChangeRequestTypeOnboarding, ChangeRequestTypeProfile,
		ChangeRequestTypeMedia, ChangeRequestTypeCompliance:
		return true
	default:
		return false
	}
}

func IsSupportedReviewAction(value ReviewAction) bool {
	return value == ReviewActionApprove || value == ReviewActionReject
}

// ChangeRequest is a proposed edit against a locked record. It is resolved
// exactly once; approval applies the payload to the target record in the
// same mutation.
type ChangeRequest struct {
	RequestID   string
	Type        ChangeRequestType
	Reason      string
	Payload     map[string]any
	Status      ChangeRequestStatus
	RequestedAt time.Time
	ReviewedAt  *time.Time
	ReviewNote  string
}

func (c ChangeRequest) Resolved() bool {
	return c.Status == ChangeRequestApproved || c.Status == ChangeRequestRejected
}
