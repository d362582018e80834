package entities

type SubmissionStatus string
type AdminReviewStatus string
type AdminAction string

const (
	SubmissionStatusDraft       SubmissionStatus = "draft"
	SubmissionStatusSubmitted   SubmissionStatus = "submitted"
	SubmissionStatusUnderReview SubmissionStatus = "under_review"
	SubmissionStatusApproved    SubmissionStatus = "approved"
	SubmissionStatusRejected    SubmissionStatus = "rejected"

	AdminReviewPending  AdminReviewStatus = "pending"
	AdminReviewApproved AdminReviewStatus = "approved"
	AdminReviewRejected AdminReviewStatus = "rejected"

	AdminActionApprove AdminAction = "approve"
	AdminActionReject  AdminAction = "reject"
	AdminActionReopen  AdminAction = "reopen"
)

// DefaultRejectionReason is stamped when an admin rejects without a reason.
const DefaultRejectionReason = "does not meet publication guidelines"

func IsSupportedSubmissionStatus(value SubmissionStatus) bool {
	switch value {
	case SubmissionStatusDraft, SubmissionStatusSubmitted, SubmissionStatusUnderReview,
		SubmissionStatusApproved, SubmissionStatusRejected:
		return true
	default:
		return false
	}
}

func IsSupportedAdminAction(value AdminAction) bool {
	switch value {
	case AdminActionApprove, AdminActionReject, AdminActionReopen:
		return true
	default:
		return false
	}
}

// PublishingState couples the contestant-facing submission status with the
// admin-facing review status. Published and ProfileLocked are always derived
// from AdminReviewStatus, never stored, so the two can't drift apart. All
// writes go through the transition methods below.
type PublishingState struct {
	SubmissionStatus  SubmissionStatus
	AdminReviewStatus AdminReviewStatus
	RejectionReason   string
}

func NewPublishingState() PublishingState {
	return PublishingState{
		SubmissionStatus:  SubmissionStatusDraft,
		AdminReviewStatus: AdminReviewPending,
	}
}

func (p PublishingState) Published() bool {
	return p.AdminReviewStatus == AdminReviewApproved
}

func (p PublishingState) ProfileLocked() bool {
	return p.AdminReviewStatus == AdminReviewApproved
}

// Phase is the read-only composite label of the two status fields.
func (p PublishingState) Phase() string {
	switch p.AdminReviewStatus {
	case AdminReviewApproved:
		return "approved_published"
	case AdminReviewRejected:
		return "rejected_with_reason"
	default:
		return string(p.SubmissionStatus) + "_pending"
	}
}

// ApplySubmissionStatus is the contestant-driven transition. A fresh
// submission invalidates any prior admin decision, so submitted/under_review
// reset the review side back to pending.
func (p *PublishingState) ApplySubmissionStatus(next SubmissionStatus) bool {
	if !IsSupportedSubmissionStatus(next) {
		return false
	}
	p.SubmissionStatus = next
	if next == SubmissionStatusSubmitted || next == SubmissionStatusUnderReview {
		p.AdminReviewStatus = AdminReviewPending
		p.RejectionReason = ""
	}
	return true
}

// ApplyAdminAction is the admin-driven transition. Reopen is always reachable
// from approved or rejected; the machine has no terminal state.
func (p *PublishingState) ApplyAdminAction(action AdminAction, reason string) bool {
	switch action {
	case AdminActionApprove:
		p.AdminReviewStatus = AdminReviewApproved
		p.SubmissionStatus = SubmissionStatusApproved
		p.RejectionReason = ""
	case AdminActionReject:
		p.AdminReviewStatus = AdminReviewRejected
		p.SubmissionStatus = SubmissionStatusRejected
		if reason == "" {
			reason = DefaultRejectionReason
		}
		p.RejectionReason = reason
	case AdminActionReopen:
		p.AdminReviewStatus = AdminReviewPending
		p.SubmissionStatus = SubmissionStatusUnderReview
		p.RejectionReason = ""
	default:
		return false
	}
	return true
}
