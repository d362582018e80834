package entities

import "testing"

func TestNewPublishingStateStartsDraftPending(t *testing.T) {
	state := NewPublishingState()
	if state.SubmissionStatus != SubmissionStatusDraft {
		t.Fatalf("expected draft, got %q", state.SubmissionStatus)
	}
	if state.AdminReviewStatus != AdminReviewPending {
		t.Fatalf("expected pending review, got %q", state.AdminReviewStatus)
	}
	if state.Published() || state.ProfileLocked() {
		t.Fatalf("fresh state must not be published or locked")
	}
	if state.Phase() != "draft_pending" {
		t.Fatalf("expected draft_pending phase, got %q", state.Phase())
	}
}

func TestApproveDerivesPublishedAndLocked(t *testing.T) {
	state := NewPublishingState()
	state.ApplySubmissionStatus(SubmissionStatusSubmitted)
	if !state.ApplyAdminAction(AdminActionApprove, "") {
		t.Fatalf("approve must be accepted")
	}
	if !state.Published() || !state.ProfileLocked() {
		t.Fatalf("approved state must be published and locked")
	}
	if state.SubmissionStatus != SubmissionStatusApproved {
		t.Fatalf("approve must pull submission status along, got %q", state.SubmissionStatus)
	}
	if state.Phase() != "approved_published" {
		t.Fatalf("expected approved_published, got %q", state.Phase())
	}
}

func TestRejectWithoutReasonStampsDefault(t *testing.T) {
	state := NewPublishingState()
	state.ApplyAdminAction(AdminActionReject, "")
	if state.RejectionReason != DefaultRejectionReason {
		t.Fatalf("expected default reason, got %q", state.RejectionReason)
	}
	if state.Published() {
		t.Fatalf("rejected state must not be published")
	}
	if state.Phase() != "rejected_with_reason" {
		t.Fatalf("expected rejected_with_reason, got %q", state.Phase())
	}
}

func TestReopenClearsDecisionAndReason(t *testing.T) {
	state := NewPublishingState()
	state.ApplyAdminAction(AdminActionReject, "blurry photos")
	state.ApplyAdminAction(AdminActionReopen, "")
	if state.AdminReviewStatus != AdminReviewPending {
		t.Fatalf("reopen must reset review to pending, got %q", state.AdminReviewStatus)
	}
	if state.SubmissionStatus != SubmissionStatusUnderReview {
		t.Fatalf("reopen must place submission under review, got %q", state.SubmissionStatus)
	}
	if state.RejectionReason != "" {
		t.Fatalf("reopen must clear the rejection reason, got %q", state.RejectionReason)
	}
}

func TestResubmissionInvalidatesPriorApproval(t *testing.T) {
	state := NewPublishingState()
	state.ApplyAdminAction(AdminActionApprove, "")
	state.ApplySubmissionStatus(SubmissionStatusSubmitted)
	if state.Published() {
		t.Fatalf("a fresh submission must invalidate the prior approval")
	}
	if state.AdminReviewStatus != AdminReviewPending {
		t.Fatalf("expected pending review after resubmission, got %q", state.AdminReviewStatus)
	}
}

func TestApplySubmissionStatusRejectsUnknownValue(t *testing.T) {
	state := NewPublishingState()
	if state.ApplySubmissionStatus(SubmissionStatus("archived")) {
		t.Fatalf("unknown submission status must be rejected")
	}
	if state.SubmissionStatus != SubmissionStatusDraft {
		t.Fatalf("rejected transition must not mutate state, got %q", state.SubmissionStatus)
	}
}

func TestApplyAdminActionRejectsUnknownValue(t *testing.T) {
	state := NewPublishingState()
	if state.ApplyAdminAction(AdminAction("escalate"), "") {
		t.Fatalf("unknown admin action must be rejected")
	}
}
