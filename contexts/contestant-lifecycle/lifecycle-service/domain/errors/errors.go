package errors

import "errors"

var (
	ErrInvalidRequest           = errors.New("invalid request")
	ErrUnknownMediaKind         = errors.New("unknown media kind")
	ErrUnknownSubmissionStatus  = errors.New("unknown submission status")
	ErrUnknownAdminAction       = errors.New("unknown admin review action")
	ErrUnknownChangeRequestType = errors.New("unknown change request type")
	ErrUnknownReviewAction      = errors.New("unknown review action")
	ErrChangeRequestNotFound    = errors.New("change request not found")
	ErrChangeRequestResolved    = errors.New("change request already resolved")
	ErrIdempotencyConflict      = errors.New("idempotency key conflict")
)
