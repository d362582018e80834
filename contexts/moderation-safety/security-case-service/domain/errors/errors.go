package domainerrors

import "errors"

var (
	ErrCaseNotFound      = errors.New("security case not found")
	ErrUnknownCaseAction = errors.New("unknown security case action")
)
