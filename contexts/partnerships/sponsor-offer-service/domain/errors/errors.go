package domainerrors

import "errors"

var (
	ErrOfferNotFound      = errors.New("sponsor offer not found")
	ErrUnknownOfferAction = errors.New("unknown sponsor offer action")
)
