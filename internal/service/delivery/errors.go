package delivery

import "errors"

var (
	ErrInvalidDeliveryID = errors.New("invalid delivery id")
	ErrInvalidStatus     = errors.New("invalid delivery status")

	ErrDeliveryNotFound  = errors.New("delivery not found")
	ErrDeliveryExists    = errors.New("delivery already exists")
	ErrInvalidTransition = errors.New("delivery status transition not allowed")
)
