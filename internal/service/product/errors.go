package product

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidProductID      = errors.New("invalid product id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidCategory       = errors.New("invalid category")
	ErrInvalidWeight         = errors.New("invalid weight")
	ErrInvalidStatus         = errors.New("invalid status")

	ErrProductNotFound = errors.New("product not found")
	ErrConflict        = errors.New("product already exists")
)
