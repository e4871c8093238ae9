package intake

import "errors"

var (
	ErrDraftNotFound = errors.New("draft not found")
	ErrMissingOwner  = errors.New("draft owner is required")
)
