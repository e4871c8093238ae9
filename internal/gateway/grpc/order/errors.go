package order

import "errors"

var ErrMalformedResponse = errors.New("malformed order service response")
