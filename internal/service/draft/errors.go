package draft

import "errors"

var (
	ErrUnknownField     = errors.New("unknown draft field")
	ErrInvalidFlagValue = errors.New("invalid flag value")

	ErrInvalidStep  = errors.New("step is not valid")
	ErrNotFinalStep = errors.New("draft is not on the final step")

	ErrSubmitInProgress = errors.New("submission in progress")
	ErrAlreadySubmitted = errors.New("draft already submitted")
	ErrEmptyAcceptance  = errors.New("empty acceptance")
)
