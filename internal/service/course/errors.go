package course

import "errors"

var (
	ErrInvalidCourseID = errors.New("invalid course id")
	ErrMissingCarrier  = errors.New("missing carrier")

	ErrCourseNotFound = errors.New("course not found")
	ErrCourseTaken    = errors.New("course already taken")
)
