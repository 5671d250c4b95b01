package domain

import "errors"

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrAlreadyEnrolled  = errors.New("already enrolled")
	ErrPaymentRequired  = errors.New("payment required")
	ErrCourseNotFound   = errors.New("course not found")
)
