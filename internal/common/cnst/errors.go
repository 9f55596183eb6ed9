package cnst

import "errors"

var (
	// ErrNotFound is returned when no row matches the requested identifier
	ErrNotFound = errors.New("record not found")
	// ErrForbidden is returned when the caller lacks rights on the target row
	ErrForbidden = errors.New("access denied")
	// ErrDuplicateEmail is returned when an email address is already registered
	ErrDuplicateEmail = errors.New("email already in use")
	// ErrInvalidCallNumber is returned when a call update names a slot outside 1..3
	ErrInvalidCallNumber = errors.New("invalid call number")
)
