package domain

import "errors"

// Expected user-facing conditions. Each maps to a fixed explanatory message
// at the transport layer; none is an operational failure.
var (
	ErrPermissionDenied = errors.New("caller lacks permission to set the countdown")
	ErrInvalidFormat    = errors.New("invalid date/time format")
	ErrNotConfigured    = errors.New("no countdown configured")
)
