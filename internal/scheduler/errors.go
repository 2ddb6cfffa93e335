package scheduler

import "errors"

var (
	ErrInvalidChoice       = errors.New("invalid choice")
	ErrInvalidQuantum      = errors.New("invalid time quantum")
	ErrMalformedAttributes = errors.New("malformed process attributes")
)
