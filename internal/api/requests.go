package api

import (
	"errors"

	"github.com/nluthra2001/schedsim/internal/report"
	"github.com/nluthra2001/schedsim/internal/scheduler"
)

// ErrRequestTooLarge is reported when a request exceeds the server's
// process or dispatch limits.
var ErrRequestTooLarge = errors.New("request too large")

// ScheduleRequest overrides the server's round robin settings when Quantum
// or IgnoreArrival are present.
type ScheduleRequest struct {
	Processes     []scheduler.Spec `json:"processes"`
	Quantum       *int             `json:"quantum,omitempty"`
	IgnoreArrival *bool            `json:"ignore_arrival,omitempty"`
}

type ScheduleAllResponse struct {
	Results []report.Summary `json:"results"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func (r ScheduleRequest) options(defaults scheduler.Options) scheduler.Options {
	opts := defaults
	if r.Quantum != nil {
		opts.Quantum = *r.Quantum
	}
	if r.IgnoreArrival != nil {
		opts.IgnoreArrival = *r.IgnoreArrival
	}
	return opts
}
