package scheduler

import (
	"fmt"
	"math"
)

// MaxTime is the latest tick a schedule may reach. Collections whose last
// arrival plus total burst would pass it are rejected, which keeps every
// clock value and metric inside 32 bits.
const MaxTime = math.MaxInt32

type (
	// Spec is what a caller knows about a process before it is scheduled.
	Spec struct {
		ArrivalTime int `json:"arrival_time"`
		BurstTime   int `json:"burst_time"`
		Priority    int `json:"priority"`
	}
	// Process is the read-only input of every simulator. Lower Priority
	// values are dispatched first by the Priority simulator.
	Process struct {
		ID          int `json:"id"`
		ArrivalTime int `json:"arrival_time"`
		BurstTime   int `json:"burst_time"`
		Priority    int `json:"priority"`
	}
)

// NewProcesses builds the process collection for a run, numbering the
// processes 1..N in input order.
func NewProcesses(specs []Spec) ([]Process, error) {
	processes := make([]Process, len(specs))
	var lastArrival, totalBurst int
	for i, s := range specs {
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("process %d: %w", i+1, err)
		}
		lastArrival = max(lastArrival, s.ArrivalTime)
		totalBurst += s.BurstTime
		if totalBurst > MaxTime-lastArrival {
			return nil, fmt.Errorf("process %d: %w: schedule would run past tick %d",
				i+1, ErrMalformedAttributes, MaxTime)
		}
		processes[i] = Process{
			ID:          i + 1,
			ArrivalTime: s.ArrivalTime,
			BurstTime:   s.BurstTime,
			Priority:    s.Priority,
		}
	}

	return processes, nil
}

func (s Spec) validate() error {
	switch {
	case s.ArrivalTime < 0:
		return fmt.Errorf("%w: arrival time %d is negative", ErrMalformedAttributes, s.ArrivalTime)
	case s.ArrivalTime > MaxTime:
		return fmt.Errorf("%w: arrival time %d is past tick %d", ErrMalformedAttributes, s.ArrivalTime, MaxTime)
	case s.BurstTime <= 0:
		return fmt.Errorf("%w: burst time %d must be positive", ErrMalformedAttributes, s.BurstTime)
	case s.BurstTime > MaxTime:
		return fmt.Errorf("%w: burst time %d is past tick %d", ErrMalformedAttributes, s.BurstTime, MaxTime)
	case s.Priority < 0:
		return fmt.Errorf("%w: priority %d is negative", ErrMalformedAttributes, s.Priority)
	}
	return nil
}

// Dispatches counts the gantt slices a simulator will record for processes.
// Only round robin splits a burst, into ceil(burst/quantum) slices.
func Dispatches(alg Algorithm, opts Options, processes []Process) int {
	if alg != AlgorithmRoundRobin || opts.Quantum <= 0 {
		return len(processes)
	}
	var n int
	for _, p := range processes {
		n += p.BurstTime / opts.Quantum
		if p.BurstTime%opts.Quantum != 0 {
			n++
		}
	}
	return n
}

func clone(processes []Process) []Process {
	c := make([]Process, len(processes))
	copy(c, processes)
	return c
}
