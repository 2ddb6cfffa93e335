// Package scheduler simulates FCFS, SJF, Priority and Round Robin CPU
// scheduling over a fixed set of processes on a single simulated clock.
package scheduler

import (
	"fmt"
	"strings"
)

// Algorithm names a scheduling discipline.
type Algorithm string

const (
	AlgorithmFCFS       Algorithm = "fcfs"
	AlgorithmSJF        Algorithm = "sjf"
	AlgorithmPriority   Algorithm = "priority"
	AlgorithmRoundRobin Algorithm = "rr"
)

// Algorithms lists the algorithms in menu order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmFCFS, AlgorithmSJF, AlgorithmPriority, AlgorithmRoundRobin}
}

// Title is the heading used in reports.
func (a Algorithm) Title() string {
	switch a {
	case AlgorithmFCFS:
		return "First Come First Serve (FCFS)"
	case AlgorithmSJF:
		return "Shortest Job First (SJF)"
	case AlgorithmPriority:
		return "Priority Scheduling"
	case AlgorithmRoundRobin:
		return "Round Robin"
	}
	return string(a)
}

// ParseAlgorithm accepts the short names plus a few common spellings.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fcfs", "first-come-first-serve":
		return AlgorithmFCFS, nil
	case "sjf", "shortest-job-first":
		return AlgorithmSJF, nil
	case "priority":
		return AlgorithmPriority, nil
	case "rr", "round-robin", "roundrobin":
		return AlgorithmRoundRobin, nil
	}
	return "", fmt.Errorf("%w: unknown algorithm %q", ErrInvalidChoice, name)
}

// AlgorithmFromChoice maps a 1-based menu selection to its algorithm.
func AlgorithmFromChoice(choice int) (Algorithm, error) {
	all := Algorithms()
	if choice < 1 || choice > len(all) {
		return "", fmt.Errorf("%w: %d", ErrInvalidChoice, choice)
	}
	return all[choice-1], nil
}

// Simulator runs one scheduling discipline. Implementations never modify
// the slice they are given.
type Simulator interface {
	Algorithm() Algorithm
	Simulate(processes []Process) (Result, error)
}

// Options carries the knobs only some simulators use.
type Options struct {
	Quantum       int
	IgnoreArrival bool
}

// New returns the simulator for alg. Round robin requires a positive
// opts.Quantum.
func New(alg Algorithm, opts Options) (Simulator, error) {
	switch alg {
	case AlgorithmFCFS:
		return FCFS{}, nil
	case AlgorithmSJF:
		return SJF{}, nil
	case AlgorithmPriority:
		return Priority{}, nil
	case AlgorithmRoundRobin:
		rr, err := NewRoundRobin(opts.Quantum)
		if err != nil {
			return nil, err
		}
		rr.IgnoreArrival = opts.IgnoreArrival
		return rr, nil
	default:
		return nil, fmt.Errorf("%w: unknown algorithm %q", ErrInvalidChoice, alg)
	}
}
