package scheduler

import (
	"fmt"

	"k8s.io/klog/v2"
)

// RoundRobin sweeps the processes in input order, giving each at most
// Quantum ticks per sweep until all of them finish.
//
// A process is not dispatched before its arrival time; a sweep that finds
// nothing runnable moves the clock to the next arrival. With IgnoreArrival
// set every process is treated as ready at tick 0, which can yield negative
// waiting times for late arrivals.
type RoundRobin struct {
	Quantum       int
	IgnoreArrival bool
}

// NewRoundRobin fails with ErrInvalidQuantum unless quantum is positive.
func NewRoundRobin(quantum int) (RoundRobin, error) {
	if quantum <= 0 {
		return RoundRobin{}, fmt.Errorf("%w: %d must be positive", ErrInvalidQuantum, quantum)
	}
	return RoundRobin{Quantum: quantum}, nil
}

func (RoundRobin) Algorithm() Algorithm { return AlgorithmRoundRobin }

func (rr RoundRobin) Simulate(processes []Process) (Result, error) {
	if rr.Quantum <= 0 {
		return Result{}, fmt.Errorf("%w: %d must be positive", ErrInvalidQuantum, rr.Quantum)
	}

	res := newResult(AlgorithmRoundRobin, processes)
	res.Quantum = rr.Quantum

	remaining := make([]int, len(processes))
	var pending int
	for i, p := range processes {
		remaining[i] = p.BurstTime
		if remaining[i] > 0 {
			pending++
		}
	}

	var clock int
	for pending > 0 {
		dispatched := false
		for i, p := range processes {
			if remaining[i] <= 0 {
				continue
			}
			if !rr.IgnoreArrival && p.ArrivalTime > clock {
				continue
			}
			dispatched = true

			slice := min(remaining[i], rr.Quantum)
			klog.V(4).InfoS("Dispatching process", "algorithm", AlgorithmRoundRobin,
				"pid", p.ID, "clock", clock, "slice", slice)
			res.run(p.ID, clock, clock+slice)
			clock += slice
			remaining[i] -= slice

			if remaining[i] == 0 {
				res.Metrics[i].WaitingTime = clock - p.ArrivalTime - p.BurstTime
				res.Metrics[i].CompletionTime = clock
				pending--
			}
		}

		if !dispatched {
			arrival := earliestArrival(processes, func(i int) bool { return remaining[i] > 0 })
			res.Idle += arrival - clock
			clock = arrival
		}
	}

	Finalize(res.Metrics)
	return res, nil
}
