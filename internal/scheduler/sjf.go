package scheduler

import "k8s.io/klog/v2"

// SJF is non-preemptive shortest job first. At every decision point it
// picks the shortest burst among the processes that have arrived; equal
// bursts go to the earlier arrival, then the lower identifier.
type SJF struct{}

func (SJF) Algorithm() Algorithm { return AlgorithmSJF }

func (SJF) Simulate(processes []Process) (Result, error) {
	ordered := SortByArrival(processes)
	res := newResult(AlgorithmSJF, ordered)
	done := make([]bool, len(ordered))

	var clock int
	for completed := 0; completed < len(ordered); {
		next := -1
		for i, p := range ordered {
			if done[i] || p.ArrivalTime > clock {
				continue
			}
			if next == -1 || shorter(p, ordered[next]) {
				next = i
			}
		}

		if next == -1 {
			// Nothing has arrived yet, skip the idle gap.
			arrival := earliestArrival(ordered, func(i int) bool { return !done[i] })
			res.Idle += arrival - clock
			clock = arrival
			continue
		}

		p := ordered[next]
		klog.V(4).InfoS("Dispatching process", "algorithm", AlgorithmSJF, "pid", p.ID, "clock", clock)
		res.Metrics[next].WaitingTime = clock - p.ArrivalTime
		res.run(p.ID, clock, clock+p.BurstTime)
		clock += p.BurstTime
		res.Metrics[next].CompletionTime = clock
		done[next] = true
		completed++
	}

	Finalize(res.Metrics)
	return res, nil
}

func shorter(a, b Process) bool {
	if a.BurstTime != b.BurstTime {
		return a.BurstTime < b.BurstTime
	}
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.ID < b.ID
}

// earliestArrival returns the smallest arrival time among the processes
// selected by pending. At least one process must be pending.
func earliestArrival(processes []Process, pending func(i int) bool) int {
	earliest := -1
	for i, p := range processes {
		if pending(i) && (earliest == -1 || p.ArrivalTime < earliest) {
			earliest = p.ArrivalTime
		}
	}
	return earliest
}
