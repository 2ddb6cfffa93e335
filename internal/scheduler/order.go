package scheduler

import "sort"

// ByArrival orders processes by arrival time. Used with a stable sort, ties
// keep their input order.
func ByArrival(a, b Process) bool {
	return a.ArrivalTime < b.ArrivalTime
}

// ByPriority orders processes by priority (lower first), then arrival time,
// then identifier.
func ByPriority(a, b Process) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.ID < b.ID
}

// SortByArrival returns a copy of processes in arrival order.
func SortByArrival(processes []Process) []Process {
	return sortedBy(processes, ByArrival)
}

// SortByPriority returns a copy of processes in priority order.
func SortByPriority(processes []Process) []Process {
	return sortedBy(processes, ByPriority)
}

func sortedBy(processes []Process, less func(a, b Process) bool) []Process {
	ordered := clone(processes)
	sort.SliceStable(ordered, func(i, j int) bool {
		return less(ordered[i], ordered[j])
	})
	return ordered
}
