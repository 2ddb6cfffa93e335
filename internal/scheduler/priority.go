package scheduler

// Priority reorders by priority and then dispatches exactly like FCFS.
type Priority struct{}

func (Priority) Algorithm() Algorithm { return AlgorithmPriority }

func (Priority) Simulate(processes []Process) (Result, error) {
	return dispatchInOrder(AlgorithmPriority, SortByPriority(processes)), nil
}
