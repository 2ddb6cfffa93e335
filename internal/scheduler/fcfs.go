package scheduler

import "k8s.io/klog/v2"

// FCFS dispatches processes in arrival order, each running to completion.
type FCFS struct{}

func (FCFS) Algorithm() Algorithm { return AlgorithmFCFS }

func (FCFS) Simulate(processes []Process) (Result, error) {
	return dispatchInOrder(AlgorithmFCFS, SortByArrival(processes)), nil
}

// dispatchInOrder runs ordered back to back without preemption. The clock
// jumps forward over idle gaps when the next process has not arrived yet.
func dispatchInOrder(alg Algorithm, ordered []Process) Result {
	res := newResult(alg, ordered)

	var clock int
	for i, p := range ordered {
		if clock < p.ArrivalTime {
			res.Idle += p.ArrivalTime - clock
			clock = p.ArrivalTime
		}
		klog.V(4).InfoS("Dispatching process", "algorithm", alg, "pid", p.ID, "clock", clock)

		res.Metrics[i].WaitingTime = clock - p.ArrivalTime
		res.run(p.ID, clock, clock+p.BurstTime)
		clock += p.BurstTime
		res.Metrics[i].CompletionTime = clock
	}

	Finalize(res.Metrics)
	return res
}
