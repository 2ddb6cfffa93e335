package scheduler

import (
	"sync"

	"k8s.io/klog/v2"
)

// Run builds the simulator for alg and runs it once over processes.
func Run(alg Algorithm, opts Options, processes []Process) (Result, error) {
	sim, err := New(alg, opts)
	if err != nil {
		return Result{}, err
	}

	res, err := sim.Simulate(processes)
	if err != nil {
		return Result{}, err
	}
	klog.V(2).InfoS("Simulation finished", "algorithm", alg, "run", res.RunID,
		"processes", len(processes), "makespan", res.Makespan())
	return res, nil
}

// RunAll runs every algorithm concurrently, each over its own copy of
// processes. Results come back in menu order.
func RunAll(opts Options, processes []Process) ([]Result, error) {
	var (
		algorithms = Algorithms()
		results    = make([]Result, len(algorithms))
		errs       = make([]error, len(algorithms))
		wg         sync.WaitGroup
	)

	wg.Add(len(algorithms))
	for i, alg := range algorithms {
		go func(i int, alg Algorithm, own []Process) {
			defer wg.Done()
			results[i], errs[i] = Run(alg, opts, own)
		}(i, alg, clone(processes))
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
