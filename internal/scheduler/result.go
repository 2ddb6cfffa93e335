package scheduler

import "github.com/google/uuid"

type (
	// Metric is the outcome of one run for a single process.
	Metric struct {
		ProcessID      int `json:"process_id"`
		ArrivalTime    int `json:"arrival_time"`
		BurstTime      int `json:"burst_time"`
		Priority       int `json:"priority"`
		WaitingTime    int `json:"waiting_time"`
		TurnaroundTime int `json:"turnaround_time"`
		CompletionTime int `json:"completion_time"`
	}
	// TimeSlice is one uninterrupted stretch of CPU given to PID.
	TimeSlice struct {
		PID   int `json:"pid"`
		Start int `json:"start"`
		Stop  int `json:"stop"`
	}
	// Result is produced fresh by every call to Simulate. Metrics are laid
	// out in the order the algorithm arranged the collection: arrival order
	// for FCFS and SJF, priority order for Priority, input order for Round
	// Robin.
	Result struct {
		RunID     uuid.UUID   `json:"run_id"`
		Algorithm Algorithm   `json:"algorithm"`
		Quantum   int         `json:"quantum,omitempty"`
		Metrics   []Metric    `json:"metrics"`
		Gantt     []TimeSlice `json:"gantt"`
		Idle      int         `json:"idle"`
	}
)

func newResult(alg Algorithm, processes []Process) Result {
	metrics := make([]Metric, len(processes))
	for i, p := range processes {
		metrics[i] = Metric{
			ProcessID:   p.ID,
			ArrivalTime: p.ArrivalTime,
			BurstTime:   p.BurstTime,
			Priority:    p.Priority,
		}
	}

	return Result{
		RunID:     uuid.New(),
		Algorithm: alg,
		Metrics:   metrics,
		Gantt:     make([]TimeSlice, 0, len(processes)),
	}
}

// Finalize derives turnaround time from the waiting time the simulator
// already set.
func Finalize(metrics []Metric) {
	for i := range metrics {
		metrics[i].TurnaroundTime = metrics[i].WaitingTime + metrics[i].BurstTime
	}
}

func (r *Result) run(pid, start, stop int) {
	r.Gantt = append(r.Gantt, TimeSlice{PID: pid, Start: start, Stop: stop})
}

// Metric looks a process up by its identifier.
func (r Result) Metric(pid int) (Metric, bool) {
	for _, m := range r.Metrics {
		if m.ProcessID == pid {
			return m, true
		}
	}
	return Metric{}, false
}

// AverageWaiting is the mean waiting time, 0 for an empty run.
func (r Result) AverageWaiting() float64 {
	if len(r.Metrics) == 0 {
		return 0
	}
	var total int
	for _, m := range r.Metrics {
		total += m.WaitingTime
	}
	return float64(total) / float64(len(r.Metrics))
}

// AverageTurnaround is the mean turnaround time, 0 for an empty run.
func (r Result) AverageTurnaround() float64 {
	if len(r.Metrics) == 0 {
		return 0
	}
	var total int
	for _, m := range r.Metrics {
		total += m.TurnaroundTime
	}
	return float64(total) / float64(len(r.Metrics))
}

// Makespan is the clock value when the last process completed.
func (r Result) Makespan() int {
	if len(r.Gantt) == 0 {
		return 0
	}
	return r.Gantt[len(r.Gantt)-1].Stop
}

// Busy is the number of ticks the CPU spent running processes.
func (r Result) Busy() int {
	var busy int
	for _, s := range r.Gantt {
		busy += s.Stop - s.Start
	}
	return busy
}

// Throughput is completed processes per tick.
func (r Result) Throughput() float64 {
	makespan := r.Makespan()
	if makespan == 0 {
		return 0
	}
	return float64(len(r.Metrics)) / float64(makespan)
}
