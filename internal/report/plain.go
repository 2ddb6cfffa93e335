package report

import (
	"fmt"
	"io"

	"github.com/nluthra2001/schedsim/internal/scheduler"
)

const plainRow = "%-10v%-15v%-15v%-15v%-15v\n"

// WritePlain prints the fixed-width, left-justified result table.
func WritePlain(w io.Writer, res scheduler.Result) {
	_, _ = fmt.Fprintf(w, plainRow, "Process", "Arrival Time", "Burst Time", "Waiting Time", "Turnaround Time")
	for _, m := range res.Metrics {
		_, _ = fmt.Fprintf(w, plainRow, m.ProcessID, m.ArrivalTime, m.BurstTime, m.WaitingTime, m.TurnaroundTime)
	}
}
