// Package report renders simulation results as text tables, gantt charts,
// JSON and PNG bar charts.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/nluthra2001/schedsim/internal/scheduler"
)

// WriteSchedule outputs a schedule of processes in a GANTT chart and a
// table of timing given:
// • an output writer
// • the result of one simulation run
func WriteSchedule(w io.Writer, res scheduler.Result) {
	writeBanner(w, title(res))
	writeGantt(w, res.Gantt)
	writeMetrics(w, res)
}

func title(res scheduler.Result) string {
	if res.Algorithm == scheduler.AlgorithmRoundRobin {
		return fmt.Sprintf("%s (quantum %d)", res.Algorithm.Title(), res.Quantum)
	}
	return res.Algorithm.Title()
}

// writeBanner centres heading between two rules twice its width.
func writeBanner(w io.Writer, heading string) {
	rule := strings.Repeat("-", len(heading)*2)
	_, _ = fmt.Fprintf(w, "%s\n%s %s\n%s\n", rule, strings.Repeat(" ", len(heading)/2), heading, rule)
}

// writeGantt draws one eight-column cell per slice followed by the start
// tick of every slice and the stop tick of the last one.
func writeGantt(w io.Writer, gantt []scheduler.TimeSlice) {
	var cells, ticks strings.Builder
	cells.WriteString("|")
	for i, slice := range gantt {
		pid := strconv.Itoa(slice.PID)
		pad := strings.Repeat(" ", (8-len(pid))/2)
		cells.WriteString(pad + pid + pad + "|")

		ticks.WriteString(strconv.Itoa(slice.Start) + "\t")
		if i == len(gantt)-1 {
			ticks.WriteString(strconv.Itoa(slice.Stop))
		}
	}
	_, _ = fmt.Fprintf(w, "Gantt schedule\n%s\n%s\n\n", cells.String(), ticks.String())
}

func writeMetrics(w io.Writer, res scheduler.Result) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Exit"})
	for _, m := range res.Metrics {
		table.Append(ints(m.ProcessID, m.Priority, m.BurstTime, m.ArrivalTime,
			m.WaitingTime, m.TurnaroundTime, m.CompletionTime))
	}
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", res.AverageWaiting()),
		fmt.Sprintf("Average\n%.2f", res.AverageTurnaround()),
		fmt.Sprintf("Throughput\n%.2f/t", res.Throughput())})
	table.Render()
}

func ints(values ...int) []string {
	row := make([]string, len(values))
	for i, v := range values {
		row[i] = strconv.Itoa(v)
	}
	return row
}

// WriteComparison renders one summary row per result.
func WriteComparison(w io.Writer, results []scheduler.Result) {
	writeBanner(w, "Algorithm comparison")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg wait", "Avg turnaround", "Makespan", "Idle", "Throughput"})
	for _, res := range results {
		table.Append([]string{
			title(res),
			fmt.Sprintf("%.2f", res.AverageWaiting()),
			fmt.Sprintf("%.2f", res.AverageTurnaround()),
			fmt.Sprint(res.Makespan()),
			fmt.Sprint(res.Idle),
			fmt.Sprintf("%.2f/t", res.Throughput()),
		})
	}
	table.Render()
}
