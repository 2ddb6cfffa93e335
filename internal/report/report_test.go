package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nluthra2001/schedsim/internal/scheduler"
)

func fcfsResult(t *testing.T) scheduler.Result {
	t.Helper()
	processes, err := scheduler.NewProcesses([]scheduler.Spec{
		{ArrivalTime: 0, BurstTime: 5, Priority: 2},
		{ArrivalTime: 1, BurstTime: 3, Priority: 1},
		{ArrivalTime: 2, BurstTime: 8, Priority: 3},
	})
	require.NoError(t, err)
	res, err := scheduler.FCFS{}.Simulate(processes)
	require.NoError(t, err)
	return res
}

func TestWritePlain(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	WritePlain(&buf, fcfsResult(t))

	want := "" +
		"Process   Arrival Time   Burst Time     Waiting Time   Turnaround Time\n" +
		"1         0              5              0              5              \n" +
		"2         1              3              4              7              \n" +
		"3         2              8              6              14             \n"
	assert.Equal(t, want, buf.String())
}

func TestWriteSchedule(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	WriteSchedule(&buf, fcfsResult(t))
	out := buf.String()

	assert.Contains(t, out, "First Come First Serve (FCFS)")
	assert.Contains(t, out, "Gantt schedule\n|   1   |   2   |   3   |\n0\t5\t8\t16\n\n")
	assert.Contains(t, out, "Schedule table")
	assert.Contains(t, out, "3.33")
	assert.Contains(t, out, "8.67")
	assert.Contains(t, out, "0.19")
}

func TestWriteScheduleRoundRobinTitle(t *testing.T) {
	t.Parallel()

	processes, err := scheduler.NewProcesses([]scheduler.Spec{{ArrivalTime: 0, BurstTime: 5}})
	require.NoError(t, err)
	res, err := scheduler.RoundRobin{Quantum: 2}.Simulate(processes)
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteSchedule(&buf, res)
	assert.Contains(t, buf.String(), "Round Robin (quantum 2)")
	assert.Contains(t, buf.String(), "0\t2\t4\t5\n")
}

func TestWriteBanner(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	writeBanner(&buf, "Round Robin")
	assert.Equal(t, strings.Repeat("-", 22)+"\n      Round Robin\n"+strings.Repeat("-", 22)+"\n", buf.String())

	buf.Reset()
	writeGantt(&buf, nil)
	assert.Equal(t, "Gantt schedule\n|\n\n\n", buf.String())
}

func TestWriteComparison(t *testing.T) {
	t.Parallel()

	res := fcfsResult(t)
	var buf bytes.Buffer
	WriteComparison(&buf, []scheduler.Result{res})
	assert.Contains(t, buf.String(), "Algorithm comparison")
	assert.Contains(t, buf.String(), "First Come First Serve (FCFS)")
	assert.Contains(t, buf.String(), "16")
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	res := fcfsResult(t)
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, res))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "fcfs", decoded[0]["algorithm"])
	assert.Equal(t, res.RunID.String(), decoded[0]["run_id"])
	assert.EqualValues(t, 16, decoded[0]["makespan"])
	assert.InDelta(t, 10.0/3, decoded[0]["average_waiting"], 1e-9)
	assert.Len(t, decoded[0]["metrics"], 3)
}

func TestChartSeries(t *testing.T) {
	t.Parallel()

	res := fcfsResult(t)
	labels, waiting, turnaround := chartSeries([]scheduler.Result{res})
	assert.Equal(t, []string{"P1", "P2", "P3"}, labels)
	assert.Equal(t, []float64{0, 4, 6}, []float64(waiting))
	assert.Equal(t, []float64{5, 7, 14}, []float64(turnaround))

	labels, waiting, _ = chartSeries([]scheduler.Result{res, res})
	assert.Equal(t, []string{"fcfs", "fcfs"}, labels)
	assert.InDelta(t, 10.0/3, waiting[1], 1e-9)
}

func TestSaveChart(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "chart.png")
	require.NoError(t, SaveChart(path, fcfsResult(t)))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	assert.ErrorIs(t, SaveChart(path), ErrNothingToPlot)
}
