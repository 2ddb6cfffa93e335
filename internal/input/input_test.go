package input

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nluthra2001/schedsim/internal/scheduler"
)

func TestLoadCSV(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    []scheduler.Spec
		wantErr error
	}{
		{
			name: "with and without priority",
			in:   "# arrival,burst,priority\n0,5,3\n1, 3\n\n2,8,1\n",
			want: []scheduler.Spec{
				{ArrivalTime: 0, BurstTime: 5, Priority: 3},
				{ArrivalTime: 1, BurstTime: 3},
				{ArrivalTime: 2, BurstTime: 8, Priority: 1},
			},
		},
		{
			name: "empty file",
			in:   "",
			want: []scheduler.Spec{},
		},
		{
			name:    "too few fields",
			in:      "0\n",
			wantErr: ErrInvalidRecord,
		},
		{
			name:    "too many fields",
			in:      "0,1,2,3,4\n",
			wantErr: ErrInvalidRecord,
		},
		{
			name: "four fields are id,burst,arrival,priority",
			in:   "1,5,0,2\n2,3,1,1\n",
			want: []scheduler.Spec{
				{ArrivalTime: 0, BurstTime: 5, Priority: 2},
				{ArrivalTime: 1, BurstTime: 3, Priority: 1},
			},
		},
		{
			name: "header selects id,burst,arrival order",
			in:   "id,burst,arrival\n1,5,0\n2,3,1\n",
			want: []scheduler.Spec{
				{ArrivalTime: 0, BurstTime: 5},
				{ArrivalTime: 1, BurstTime: 3},
			},
		},
		{
			name: "header with long names",
			in:   "Priority, Burst_Time, Arrival_Time\n4,5,0\n",
			want: []scheduler.Spec{{ArrivalTime: 0, BurstTime: 5, Priority: 4}},
		},
		{
			name:    "header without burst",
			in:      "id,arrival\n1,0\n",
			wantErr: ErrInvalidRecord,
		},
		{
			name:    "header with unknown column",
			in:      "arrival,burst,deadline\n0,5,9\n",
			wantErr: ErrInvalidRecord,
		},
		{
			name:    "row shorter than header",
			in:      "id,burst,arrival,priority\n1,5,0\n",
			wantErr: ErrInvalidRecord,
		},
		{
			name:    "not a number",
			in:      "0,five\n",
			wantErr: ErrInvalidRecord,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := LoadCSV(strings.NewReader(tt.in))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrompterProcesses(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("2\n0 5 3\n1\n3\n1\n"), &out)

	specs, err := p.Processes()
	require.NoError(t, err)
	assert.Equal(t, []scheduler.Spec{
		{ArrivalTime: 0, BurstTime: 5, Priority: 3},
		{ArrivalTime: 1, BurstTime: 3, Priority: 1},
	}, specs)
	assert.Equal(t, "Enter the number of processes: "+
		"Enter Arrival Time, Burst Time, and Priority for Process 1:\n"+
		"Enter Arrival Time, Burst Time, and Priority for Process 2:\n", out.String())
}

func TestPrompterChoiceAndQuantum(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("4 3"), &out)

	choice, err := p.Choice()
	require.NoError(t, err)
	assert.Equal(t, 4, choice)
	assert.Contains(t, out.String(), "1. First Come First Serve (FCFS)\n")
	assert.Contains(t, out.String(), "4. Round Robin\n")

	quantum, err := p.Quantum()
	require.NoError(t, err)
	assert.Equal(t, 3, quantum)
	assert.True(t, strings.HasSuffix(out.String(), "Enter Time Quantum: "))
}

func TestPrompterErrors(t *testing.T) {
	t.Parallel()

	_, err := NewPrompter(strings.NewReader("2\n0 5"), &bytes.Buffer{}).Processes()
	assert.ErrorIs(t, err, ErrNoInput)

	_, err = NewPrompter(strings.NewReader("x"), &bytes.Buffer{}).Processes()
	assert.ErrorIs(t, err, ErrInvalidRecord)

	_, err = NewPrompter(strings.NewReader("-1"), &bytes.Buffer{}).Processes()
	assert.ErrorIs(t, err, ErrInvalidRecord)

	_, err = NewPrompter(strings.NewReader(""), &bytes.Buffer{}).Choice()
	assert.ErrorIs(t, err, ErrNoInput)
}
