package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/nluthra2001/schedsim/internal/scheduler"
)

var ErrNoInput = errors.New("unexpected end of input")

// Prompter asks for values on out and reads whitespace separated integers
// from in, so answers may be split across lines freely.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Prompter{scanner: scanner, out: out}
}

// Processes asks for the process count and then for every process's
// arrival time, burst time and priority.
func (p *Prompter) Processes() ([]scheduler.Spec, error) {
	_, _ = fmt.Fprint(p.out, "Enter the number of processes: ")
	n, err := p.readInt()
	if err != nil {
		return nil, fmt.Errorf("reading process count: %w", err)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: process count %d is negative", ErrInvalidRecord, n)
	}

	specs := make([]scheduler.Spec, n)
	for i := range specs {
		_, _ = fmt.Fprintf(p.out, "Enter Arrival Time, Burst Time, and Priority for Process %d:\n", i+1)
		fields := []*int{&specs[i].ArrivalTime, &specs[i].BurstTime, &specs[i].Priority}
		for _, field := range fields {
			if *field, err = p.readInt(); err != nil {
				return nil, fmt.Errorf("reading process %d: %w", i+1, err)
			}
		}
	}

	return specs, nil
}

// Choice prints the algorithm menu and reads the selection. The number is
// returned unchecked; see scheduler.AlgorithmFromChoice.
func (p *Prompter) Choice() (int, error) {
	_, _ = fmt.Fprintln(p.out, "\nSelect Scheduling Algorithm:")
	for i, alg := range scheduler.Algorithms() {
		_, _ = fmt.Fprintf(p.out, "%d. %s\n", i+1, alg.Title())
	}
	return p.readInt()
}

func (p *Prompter) Quantum() (int, error) {
	_, _ = fmt.Fprint(p.out, "Enter Time Quantum: ")
	return p.readInt()
}

func (p *Prompter) readInt() (int, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return 0, err
		}
		return 0, ErrNoInput
	}
	v, err := strconv.Atoi(p.scanner.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	return v, nil
}
