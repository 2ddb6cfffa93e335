// Package input reads process descriptions from CSV files or from an
// interactive terminal session.
package input

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nluthra2001/schedsim/internal/scheduler"
)

var ErrInvalidRecord = errors.New("invalid process record")

// layout maps CSV columns to attributes. A negative index means the column
// is absent.
type layout struct {
	arrival, burst, priority int
	fields                   int
}

var (
	// arrival,burst[,priority]
	shortLayout = layout{arrival: 0, burst: 1, priority: 2}
	// id,burst,arrival,priority as written by the CSCE4600 tools. The id
	// column is ignored; processes are numbered 1..N in file order.
	idLayout = layout{arrival: 2, burst: 1, priority: 3, fields: 4}
)

// LoadCSV parses process rows. Without a header, rows of two or three
// fields are "arrival,burst[,priority]" and rows of four fields are
// "id,burst,arrival,priority". A first row that starts with a column name
// is a header and fixes the column order for the whole file; it must name
// arrival and burst and may name id and priority. Blank lines and lines
// starting with '#' are skipped.
func LoadCSV(r io.Reader) ([]scheduler.Spec, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV", err)
	}

	var header *layout
	if len(rows) > 0 && isHeader(rows[0]) {
		l, err := parseHeader(rows[0])
		if err != nil {
			return nil, fmt.Errorf("header: %w", err)
		}
		header = &l
		rows = rows[1:]
	}

	specs := make([]scheduler.Spec, 0, len(rows))
	for i, row := range rows {
		l := rowLayout(row, header)
		spec, err := parseRow(row, l)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		specs = append(specs, spec)
	}

	return specs, nil
}

func isHeader(row []string) bool {
	first := strings.TrimSpace(row[0])
	if first == "" {
		return false
	}
	_, err := strconv.Atoi(first)
	return err != nil && strings.IndexFunc(first, func(r rune) bool {
		return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
	}) == 0
}

func parseHeader(row []string) (layout, error) {
	l := layout{arrival: -1, burst: -1, priority: -1, fields: len(row)}
	for i, name := range row {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "id", "pid", "process_id":
		case "arrival", "arrival_time":
			l.arrival = i
		case "burst", "burst_time", "burst_duration":
			l.burst = i
		case "priority":
			l.priority = i
		default:
			return layout{}, fmt.Errorf("%w: unknown column %q", ErrInvalidRecord, name)
		}
	}
	if l.arrival < 0 || l.burst < 0 {
		return layout{}, fmt.Errorf("%w: header must name arrival and burst", ErrInvalidRecord)
	}
	return l, nil
}

func rowLayout(row []string, header *layout) layout {
	switch {
	case header != nil:
		return *header
	case len(row) == idLayout.fields:
		return idLayout
	default:
		l := shortLayout
		l.fields = len(row)
		if len(row) < 3 {
			l.priority = -1
		}
		return l
	}
}

func parseRow(row []string, l layout) (scheduler.Spec, error) {
	if l.fields < 2 || l.fields > 4 {
		return scheduler.Spec{}, fmt.Errorf("%w: want 2 to 4 fields, got %d", ErrInvalidRecord, l.fields)
	}
	if len(row) != l.fields {
		return scheduler.Spec{}, fmt.Errorf("%w: want %d fields, got %d", ErrInvalidRecord, l.fields, len(row))
	}

	values := make([]int, len(row))
	for i, field := range row {
		v, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return scheduler.Spec{}, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
		}
		values[i] = v
	}

	spec := scheduler.Spec{
		ArrivalTime: values[l.arrival],
		BurstTime:   values[l.burst],
	}
	if l.priority >= 0 {
		spec.Priority = values[l.priority]
	}
	return spec, nil
}
