package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/nluthra2001/schedsim/internal/scheduler"
)

// Summary is the JSON form of a run: the raw result plus its averages.
type Summary struct {
	scheduler.Result
	AverageWaiting    float64 `json:"average_waiting"`
	AverageTurnaround float64 `json:"average_turnaround"`
	Makespan          int     `json:"makespan"`
	Throughput        float64 `json:"throughput"`
}

func Summarize(res scheduler.Result) Summary {
	return Summary{
		Result:            res,
		AverageWaiting:    res.AverageWaiting(),
		AverageTurnaround: res.AverageTurnaround(),
		Makespan:          res.Makespan(),
		Throughput:        res.Throughput(),
	}
}

// WriteJSON writes the summaries of results as an indented JSON array.
func WriteJSON(w io.Writer, results ...scheduler.Result) error {
	summaries := make([]Summary, len(results))
	for i, res := range results {
		summaries[i] = Summarize(res)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summaries); err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	return nil
}
