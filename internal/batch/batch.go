package batch

import (
	"fmt"

	"github.com/danmuck/bitsctl/internal/input"
	"github.com/danmuck/bitsctl/internal/protocol"
	"github.com/danmuck/bitsctl/internal/protocol/packet"
	"github.com/hashicorp/go-multierror"
)

// Entry is the outcome for one input line. Err is nil on success.
type Entry struct {
	Line   input.Line
	Result protocol.Result
	Err    error
}

type Report struct {
	Entries []Entry
	Failed  int
}

// Values returns the results of the successful entries, in input order.
func (r Report) Values() []int64 {
	out := make([]int64, 0, len(r.Entries)-r.Failed)
	for _, e := range r.Entries {
		if e.Err == nil {
			out = append(out, e.Result.Value)
		}
	}
	return out
}

// Run decodes every line independently. The returned error aggregates all
// failed lines; the report still holds every entry.
func Run(lines []input.Line, m protocol.Metric, limits packet.Limits) (Report, error) {
	report := Report{Entries: make([]Entry, 0, len(lines))}
	var merr *multierror.Error
	for _, line := range lines {
		res, err := protocol.Compute(line.Text, m, limits)
		if err != nil {
			err = fmt.Errorf("line %d: %w", line.Number, err)
			merr = multierror.Append(merr, err)
			report.Failed++
		}
		report.Entries = append(report.Entries, Entry{Line: line, Result: res, Err: err})
	}
	return report, merr.ErrorOrNil()
}
