package batch

import (
	"errors"
	"strings"
	"testing"

	"github.com/danmuck/bitsctl/internal/input"
	"github.com/danmuck/bitsctl/internal/protocol"
	"github.com/danmuck/bitsctl/internal/protocol/packet"
	"github.com/danmuck/bitsctl/internal/testutil/testlog"
	"github.com/hashicorp/go-multierror"
)

func TestRunAllSucceed(t *testing.T) {
	testlog.Start(t)

	src := "# evaluate samples\nC200B40A82\n04005AC33890\n880086C3E88112\n"
	lines, err := input.ReadLines(strings.NewReader(src), input.DefaultOptions())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	report, err := Run(lines, protocol.MetricEvaluate, packet.DefaultLimits())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	got := report.Values()
	want := []int64{3, 54, 7}
	if len(got) != len(want) {
		t.Fatalf("values=%v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("values=%v want %v", got, want)
		}
	}
	if report.Entries[0].Line.Number != 2 {
		t.Fatalf("line numbers not carried: %+v", report.Entries[0].Line)
	}
}

func TestRunAggregatesFailures(t *testing.T) {
	testlog.Start(t)

	lines := input.FromArgs([]string{"D2FE28", "D2FE2", "ZZ", "8A004A801A8002F478"})
	report, err := Run(lines, protocol.MetricVersions, packet.DefaultLimits())
	if err == nil {
		t.Fatalf("expected aggregated error")
	}
	var merr *multierror.Error
	if !errors.As(err, &merr) || len(merr.Errors) != 2 {
		t.Fatalf("expected 2 aggregated errors, got %v", err)
	}
	if !errors.Is(merr.Errors[0], protocol.ErrTruncated) || !strings.Contains(merr.Errors[0].Error(), "line 2") {
		t.Fatalf("unexpected first error: %v", merr.Errors[0])
	}
	if !errors.Is(merr.Errors[1], protocol.ErrInvalidDigit) {
		t.Fatalf("unexpected second error: %v", merr.Errors[1])
	}
	if report.Failed != 2 || len(report.Entries) != 4 {
		t.Fatalf("unexpected report: failed=%d entries=%d", report.Failed, len(report.Entries))
	}
	if vals := report.Values(); len(vals) != 2 || vals[0] != 6 || vals[1] != 16 {
		t.Fatalf("values=%v", vals)
	}
}
