package protocol

import (
	"errors"
	"fmt"
	"testing"

	"github.com/danmuck/bitsctl/internal/protocol/packet"
	"github.com/danmuck/bitsctl/internal/testutil/testlog"
)

func TestComputeBothMetricsOverOneMessage(t *testing.T) {
	testlog.Start(t)

	hex := "A0016C880162017C3686B18A3D4780"
	versions, err := Compute(hex, MetricVersions, packet.DefaultLimits())
	if err != nil {
		t.Fatalf("versions: %v", err)
	}
	if versions.Value != 31 || versions.Packets != 8 || versions.Depth != 4 || versions.Bits != 113 {
		t.Fatalf("unexpected versions result: %+v", versions)
	}
	value, err := Compute(hex, MetricEvaluate, packet.DefaultLimits())
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if value.Value != 54 {
		t.Fatalf("unexpected evaluate result: %+v", value)
	}
	if value.Tree == nil || packet.VersionSum(value.Tree) != 31 {
		t.Fatalf("evaluate result should carry the decoded tree")
	}
}

func TestComputeUnknownMetric(t *testing.T) {
	testlog.Start(t)

	_, err := Compute("D2FE28", Metric("median"), packet.DefaultLimits())
	if !errors.Is(err, ErrUnknownMetric) {
		t.Fatalf("expected ErrUnknownMetric, got %v", err)
	}
}

func TestComputeSurfacesDecodeErrors(t *testing.T) {
	testlog.Start(t)

	cases := []struct {
		hex  string
		want error
		code string
	}{
		{hex: "D2FE2", want: ErrTruncated, code: "truncated"},
		{hex: "D2FE2x", want: ErrInvalidDigit, code: "invalid_digit"},
		{hex: "02000", want: ErrEmptyOperands, code: "empty_operands"},
	}
	for _, tc := range cases {
		_, err := Compute(tc.hex, MetricEvaluate, packet.DefaultLimits())
		if !errors.Is(err, tc.want) {
			t.Fatalf("Compute(%q): expected %v, got %v", tc.hex, tc.want, err)
		}
		if got := ErrorCode(err); got != tc.code {
			t.Fatalf("ErrorCode(%v)=%q want %q", err, got, tc.code)
		}
	}
}

func TestParseMetric(t *testing.T) {
	cases := []struct {
		raw  string
		want Metric
	}{
		{raw: "versions", want: MetricVersions},
		{raw: " Version-Sum", want: MetricVersions},
		{raw: "vsum", want: MetricVersions},
		{raw: "evaluate", want: MetricEvaluate},
		{raw: "EVAL", want: MetricEvaluate},
		{raw: "value", want: MetricEvaluate},
	}
	for _, tc := range cases {
		got, err := ParseMetric(tc.raw)
		if err != nil || got != tc.want {
			t.Fatalf("ParseMetric(%q)=%q, %v", tc.raw, got, err)
		}
	}
	if _, err := ParseMetric("sum"); !errors.Is(err, ErrUnknownMetric) {
		t.Fatalf("expected ErrUnknownMetric, got %v", err)
	}
}

func TestErrorCodeClassifiesWrapped(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{err: nil, want: ""},
		{err: fmt.Errorf("outer: %w", ErrArity), want: "arity"},
		{err: fmt.Errorf("outer: %w", ErrOvershoot), want: "overshoot"},
		{err: fmt.Errorf("outer: %w", ErrTooDeep), want: "too_deep"},
		{err: fmt.Errorf("outer: %w", ErrTooLarge), want: "too_large"},
		{err: fmt.Errorf("outer: %w", ErrUnknownOperator), want: "unknown_operator"},
		{err: fmt.Errorf("outer: %w", ErrOverflow), want: "overflow"},
		{err: errors.New("something else"), want: "internal"},
	}
	for _, tc := range cases {
		if got := ErrorCode(tc.err); got != tc.want {
			t.Fatalf("ErrorCode(%v)=%q want %q", tc.err, got, tc.want)
		}
	}
}
