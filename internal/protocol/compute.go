package protocol

import (
	"fmt"
	"strings"
	"time"

	"github.com/danmuck/bitsctl/internal/observability"
	"github.com/danmuck/bitsctl/internal/protocol/packet"
	"github.com/rs/zerolog/log"
)

// Metric selects which analysis Compute reports.
type Metric string

const (
	MetricVersions Metric = "versions"
	MetricEvaluate Metric = "evaluate"
)

// ParseMetric accepts the canonical names plus a few short aliases.
func ParseMetric(raw string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "versions", "version-sum", "version_sum", "vsum":
		return MetricVersions, nil
	case "evaluate", "eval", "value":
		return MetricEvaluate, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMetric, raw)
	}
}

// Result is the outcome of one decoded message.
type Result struct {
	Metric  Metric
	Value   int64
	Packets int
	Depth   int
	Bits    int
	Tree    *packet.Packet
}

// Compute decodes hex once and runs the analysis selected by m over the tree.
func Compute(hex string, m Metric, limits packet.Limits) (Result, error) {
	start := time.Now()
	res, err := compute(hex, m, limits)
	observability.RecordDecode(string(m), ErrorCode(err), time.Since(start), res.Packets)
	if err != nil {
		log.Warn().
			Str("metric", string(m)).
			Int("digits", len(hex)).
			Str("code", ErrorCode(err)).
			Err(err).
			Msg("bits decode failed")
		return Result{}, err
	}
	log.Debug().
		Str("metric", string(m)).
		Int("digits", len(hex)).
		Int("packets", res.Packets).
		Int("depth", res.Depth).
		Int64("value", res.Value).
		Msg("bits decoded")
	return res, nil
}

func compute(hex string, m Metric, limits packet.Limits) (Result, error) {
	if m != MetricVersions && m != MetricEvaluate {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownMetric, m)
	}
	tree, err := packet.DecodeHexWithLimits(hex, limits)
	if err != nil {
		return Result{}, err
	}
	res := Result{
		Metric:  m,
		Packets: packet.Count(tree),
		Depth:   packet.Depth(tree),
		Bits:    tree.BitLen,
		Tree:    tree,
	}
	switch m {
	case MetricVersions:
		res.Value = int64(packet.VersionSum(tree))
	case MetricEvaluate:
		v, err := packet.Evaluate(tree)
		if err != nil {
			return Result{Packets: res.Packets}, err
		}
		res.Value = v
	}
	return res, nil
}
