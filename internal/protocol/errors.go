package protocol

import (
	"errors"

	"github.com/danmuck/bitsctl/internal/protocol/bits"
	"github.com/danmuck/bitsctl/internal/protocol/packet"
)

var ErrUnknownMetric = errors.New("protocol: unknown metric")

// Decode and evaluate failures, re-exported for callers above the codec.
var (
	ErrInvalidDigit    = bits.ErrInvalidDigit
	ErrTruncated       = bits.ErrTruncated
	ErrUnknownOperator = packet.ErrUnknownOperator
	ErrArity           = packet.ErrArity
	ErrEmptyOperands   = packet.ErrEmptyOperands
	ErrOvershoot       = packet.ErrOvershoot
	ErrOverflow        = packet.ErrOverflow
	ErrTooLarge        = packet.ErrTooLarge
	ErrTooDeep         = packet.ErrTooDeep
)

// ErrorCode names the failure class of err for logs, metrics and API
// responses. Unclassified errors map to "internal".
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidDigit):
		return "invalid_digit"
	case errors.Is(err, ErrTruncated):
		return "truncated"
	case errors.Is(err, ErrUnknownOperator):
		return "unknown_operator"
	case errors.Is(err, ErrArity):
		return "arity"
	case errors.Is(err, ErrEmptyOperands):
		return "empty_operands"
	case errors.Is(err, ErrOvershoot):
		return "overshoot"
	case errors.Is(err, ErrOverflow), errors.Is(err, bits.ErrOverflow):
		return "overflow"
	case errors.Is(err, ErrTooLarge):
		return "too_large"
	case errors.Is(err, ErrTooDeep):
		return "too_deep"
	case errors.Is(err, ErrUnknownMetric):
		return "unknown_metric"
	default:
		return "internal"
	}
}
