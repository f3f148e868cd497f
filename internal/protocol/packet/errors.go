package packet

import (
	"errors"

	"github.com/danmuck/bitsctl/internal/protocol/bits"
)

var (
	ErrUnknownOperator = errors.New("packet: unknown operator")
	ErrArity           = errors.New("packet: comparison requires exactly two operands")
	ErrEmptyOperands   = errors.New("packet: operator has no operands")
	ErrOvershoot       = errors.New("packet: sub-packets overran declared bit length")
	ErrOverflow        = errors.New("packet: integer overflow")
	ErrTooLarge        = errors.New("packet: message too large")
	ErrTooDeep         = errors.New("packet: nesting too deep")
	ErrNilPacket       = errors.New("packet: nil packet")
)

// Cursor-level failures surface unchanged through the decoder.
var (
	ErrInvalidDigit = bits.ErrInvalidDigit
	ErrTruncated    = bits.ErrTruncated
)
