package bits

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrInvalidDigit  = errors.New("bits: invalid hex digit")
	ErrTruncated     = errors.New("bits: truncated data")
	ErrInvalidLength = errors.New("bits: invalid length")
	ErrEmptySequence = errors.New("bits: empty sequence")
	ErrOverflow      = errors.New("bits: value overflows 64 bits")
)

// Bits is an ordered run of single-bit values, each element 0 or 1.
type Bits []byte

// FromHex expands every hex digit into its 4-bit big-endian form.
func FromHex(hex string) (Bits, error) {
	out := make(Bits, 0, 4*len(hex))
	for i := 0; i < len(hex); i++ {
		nibble, ok := hexNibble(hex[i])
		if !ok {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidDigit, hex[i], i)
		}
		out = append(out,
			(nibble>>3)&1,
			(nibble>>2)&1,
			(nibble>>1)&1,
			nibble&1,
		)
	}
	return out, nil
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	default:
		return 0, false
	}
}

// Uint reads b as an unsigned MSB-first number.
// Leading zero bits are ignored when checking the 64-bit bound.
func (b Bits) Uint() (uint64, error) {
	if len(b) == 0 {
		return 0, ErrEmptySequence
	}
	var v uint64
	for _, bit := range b {
		if v&(1<<63) != 0 {
			return 0, fmt.Errorf("%w: %d-bit sequence", ErrOverflow, len(b))
		}
		v = v<<1 | uint64(bit&1)
	}
	return v, nil
}

// Int is Uint bounded to the signed 64-bit range.
func (b Bits) Int() (int64, error) {
	v, err := b.Uint()
	if err != nil {
		return 0, err
	}
	if v > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %d exceeds int64", ErrOverflow, v)
	}
	return int64(v), nil
}

func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, bit := range b {
		sb.WriteByte('0' + bit&1)
	}
	return sb.String()
}
