package bits

import "fmt"

// Cursor reads forward through a fixed bit sequence.
// It is owned by a single decode and never rewinds.
type Cursor struct {
	bits Bits
	pos  int
}

func NewCursor(b Bits) *Cursor {
	return &Cursor{bits: b}
}

// NewHexCursor builds a cursor over the expanded form of hex.
func NewHexCursor(hex string) (*Cursor, error) {
	b, err := FromHex(hex)
	if err != nil {
		return nil, err
	}
	return NewCursor(b), nil
}

// Take returns a copy of the next n bits and advances past them.
// On failure the position is unchanged.
func (c *Cursor) Take(n int) (Bits, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: take %d", ErrInvalidLength, n)
	}
	if n > c.Remaining() {
		return nil, fmt.Errorf("%w: need %d bits at offset %d, have %d", ErrTruncated, n, c.pos, c.Remaining())
	}
	out := make(Bits, n)
	copy(out, c.bits[c.pos:c.pos+n])
	c.pos += n
	return out, nil
}

// TakeUint reads an n-bit unsigned field.
func (c *Cursor) TakeUint(n int) (uint64, error) {
	b, err := c.Take(n)
	if err != nil {
		return 0, err
	}
	return b.Uint()
}

func (c *Cursor) Position() int {
	return c.pos
}

func (c *Cursor) Len() int {
	return len(c.bits)
}

func (c *Cursor) Remaining() int {
	return len(c.bits) - c.pos
}
