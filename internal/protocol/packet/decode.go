package packet

import (
	"fmt"

	"github.com/danmuck/bitsctl/internal/protocol/bits"
)

// Limits constrains decode memory and recursion. Zero fields disable the check.
type Limits struct {
	MaxHexDigits int
	MaxDepth     int
}

func DefaultLimits() Limits {
	return Limits{
		MaxHexDigits: 64 * 1024,
		MaxDepth:     512,
	}
}

// DecodeHex decodes the single outermost packet of a hex message using
// DefaultLimits. Bits after that packet are padding and are ignored.
func DecodeHex(hex string) (*Packet, error) {
	return DecodeHexWithLimits(hex, DefaultLimits())
}

func DecodeHexWithLimits(hex string, limits Limits) (*Packet, error) {
	if limits.MaxHexDigits > 0 && len(hex) > limits.MaxHexDigits {
		return nil, fmt.Errorf("%w: %d hex digits, limit %d", ErrTooLarge, len(hex), limits.MaxHexDigits)
	}
	c, err := bits.NewHexCursor(hex)
	if err != nil {
		return nil, err
	}
	return DecodeWithLimits(c, limits)
}

// Decode reads one packet, and everything nested in it, from c.
func Decode(c *bits.Cursor) (*Packet, error) {
	return DecodeWithLimits(c, Limits{})
}

func DecodeWithLimits(c *bits.Cursor, limits Limits) (*Packet, error) {
	d := decoder{c: c, limits: limits}
	return d.packet(1)
}

type decoder struct {
	c      *bits.Cursor
	limits Limits
}

func (d *decoder) packet(depth int) (*Packet, error) {
	start := d.c.Position()
	if d.limits.MaxDepth > 0 && depth > d.limits.MaxDepth {
		return nil, fmt.Errorf("%w: depth %d at bit %d", ErrTooDeep, depth, start)
	}

	version, err := d.c.TakeUint(versionBits)
	if err != nil {
		return nil, fmt.Errorf("packet version at bit %d: %w", start, err)
	}
	typeID, err := d.c.TakeUint(typeBits)
	if err != nil {
		return nil, fmt.Errorf("packet type at bit %d: %w", start, err)
	}

	p := &Packet{Version: uint8(version), TypeID: uint8(typeID), Offset: start}
	if p.IsLiteral() {
		p.Value, err = d.literal(start)
	} else {
		err = d.operator(p, depth)
	}
	if err != nil {
		return nil, err
	}
	p.BitLen = d.c.Position() - start
	return p, nil
}

func (d *decoder) literal(start int) (int64, error) {
	var acc bits.Bits
	for {
		group, err := d.c.Take(groupBits)
		if err != nil {
			return 0, fmt.Errorf("literal at bit %d: %w", start, err)
		}
		acc = append(acc, group[1:]...)
		if group[0] == 0 {
			break
		}
	}
	v, err := acc.Int()
	if err != nil {
		return 0, fmt.Errorf("%w: literal at bit %d: %w", ErrOverflow, start, err)
	}
	return v, nil
}

func (d *decoder) operator(p *Packet, depth int) error {
	kind, err := OperatorKind(p.TypeID)
	if err != nil {
		return fmt.Errorf("operator at bit %d: %w", p.Offset, err)
	}
	p.Kind = kind

	lengthType, err := d.c.TakeUint(lengthTypeBits)
	if err != nil {
		return fmt.Errorf("operator length type at bit %d: %w", p.Offset, err)
	}
	p.LengthType = LengthType(lengthType)

	switch p.LengthType {
	case LengthBits:
		total, err := d.c.TakeUint(totalLengthBits)
		if err != nil {
			return fmt.Errorf("operator bit length at bit %d: %w", p.Offset, err)
		}
		target := d.c.Position() + int(total)
		for d.c.Position() < target {
			child, err := d.packet(depth + 1)
			if err != nil {
				return err
			}
			p.Children = append(p.Children, child)
		}
		if d.c.Position() != target {
			return fmt.Errorf("%w: operator at bit %d ended at bit %d, declared end %d",
				ErrOvershoot, p.Offset, d.c.Position(), target)
		}
	case LengthCount:
		count, err := d.c.TakeUint(childCountBits)
		if err != nil {
			return fmt.Errorf("operator child count at bit %d: %w", p.Offset, err)
		}
		p.Children = make([]*Packet, 0, count)
		for i := uint64(0); i < count; i++ {
			child, err := d.packet(depth + 1)
			if err != nil {
				return err
			}
			p.Children = append(p.Children, child)
		}
	}

	if kind.IsComparison() && len(p.Children) != 2 {
		return fmt.Errorf("%w: %s at bit %d has %d", ErrArity, kind, p.Offset, len(p.Children))
	}
	return nil
}
