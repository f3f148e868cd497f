package packet

import (
	"fmt"
	"strconv"
)

// Header and payload field widths, in bits.
const (
	versionBits     = 3
	typeBits        = 3
	groupBits       = 5
	lengthTypeBits  = 1
	totalLengthBits = 15
	childCountBits  = 11
)

// TypeLiteral is the only type tag that carries a value instead of children.
const TypeLiteral uint8 = 4

// Kind is the reduction an operator packet applies to its children.
type Kind uint8

const (
	KindSum         Kind = 0
	KindProduct     Kind = 1
	KindMin         Kind = 2
	KindMax         Kind = 3
	KindGreaterThan Kind = 5
	KindLessThan    Kind = 6
	KindEqual       Kind = 7
)

// OperatorKind maps a header type tag to its operator.
func OperatorKind(tag uint8) (Kind, error) {
	switch k := Kind(tag); k {
	case KindSum, KindProduct, KindMin, KindMax, KindGreaterThan, KindLessThan, KindEqual:
		return k, nil
	default:
		return 0, fmt.Errorf("%w: type %d", ErrUnknownOperator, tag)
	}
}

// IsComparison reports whether k compares exactly two operands.
func (k Kind) IsComparison() bool {
	return k == KindGreaterThan || k == KindLessThan || k == KindEqual
}

func (k Kind) String() string {
	switch k {
	case KindSum:
		return "sum"
	case KindProduct:
		return "product"
	case KindMin:
		return "min"
	case KindMax:
		return "max"
	case KindGreaterThan:
		return "gt"
	case KindLessThan:
		return "lt"
	case KindEqual:
		return "eq"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// LengthType selects how an operator frames its children.
type LengthType uint8

const (
	LengthBits  LengthType = 0 // 15-bit total length of the children
	LengthCount LengthType = 1 // 11-bit number of children
)

// Packet is one decoded node. Literal packets carry Value; operator
// packets carry Kind, LengthType and Children. Offset and BitLen record the
// span the packet occupied in the message.
type Packet struct {
	Version    uint8
	TypeID     uint8
	Value      int64
	Kind       Kind
	LengthType LengthType
	Children   []*Packet
	Offset     int
	BitLen     int
}

// NewLiteral builds a literal node outside of a decode.
func NewLiteral(version uint8, value int64) *Packet {
	return &Packet{Version: version, TypeID: TypeLiteral, Value: value}
}

// NewOperator builds an operator node outside of a decode.
func NewOperator(version uint8, kind Kind, children ...*Packet) *Packet {
	return &Packet{Version: version, TypeID: uint8(kind), Kind: kind, LengthType: LengthCount, Children: children}
}

func (p *Packet) IsLiteral() bool {
	return p.TypeID == TypeLiteral
}

// KindName is "literal" for literals and the operator name otherwise.
func (p *Packet) KindName() string {
	if p.IsLiteral() {
		return "literal"
	}
	return p.Kind.String()
}

// Walk visits p and its descendants in pre-order.
// Returning false from fn skips the children of that node.
func Walk(p *Packet, fn func(p *Packet, depth int) bool) {
	walk(p, 0, fn)
}

func walk(p *Packet, depth int, fn func(*Packet, int) bool) {
	if p == nil || !fn(p, depth) {
		return
	}
	for _, child := range p.Children {
		walk(child, depth+1, fn)
	}
}
