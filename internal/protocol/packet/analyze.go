package packet

import (
	"fmt"
	"math"
)

// VersionSum adds the version field of p and every packet nested in it.
func VersionSum(p *Packet) uint64 {
	var sum uint64
	Walk(p, func(n *Packet, _ int) bool {
		sum += uint64(n.Version)
		return true
	})
	return sum
}

// Count returns the number of packets in the tree rooted at p.
func Count(p *Packet) int {
	n := 0
	Walk(p, func(*Packet, int) bool {
		n++
		return true
	})
	return n
}

// Depth returns the number of levels in the tree; a lone literal is 1.
func Depth(p *Packet) int {
	deepest := 0
	Walk(p, func(_ *Packet, depth int) bool {
		deepest = max(deepest, depth+1)
		return true
	})
	return deepest
}

// Evaluate computes the expression value of p.
func Evaluate(p *Packet) (int64, error) {
	if p == nil {
		return 0, ErrNilPacket
	}
	if p.IsLiteral() {
		return p.Value, nil
	}
	if _, err := OperatorKind(uint8(p.Kind)); err != nil {
		return 0, fmt.Errorf("operator at bit %d: %w", p.Offset, err)
	}

	operands := make([]int64, len(p.Children))
	for i, child := range p.Children {
		v, err := Evaluate(child)
		if err != nil {
			return 0, err
		}
		operands[i] = v
	}

	if p.Kind.IsComparison() {
		if len(operands) != 2 {
			return 0, fmt.Errorf("%w: %s at bit %d has %d", ErrArity, p.Kind, p.Offset, len(operands))
		}
		return compare(p.Kind, operands[0], operands[1]), nil
	}
	if len(operands) == 0 {
		return 0, fmt.Errorf("%w: %s at bit %d", ErrEmptyOperands, p.Kind, p.Offset)
	}

	acc := operands[0]
	for _, v := range operands[1:] {
		var ok bool
		switch p.Kind {
		case KindSum:
			acc, ok = addInt64(acc, v)
		case KindProduct:
			acc, ok = mulInt64(acc, v)
		case KindMin:
			acc, ok = min(acc, v), true
		case KindMax:
			acc, ok = max(acc, v), true
		}
		if !ok {
			return 0, fmt.Errorf("%w: %s at bit %d", ErrOverflow, p.Kind, p.Offset)
		}
	}
	return acc, nil
}

func compare(k Kind, a, b int64) int64 {
	var hit bool
	switch k {
	case KindGreaterThan:
		hit = a > b
	case KindLessThan:
		hit = a < b
	case KindEqual:
		hit = a == b
	}
	if hit {
		return 1
	}
	return 0
}

func addInt64(a, b int64) (int64, bool) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}
	return a + b, true
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	r := a * b
	if r/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	return r, true
}
