package value

import (
	"cmp"
	"fmt"
)

// Atom is a structural stand-in for the additive and multiplicative
// identities. Atoms are ordered: Zero < One.
type Atom uint8

// The two atoms.
const (
	Zero Atom = iota
	One
)

// Compare returns -1, 0 or +1 following the order Zero < One.
func (a Atom) Compare(b Atom) int {
	return cmp.Compare(a, b)
}

// Kind returns AtomKind.
func (a Atom) Kind() Kind { return AtomKind }

// IsZero reports whether a is Zero.
func (a Atom) IsZero() bool { return a == Zero }

// String returns "0" or "1".
func (a Atom) String() string {
	if a == Zero {
		return "0"
	}
	return "1"
}

func (a Atom) binary(op Op, rhs Value) (Value, error) {
	if b, ok := rhs.(Atom); ok {
		return atomBinary(a, op, b)
	}
	t, ok := rhs.(typed)
	if !ok {
		return nil, unsupported(a, op, rhs)
	}

	switch op {
	case OpAdd:
		if a == Zero {
			return rhs, nil
		}
	case OpSub:
		if a == Zero {
			return rhs.neg()
		}
	case OpMul, OpElemMul:
		if a == Zero {
			return t.zeroLike(), nil
		}
		return rhs, nil
	case OpDiv:
		// Only the structural zero is rejected; a numeric 0 follows IEEE.
		if rhs.IsZero() && rhs.Kind() == MatrixKind {
			return nil, fmt.Errorf("%w: %s / %s", ErrDivideByZero, a, t.describe())
		}
		if a == Zero {
			return t.zeroLike(), nil
		}
	}
	return t.lift(a).binary(op, rhs)
}

// atomBinary keeps arithmetic between two atoms inside {Zero, One}.
func atomBinary(a Atom, op Op, b Atom) (Value, error) {
	switch op {
	case OpAdd:
		if a == One && b == One {
			return nil, fmt.Errorf("%w: 1 + 1", ErrAtomRange)
		}
		return max(a, b), nil
	case OpSub:
		if b == Zero {
			return a, nil
		}
		if a == One {
			return Zero, nil
		}
		return nil, fmt.Errorf("%w: 0 - 1", ErrAtomRange)
	case OpMul, OpElemMul:
		return min(a, b), nil
	case OpDiv:
		if b == Zero {
			return nil, fmt.Errorf("%w: %s / 0", ErrDivideByZero, a)
		}
		return a, nil
	}
	return nil, unsupported(a, op, b)
}

func (a Atom) neg() (Value, error) {
	if a == One {
		return nil, fmt.Errorf("%w: -1", ErrAtomRange)
	}
	return Zero, nil
}

func (a Atom) transpose() Value { return a }

func (a Atom) exp() (Value, error) {
	if a == One {
		return nil, fmt.Errorf("%w: exp(1)", ErrAtomRange)
	}
	return One, nil
}

func (a Atom) sum() Value { return a }

func (a Atom) equal(other Value) bool {
	b, ok := other.(Atom)
	return ok && a == b
}
