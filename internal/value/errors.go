package value

import "errors"

// Evaluation failure kinds.
var (
	// ErrUnsupportedCombination is returned when two operands have no
	// arithmetic rule between them (e.g. float32 scalar with float64 matrix).
	ErrUnsupportedCombination = errors.New("unsupported operand combination")

	// ErrDivideByZero is returned when a denominator is the structural zero.
	ErrDivideByZero = errors.New("division by structural zero")

	// ErrAtomRange is returned when atom arithmetic would leave {Zero, One}.
	ErrAtomRange = errors.New("atom arithmetic out of range")

	// ErrUnknownShape is returned when a structural zero must be materialised
	// but no shape is known for it.
	ErrUnknownShape = errors.New("structural zero has no known shape")
)
