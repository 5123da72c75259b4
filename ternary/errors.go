package ternary

import (
	"errors"
	"fmt"
)

// ErrMalformedEncoding is returned when a decoded [SparseTernaryPoly] holds an
// index outside of [0, N) or an index present more than once.
var ErrMalformedEncoding = errors.New("malformed sparse ternary polynomial encoding")

// ErrSamplingExhausted is returned when a randomized construction exceeds
// its iteration ceiling before placing all requested non-zero coefficients.
var ErrSamplingExhausted = errors.New("sampling exhausted")

// InvalidCoefficientError is returned when a dense polynomial with a
// coefficient outside of {-1, 0, 1} is converted to a [SparseTernaryPoly].
type InvalidCoefficientError struct {
	Value    int64
	Position int
}

func (e *InvalidCoefficientError) Error() string {
	return fmt.Sprintf("invalid coefficient: %d at position %d is not in {-1, 0, 1}", e.Value, e.Position)
}

// DimensionMismatchError is returned when the operand of a multiplication
// does not have the dimension of the [SparseTernaryPoly].
type DimensionMismatchError struct {
	Want int
	Have int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("dimension mismatch: want %d but have %d", e.Want, e.Have)
}
