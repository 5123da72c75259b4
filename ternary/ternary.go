// Package ternary implements sparse ternary polynomials of Z[X]/(X^N - 1),
// the polynomials with coefficients in {-1, 0, 1} used as private keys and
// blinding values of the NTRU cryptosystem.
//
// A [SparseTernaryPoly] stores the positions of its +1 and -1 coefficients
// instead of its N coefficients, which makes the cyclic convolution with a
// dense polynomial cost O(N * weight) instead of O(N^2).
package ternary

import (
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/Pro7ech/ntru/ring"
	"github.com/Pro7ech/ntru/utils/structs"
	"github.com/zeebo/blake3"
)

var (
	_ structs.Equatable[SparseTernaryPoly] = (*SparseTernaryPoly)(nil)
	_ structs.Cloner[SparseTernaryPoly]    = (*SparseTernaryPoly)(nil)
	_ structs.BinarySizer                  = (*SparseTernaryPoly)(nil)
)

// SparseTernaryPoly is a polynomial of Z[X]/(X^N - 1) with coefficients in
// {-1, 0, 1}, represented by the positions of its +1 and -1 coefficients.
//
// The two position lists are disjoint and their values are in [0, N). Except
// for [NewSparseTernaryPoly] and the decoding methods, which store the lists
// they are given, every constructor stores both lists in ascending order.
//
// A SparseTernaryPoly is read-only once constructed (with the exception of
// [SparseTernaryPoly.Clear]) and can be shared between goroutines.
type SparseTernaryPoly struct {
	n       int
	ones    []int
	negOnes []int
}

// NewSparseTernaryPoly creates a new [SparseTernaryPoly] of dimension N with
// +1 at the positions ones and -1 at the positions negOnes. The slices are
// not copied.
//
// The inputs are trusted: no range or disjointness check is done.
// See [SparseTernaryPoly.Validate] for untrusted inputs.
func NewSparseTernaryPoly(N int, ones, negOnes []int) *SparseTernaryPoly {
	return &SparseTernaryPoly{n: N, ones: ones, negOnes: negOnes}
}

// NewSparseTernaryPolyFromCoeffs creates a new [SparseTernaryPoly] of
// dimension len(coeffs) from a dense coefficient slice.
// Returns an [*InvalidCoefficientError] if a coefficient is not in {-1, 0, 1}.
func NewSparseTernaryPolyFromCoeffs(coeffs []int64) (p *SparseTernaryPoly, err error) {

	N := len(coeffs)

	if N == 0 {
		return nil, fmt.Errorf("invalid dimension: N=0")
	}

	ones := make([]int, N)
	negOnes := make([]int, N)

	var onesIdx, negOnesIdx int

	for i, c := range coeffs {
		switch c {
		case 1:
			ones[onesIdx] = i
			onesIdx++
		case -1:
			negOnes[negOnesIdx] = i
			negOnesIdx++
		case 0:
		default:
			return nil, &InvalidCoefficientError{Value: c, Position: i}
		}
	}

	return &SparseTernaryPoly{
		n:       N,
		ones:    slices.Clip(ones[:onesIdx]),
		negOnes: slices.Clip(negOnes[:negOnesIdx]),
	}, nil
}

// NewSparseTernaryPolyFromIntPoly creates a new [SparseTernaryPoly] from a dense polynomial.
// Returns an [*InvalidCoefficientError] if a coefficient is not in {-1, 0, 1}.
func NewSparseTernaryPolyFromIntPoly(p ring.IntPoly) (*SparseTernaryPoly, error) {
	return NewSparseTernaryPolyFromCoeffs(p.Coeffs)
}

// N returns the dimension of the polynomial.
func (p *SparseTernaryPoly) N() int {
	return p.n
}

// Weight returns the number of non-zero coefficients of the polynomial.
func (p *SparseTernaryPoly) Weight() int {
	return len(p.ones) + len(p.negOnes)
}

// Ones returns a copy of the positions of the +1 coefficients.
func (p *SparseTernaryPoly) Ones() []int {
	return slices.Clone(p.ones)
}

// NegOnes returns a copy of the positions of the -1 coefficients.
func (p *SparseTernaryPoly) NegOnes() []int {
	return slices.Clone(p.negOnes)
}

// ToIntPoly returns the dense representation of the polynomial.
// The positions must be in [0, N), which holds for every constructor except
// [NewSparseTernaryPoly] and the unchecked decoders (see [SparseTernaryPoly.Validate]).
// The method will panic otherwise.
func (p *SparseTernaryPoly) ToIntPoly() (pInt ring.IntPoly) {
	pInt = ring.NewIntPoly(p.n)
	for _, list := range []struct {
		positions []int
		value     int64
	}{{p.ones, 1}, {p.negOnes, -1}} {
		for _, i := range list.positions {
			if i < 0 || i >= p.n {
				panic(fmt.Errorf("invalid position: %d not in [0, %d)", i, p.n))
			}
			pInt.Coeffs[i] = list.value
		}
	}
	return
}

// Clear overwrites all stored positions with 0, leaving the number of
// positions unchanged. It scrubs the secret content of the receiver, which
// no longer represents a ternary polynomial afterwards.
func (p *SparseTernaryPoly) Clear() {
	clear(p.ones)
	clear(p.negOnes)
}

// Clone returns a deep copy of the receiver.
func (p *SparseTernaryPoly) Clone() *SparseTernaryPoly {
	return &SparseTernaryPoly{
		n:       p.n,
		ones:    slices.Clone(p.ones),
		negOnes: slices.Clone(p.negOnes),
	}
}

// Equal returns true if the receiver and other have the same dimension and
// the same position lists, in the same order.
func (p *SparseTernaryPoly) Equal(other *SparseTernaryPoly) bool {
	return p.n == other.n && slices.Equal(p.ones, other.ones) && slices.Equal(p.negOnes, other.negOnes)
}

// Hash returns a digest of the dimension and of the ordered position lists.
// Two polynomials for which [SparseTernaryPoly.Equal] is true have the same Hash.
func (p *SparseTernaryPoly) Hash() uint64 {

	h := blake3.New()

	buf := make([]byte, 0, 8*(3+len(p.ones)+len(p.negOnes)))

	buf = binary.BigEndian.AppendUint64(buf, uint64(p.n))

	for _, list := range [][]int{p.ones, p.negOnes} {
		buf = binary.BigEndian.AppendUint64(buf, uint64(len(list)))
		for _, i := range list {
			buf = binary.BigEndian.AppendUint64(buf, uint64(i))
		}
	}

	// blake3.Hasher.Write never returns an error
	h.Write(buf)

	return binary.BigEndian.Uint64(h.Sum(nil))
}

// Validate checks that the positions of the receiver are in [0, N) and that
// no position appears twice, within or across the two lists.
// Returns an error wrapping [ErrMalformedEncoding] otherwise.
func (p *SparseTernaryPoly) Validate() (err error) {

	if p.n <= 0 {
		return fmt.Errorf("%w: invalid dimension N=%d", ErrMalformedEncoding, p.n)
	}

	occupied := make([]bool, p.n)

	for _, list := range [][]int{p.ones, p.negOnes} {
		for _, i := range list {

			if i < 0 || i >= p.n {
				return fmt.Errorf("%w: position %d not in [0, %d)", ErrMalformedEncoding, i, p.n)
			}

			if occupied[i] {
				return fmt.Errorf("%w: duplicate position %d", ErrMalformedEncoding, i)
			}

			occupied[i] = true
		}
	}

	return
}

// String returns a human readable representation of the receiver.
func (p *SparseTernaryPoly) String() string {
	return fmt.Sprintf("SparseTernaryPoly{N: %d, Ones: %v, NegOnes: %v}", p.n, p.ones, p.negOnes)
}
