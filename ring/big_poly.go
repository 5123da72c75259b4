package ring

import (
	"fmt"
	"io"
	"math/big"

	"github.com/Pro7ech/ntru/utils/bignum"
	"github.com/google/go-cmp/cmp"
)

// BigPoly is a dense polynomial of Z[X]/(X^N - 1) with arbitrary precision coefficients.
type BigPoly struct {
	Coeffs []big.Int
}

// NewBigPoly allocates a new [BigPoly] with N coefficients set to zero.
func NewBigPoly(N int) BigPoly {
	return BigPoly{Coeffs: make([]big.Int, N)}
}

// NewBigPolyFromIntPoly allocates a new [BigPoly] with the coefficients of p.
func NewBigPolyFromIntPoly(p IntPoly) (pBig BigPoly) {
	pBig = NewBigPoly(p.N())
	for i, c := range p.Coeffs {
		pBig.Coeffs[i].SetInt64(c)
	}
	return
}

// N returns the number of coefficients of the polynomial.
func (p BigPoly) N() int {
	return len(p.Coeffs)
}

// Add evaluates p = p + op.
func (p BigPoly) Add(op BigPoly) {
	checkDimension(p.N(), op.N())
	for i := range p.Coeffs {
		p.Coeffs[i].Add(&p.Coeffs[i], &op.Coeffs[i])
	}
}

// Sub evaluates p = p - op.
func (p BigPoly) Sub(op BigPoly) {
	checkDimension(p.N(), op.N())
	for i := range p.Coeffs {
		p.Coeffs[i].Sub(&p.Coeffs[i], &op.Coeffs[i])
	}
}

// Mod reduces each coefficient of the receiver modulo modulus,
// with the result in [0, modulus).
func (p BigPoly) Mod(modulus *big.Int) {

	if modulus.Sign() <= 0 {
		panic(fmt.Errorf("invalid modulus: %v <= 0", modulus))
	}

	for i := range p.Coeffs {
		p.Coeffs[i].Mod(&p.Coeffs[i], modulus)
	}
}

// Randomize sets the coefficients of the receiver to uniform values in [-bound, bound],
// reading the randomness from reader.
func (p BigPoly) Randomize(reader io.Reader, bound *big.Int) {
	width := new(big.Int).Lsh(bound, 1)
	width.Add(width, big.NewInt(1))
	for i := range p.Coeffs {
		p.Coeffs[i].Sub(bignum.RandInt(reader, width), bound)
	}
}

// Equal returns true if the receiver and other have the same coefficients.
func (p BigPoly) Equal(other *BigPoly) bool {
	return cmp.Equal(p.Coeffs, other.Coeffs, cmp.Comparer(func(a, b big.Int) bool {
		return a.Cmp(&b) == 0
	}))
}

// Clone returns a deep copy of the receiver.
func (p BigPoly) Clone() *BigPoly {
	pCpy := NewBigPoly(p.N())
	for i := range p.Coeffs {
		pCpy.Coeffs[i].Set(&p.Coeffs[i])
	}
	return &pCpy
}

// Log2InfNorm returns log2(max_i |p[i]|), computed with prec bits of precision.
// Returns -Inf for the zero polynomial.
func (p BigPoly) Log2InfNorm(prec uint) float64 {

	max := new(big.Int)
	abs := new(big.Int)
	for i := range p.Coeffs {
		if abs.Abs(&p.Coeffs[i]); abs.Cmp(max) > 0 {
			max.Set(abs)
		}
	}

	f, _ := bignum.Log2(max, prec).Float64()
	return f
}

// Stats returns [log2(std), mean] of the coefficients of the receiver.
func (p BigPoly) Stats(prec uint) [2]float64 {
	return bignum.Stats(p.Coeffs, prec)
}
