// Package ring implements dense polynomials of Z[X]/(X^N - 1), with machine
// integer and arbitrary precision coefficients.
package ring

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Pro7ech/ntru/utils"
	"github.com/Pro7ech/ntru/utils/buffer"
	"github.com/Pro7ech/ntru/utils/sampling"
	"github.com/Pro7ech/ntru/utils/structs"
)

var (
	_ structs.Equatable[IntPoly] = (*IntPoly)(nil)
	_ structs.Cloner[IntPoly]    = (*IntPoly)(nil)
	_ structs.BinarySizer        = (*IntPoly)(nil)
	_ structs.Equatable[BigPoly] = (*BigPoly)(nil)
	_ structs.Cloner[BigPoly]    = (*BigPoly)(nil)
)

// IntPoly is a dense polynomial of Z[X]/(X^N - 1) with int64 coefficients.
// Arithmetic follows the native int64 wraparound semantic.
type IntPoly struct {
	Coeffs structs.Vector[int64]
}

// NewIntPoly allocates a new [IntPoly] with N coefficients set to zero.
func NewIntPoly(N int) IntPoly {
	return IntPoly{Coeffs: make([]int64, N)}
}

// NewIntPolyFromCoeffs allocates a new [IntPoly] with a copy of the given coefficients.
func NewIntPolyFromCoeffs(coeffs []int64) IntPoly {
	return IntPoly{Coeffs: structs.Vector[int64](coeffs).Clone()}
}

// N returns the number of coefficients of the polynomial.
func (p IntPoly) N() int {
	return len(p.Coeffs)
}

// At returns the i-th coefficient of the polynomial.
// The method will panic if i is not in [0, N).
func (p IntPoly) At(i int) int64 {
	if i < 0 || i >= p.N() {
		panic(fmt.Errorf("invalid coefficient index: %d not in [0, %d)", i, p.N()))
	}
	return p.Coeffs[i]
}

// Zero sets all coefficients of the receiver to zero.
func (p IntPoly) Zero() {
	clear(p.Coeffs)
}

// Add evaluates p = p + op.
func (p IntPoly) Add(op IntPoly) {
	checkDimension(p.N(), op.N())
	for i := range p.Coeffs {
		p.Coeffs[i] += op.Coeffs[i]
	}
}

// Sub evaluates p = p - op.
func (p IntPoly) Sub(op IntPoly) {
	checkDimension(p.N(), op.N())
	for i := range p.Coeffs {
		p.Coeffs[i] -= op.Coeffs[i]
	}
}

// MulByMonomial evaluates opOut = p * X^k in Z[X]/(X^N - 1), that is, a
// right rotation of the coefficients by k positions. k can be negative.
// opOut can be the receiver.
func (p IntPoly) MulByMonomial(k int, opOut IntPoly) {
	checkDimension(p.N(), opOut.N())
	utils.RotateSliceAllocFree([]int64(p.Coeffs), -k, []int64(opOut.Coeffs))
}

// Mod reduces each coefficient of the receiver modulo modulus,
// with the result in [0, modulus).
func (p IntPoly) Mod(modulus int64) {

	if modulus <= 0 {
		panic(fmt.Errorf("invalid modulus: %d <= 0", modulus))
	}

	for i, c := range p.Coeffs {
		if c %= modulus; c < 0 {
			c += modulus
		}
		p.Coeffs[i] = c
	}
}

// ModCenter reduces each coefficient of the receiver modulo modulus,
// with the result in [-floor(modulus/2), modulus-floor(modulus/2)).
func (p IntPoly) ModCenter(modulus int64) {
	p.Mod(modulus)
	half := modulus >> 1
	for i, c := range p.Coeffs {
		if c >= modulus-half {
			p.Coeffs[i] = c - modulus
		}
	}
}

// Randomize sets the coefficients of the receiver to uniform values in [-bound, bound].
func (p IntPoly) Randomize(source *sampling.Source, bound int64) {
	for i := range p.Coeffs {
		p.Coeffs[i] = int64(source.IntN(int(2*bound+1))) - bound
	}
}

// Equal returns true if the receiver and other have the same coefficients.
func (p IntPoly) Equal(other *IntPoly) bool {
	return p.Coeffs.Equal(other.Coeffs)
}

// Clone returns a deep copy of the receiver.
func (p IntPoly) Clone() *IntPoly {
	return &IntPoly{Coeffs: p.Coeffs.Clone()}
}

// Copy copies the coefficients of other on the receiver.
// This method does nothing if the underlying arrays are the same.
func (p IntPoly) Copy(other IntPoly) {
	checkDimension(p.N(), other.N())
	if !utils.Alias1D([]int64(p.Coeffs), []int64(other.Coeffs)) {
		p.Coeffs.Copy(other.Coeffs)
	}
}

// BinarySize returns the serialized size of the object in bytes.
func (p IntPoly) BinarySize() int {
	return p.Coeffs.BinarySize()
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
func (p IntPoly) WriteTo(w io.Writer) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:
		return p.Coeffs.WriteTo(w)
	default:
		return p.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Writer. It implements the
// io.ReaderFrom interface.
func (p *IntPoly) ReadFrom(r io.Reader) (n int64, err error) {
	switch r := r.(type) {
	case buffer.Reader:
		if p == nil {
			return 0, fmt.Errorf("receiver is nil")
		}
		return p.Coeffs.ReadFrom(r)
	default:
		return p.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (p IntPoly) MarshalBinary() (data []byte, err error) {
	buf := buffer.NewBufferSize(p.BinarySize())
	_, err = p.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (p *IntPoly) UnmarshalBinary(data []byte) (err error) {
	_, err = p.ReadFrom(buffer.NewBuffer(data))
	return
}

func checkDimension(want, have int) {
	if want != have {
		panic(fmt.Errorf("invalid polynomial dimension: want %d but have %d", want, have))
	}
}
