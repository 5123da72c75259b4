package ternary

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Pro7ech/ntru/ring"
	"github.com/Pro7ech/ntru/utils/buffer"
)

// Parameters represents a set of checked parameters for sparse ternary
// polynomials. Instances of Parameters can only be created by
// [NewParametersFromLiteral] or by deserialization.
type Parameters struct {
	n                   int
	maxSamplingAttempts int
}

// NewParametersFromLiteral instantiates a set of [Parameters] from a
// [ParametersLiteral] specification.
//
// Returns an error if N is not in [1, MaxEncodableDimension] or if
// MaxSamplingAttempts is not in [0, MaxSamplingAttemptsLimit].
func NewParametersFromLiteral(pl ParametersLiteral) (p Parameters, err error) {

	if pl.N <= 0 || pl.N > MaxEncodableDimension {
		return p, fmt.Errorf("invalid ParametersLiteral: N=%d not in [1, %d]", pl.N, MaxEncodableDimension)
	}

	if pl.MaxSamplingAttempts < 0 || pl.MaxSamplingAttempts > MaxSamplingAttemptsLimit {
		return p, fmt.Errorf("invalid ParametersLiteral: MaxSamplingAttempts=%d not in [0, %d]", pl.MaxSamplingAttempts, MaxSamplingAttemptsLimit)
	}

	p.n = pl.N

	if p.maxSamplingAttempts = pl.MaxSamplingAttempts; p.maxSamplingAttempts == 0 {
		p.maxSamplingAttempts = DefaultMaxSamplingAttempts
	}

	return
}

// ParametersLiteral returns the [ParametersLiteral] of the target [Parameters].
func (p Parameters) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{
		N:                   p.n,
		MaxSamplingAttempts: p.maxSamplingAttempts,
	}
}

// N returns the dimension of the polynomials.
func (p Parameters) N() int {
	return p.n
}

// MaxSamplingAttempts returns the number of draws allowed per requested
// non-zero position by the randomized constructors.
func (p Parameters) MaxSamplingAttempts() int {
	return p.maxSamplingAttempts
}

// NewRandomPoly samples a new [SparseTernaryPoly] of dimension p.N(), see
// [NewRandomSparseTernaryPoly].
func (p Parameters) NewRandomPoly(numOnes, numNegOnes int, source RandomSource) (*SparseTernaryPoly, error) {
	return newRandomSparseTernaryPoly(p.n, numOnes, numNegOnes, source, p.maxSamplingAttempts)
}

// NewBlindingPoly creates a new [SparseTernaryPoly] of dimension p.N() from
// an index generator, see [NewBlindingSparseTernaryPoly].
func (p Parameters) NewBlindingPoly(igf IndexGenerator, d int) (*SparseTernaryPoly, error) {
	return newTrinomialSparseTernaryPoly(igf, p.n, d, d, p.maxSamplingAttempts)
}

// NewTrinomialPoly creates a new [SparseTernaryPoly] of dimension p.N() from
// an index generator, see [NewTrinomialSparseTernaryPoly].
func (p Parameters) NewTrinomialPoly(igf IndexGenerator, numOnes, numNegOnes int) (*SparseTernaryPoly, error) {
	return newTrinomialSparseTernaryPoly(igf, p.n, numOnes, numNegOnes, p.maxSamplingAttempts)
}

// NewPolyFromCoeffs creates a new [SparseTernaryPoly] from a dense coefficient
// slice, see [NewSparseTernaryPolyFromCoeffs].
// Returns a [*DimensionMismatchError] if len(coeffs) != p.N().
func (p Parameters) NewPolyFromCoeffs(coeffs []int64) (*SparseTernaryPoly, error) {

	if len(coeffs) != p.n {
		return nil, &DimensionMismatchError{Want: p.n, Have: len(coeffs)}
	}

	return NewSparseTernaryPolyFromCoeffs(coeffs)
}

// NewPolyFromIntPoly is identical to [Parameters.NewPolyFromCoeffs] but takes a dense polynomial.
func (p Parameters) NewPolyFromIntPoly(pInt ring.IntPoly) (*SparseTernaryPoly, error) {
	return p.NewPolyFromCoeffs(pInt.Coeffs)
}

// Decode decodes a [SparseTernaryPoly] of dimension p.N(), see [DecodeSparseTernaryPoly].
func (p Parameters) Decode(data []byte) (*SparseTernaryPoly, error) {
	return DecodeSparseTernaryPoly(data, p.n)
}

// DecodeChecked decodes and validates a [SparseTernaryPoly] of dimension
// p.N(), see [DecodeSparseTernaryPolyChecked].
func (p Parameters) DecodeChecked(data []byte) (*SparseTernaryPoly, error) {
	return DecodeSparseTernaryPolyChecked(data, p.n)
}

// Equal compares two sets of parameters for equality.
func (p Parameters) Equal(other *Parameters) bool {
	return p.n == other.n && p.maxSamplingAttempts == other.maxSamplingAttempts
}

// BinarySize returns the serialized size of the object in bytes.
func (p Parameters) BinarySize() int {
	return p.ParametersLiteral().BinarySize()
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
func (p Parameters) WriteTo(w io.Writer) (n int64, err error) {
	return p.ParametersLiteral().WriteTo(w)
}

// ReadFrom reads on the object from an io.Writer. It implements the
// io.ReaderFrom interface.
func (p *Parameters) ReadFrom(r io.Reader) (n int64, err error) {
	var paramsLit ParametersLiteral
	if n, err = paramsLit.ReadFrom(r); err != nil {
		return
	}
	*p, err = NewParametersFromLiteral(paramsLit)
	return
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (p Parameters) MarshalBinary() (data []byte, err error) {
	buf := buffer.NewBufferSize(p.BinarySize())
	_, err = p.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (p *Parameters) UnmarshalBinary(data []byte) (err error) {
	_, err = p.ReadFrom(buffer.NewBuffer(data))
	return
}

// MarshalJSON returns a JSON representation of this parameter set. See Marshal from the [encoding/json] package.
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON reads a JSON representation of a parameter set into the receiver Parameter. See Unmarshal from the [encoding/json] package.
func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var params ParametersLiteral
	if err = json.Unmarshal(data, &params); err != nil {
		return
	}
	*p, err = NewParametersFromLiteral(params)
	return
}
