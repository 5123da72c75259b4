package ternary

import (
	"fmt"
	"math/big"
	"runtime"

	"github.com/Pro7ech/ntru/ring"
	"github.com/Pro7ech/ntru/utils/concurrency"
)

// arithmetic is the in-place accumulation of a coefficient type.
type arithmetic[T any] interface {
	// Add evaluates acc = acc + x.
	Add(acc, x *T)
	// Sub evaluates acc = acc - x.
	Sub(acc, x *T)
}

type int64Arithmetic struct{}

func (int64Arithmetic) Add(acc, x *int64) {
	*acc += *x
}

func (int64Arithmetic) Sub(acc, x *int64) {
	*acc -= *x
}

type bigArithmetic struct{}

func (bigArithmetic) Add(acc, x *big.Int) {
	acc.Add(acc, x)
}

func (bigArithmetic) Sub(acc, x *big.Int) {
	acc.Sub(acc, x)
}

// convolve accumulates on c the cyclic convolution of b with the
// polynomial of dimension N defined by ones and negOnes:
//
//	c[k] += sum_{i in ones} b[(k-i) mod N] - sum_{i in negOnes} b[(k-i) mod N]
//
// For each position i, k walks from N-1 down to 0 while the index of b
// starts at (N-1-i) mod N and wraps from 0 to N-1.
func convolve[T any, A arithmetic[T]](ar A, N int, ones, negOnes []int, b, c []T) {

	for _, i := range ones {
		j := ((N-1-i)%N + N) % N
		for k := N - 1; k >= 0; k-- {
			ar.Add(&c[k], &b[j])
			if j--; j < 0 {
				j = N - 1
			}
		}
	}

	for _, i := range negOnes {
		j := ((N-1-i)%N + N) % N
		for k := N - 1; k >= 0; k-- {
			ar.Sub(&c[k], &b[j])
			if j--; j < 0 {
				j = N - 1
			}
		}
	}
}

// Mul returns the product of the receiver with b in Z[X]/(X^N - 1).
// Coefficients follow the int64 wraparound semantic.
// Returns a [*DimensionMismatchError] if b.N() != p.N().
func (p *SparseTernaryPoly) Mul(b ring.IntPoly) (c ring.IntPoly, err error) {

	if b.N() != p.n {
		return c, &DimensionMismatchError{Want: p.n, Have: b.N()}
	}

	c = ring.NewIntPoly(p.n)
	convolve[int64](int64Arithmetic{}, p.n, p.ones, p.negOnes, []int64(b.Coeffs), []int64(c.Coeffs))

	return
}

// MulMod returns the product of the receiver with b in Z[X]/(X^N - 1), with
// each coefficient reduced in [0, modulus) after the multiplication.
// Returns a [*DimensionMismatchError] if b.N() != p.N().
func (p *SparseTernaryPoly) MulMod(b ring.IntPoly, modulus int64) (c ring.IntPoly, err error) {

	if modulus <= 0 {
		return c, fmt.Errorf("invalid modulus: %d <= 0", modulus)
	}

	if c, err = p.Mul(b); err != nil {
		return
	}

	c.Mod(modulus)

	return
}

// MulBig returns the product of the receiver with b in Z[X]/(X^N - 1), in
// arbitrary precision.
// Returns a [*DimensionMismatchError] if b.N() != p.N().
func (p *SparseTernaryPoly) MulBig(b ring.BigPoly) (c ring.BigPoly, err error) {

	if b.N() != p.n {
		return c, &DimensionMismatchError{Want: p.n, Have: b.N()}
	}

	c = ring.NewBigPoly(p.n)
	convolve[big.Int](bigArithmetic{}, p.n, p.ones, p.negOnes, b.Coeffs, c.Coeffs)

	return
}

// MulBatch returns the products of the receiver with each of the operands,
// evaluated concurrently by at most workers goroutines.
// If workers <= 0, runtime.NumCPU() goroutines are used.
// Returns a [*DimensionMismatchError] if an operand does not have dimension
// p.N(), in which case no product is computed.
func (p *SparseTernaryPoly) MulBatch(ops []ring.IntPoly, workers int) (res []ring.IntPoly, err error) {

	for _, b := range ops {
		if b.N() != p.n {
			return nil, &DimensionMismatchError{Want: p.n, Have: b.N()}
		}
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	workers = min(workers, max(len(ops), 1))

	// The receiver is never written to by Mul and can be shared by all workers.
	resources := make([]*SparseTernaryPoly, workers)
	for i := range resources {
		resources[i] = p
	}

	m := concurrency.NewResourceManager(resources)

	res = make([]ring.IntPoly, len(ops))

	for i := range ops {
		m.Run(func(poly *SparseTernaryPoly) (err error) {
			if res[i], err = poly.Mul(ops[i]); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
			return
		})
	}

	if err = m.Wait(); err != nil {
		return nil, err
	}

	return
}
