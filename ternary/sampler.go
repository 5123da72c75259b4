package ternary

import (
	"fmt"
	"math"
	"slices"
)

// DefaultMaxSamplingAttempts is the default number of draws allowed per
// requested non-zero position before a randomized constructor gives up
// with [ErrSamplingExhausted].
const DefaultMaxSamplingAttempts = 1 << 12

// MaxSamplingAttemptsLimit is the largest number of draws per requested
// non-zero position accepted by [NewParametersFromLiteral].
const MaxSamplingAttemptsLimit = 1 << 24

// RandomSource is a source of uniform integers.
// It is notably implemented by *sampling.Source and by *math/rand/v2.Rand.
type RandomSource interface {
	// IntN returns a uniform integer in [0, n).
	IntN(n int) int
}

// NewRandomSparseTernaryPoly samples a new [SparseTernaryPoly] of dimension N
// with exactly numOnes coefficients equal to 1 and numNegOnes coefficients
// equal to -1 at uniformly distributed distinct positions, using rejection
// sampling on source. Both position lists are sorted in ascending order.
//
// Returns an error wrapping [ErrSamplingExhausted] if numOnes+numNegOnes > N
// or if the draws exceed [DefaultMaxSamplingAttempts] per requested position.
func NewRandomSparseTernaryPoly(N, numOnes, numNegOnes int, source RandomSource) (*SparseTernaryPoly, error) {
	return newRandomSparseTernaryPoly(N, numOnes, numNegOnes, source, DefaultMaxSamplingAttempts)
}

func newRandomSparseTernaryPoly(N, numOnes, numNegOnes int, source RandomSource, maxAttempts int) (p *SparseTernaryPoly, err error) {

	budget, err := samplingBudget(N, numOnes, numNegOnes, maxAttempts)
	if err != nil {
		return nil, err
	}

	return sampleSparseTernaryPoly(N, numOnes, numNegOnes, budget, source.IntN)
}

// samplingBudget checks the sampling parameters and returns the total
// number of draws allowed to place numOnes+numNegOnes positions.
// The budget saturates at math.MaxInt.
func samplingBudget(N, numOnes, numNegOnes, maxAttempts int) (budget int, err error) {

	if N <= 0 {
		return 0, fmt.Errorf("invalid dimension: N=%d <= 0", N)
	}

	if numOnes < 0 || numNegOnes < 0 {
		return 0, fmt.Errorf("invalid number of non-zero coefficients: numOnes=%d, numNegOnes=%d", numOnes, numNegOnes)
	}

	if numOnes+numNegOnes > N {
		return 0, fmt.Errorf("%w: cannot place %d non-zero coefficients among %d positions", ErrSamplingExhausted, numOnes+numNegOnes, N)
	}

	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxSamplingAttempts
	}

	total := numOnes + numNegOnes

	if total != 0 && maxAttempts > math.MaxInt/total {
		return math.MaxInt, nil
	}

	return maxAttempts * total, nil
}

// sampleSparseTernaryPoly places numOnes positive then numNegOnes negative
// coefficients at the positions returned by next(N), skipping the positions
// already claimed, and sorts both lists.
func sampleSparseTernaryPoly(N, numOnes, numNegOnes, budget int, next func(N int) int) (p *SparseTernaryPoly, err error) {

	occupied := make([]bool, N)

	ones := make([]int, numOnes)
	negOnes := make([]int, numNegOnes)

	var draws int

	for _, list := range [][]int{ones, negOnes} {
		for i := range list {
			for {

				if draws == budget {
					return nil, fmt.Errorf("%w: %d draws", ErrSamplingExhausted, draws)
				}

				draws++

				idx := next(N)

				if idx < 0 || idx >= N {
					return nil, fmt.Errorf("invalid sampled position: %d not in [0, %d)", idx, N)
				}

				if !occupied[idx] {
					occupied[idx] = true
					list[i] = idx
					break
				}
			}
		}
	}

	slices.Sort(ones)
	slices.Sort(negOnes)

	return &SparseTernaryPoly{n: N, ones: ones, negOnes: negOnes}, nil
}
