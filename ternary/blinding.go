package ternary

// IndexGenerator is a deterministic stream of indices, as produced by an
// index generation function seeded from a message digest.
// It is notably implemented by *sampling.IndexGenerator.
type IndexGenerator interface {
	// NextIndex returns the next index of the stream.
	NextIndex() int
}

// NewBlindingSparseTernaryPoly creates a new [SparseTernaryPoly] of dimension
// N with d coefficients equal to 1 and d coefficients equal to -1, whose
// positions are read from igf. Indices already claimed are skipped, the
// first d distinct indices become the +1 positions and the next d the -1
// positions. Both position lists are sorted in ascending order.
//
// igf must produce indices in [0, N).
// Returns an error wrapping [ErrSamplingExhausted] if 2d > N or if igf keeps
// producing claimed indices past [DefaultMaxSamplingAttempts] per position.
func NewBlindingSparseTernaryPoly(igf IndexGenerator, N, d int) (*SparseTernaryPoly, error) {
	return NewTrinomialSparseTernaryPoly(igf, N, d, d)
}

// NewTrinomialSparseTernaryPoly is identical to [NewBlindingSparseTernaryPoly]
// but with independent numbers of +1 and -1 coefficients.
func NewTrinomialSparseTernaryPoly(igf IndexGenerator, N, numOnes, numNegOnes int) (*SparseTernaryPoly, error) {
	return newTrinomialSparseTernaryPoly(igf, N, numOnes, numNegOnes, DefaultMaxSamplingAttempts)
}

func newTrinomialSparseTernaryPoly(igf IndexGenerator, N, numOnes, numNegOnes, maxAttempts int) (p *SparseTernaryPoly, err error) {

	budget, err := samplingBudget(N, numOnes, numNegOnes, maxAttempts)
	if err != nil {
		return nil, err
	}

	return sampleSparseTernaryPoly(N, numOnes, numNegOnes, budget, func(int) int {
		return igf.NextIndex()
	})
}
