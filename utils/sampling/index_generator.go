package sampling

import (
	"fmt"
	"math/bits"

	"golang.org/x/crypto/sha3"
)

// IndexGenerator is a deterministic stream of indices in [0, N), expanded
// from a seed with SHAKE256 (index generation function IGF-2 of the NTRU
// standards).
//
// Each candidate is read on C bits of the stream. Candidates greater than
// or equal to the largest multiple of N not exceeding 2^C are rejected,
// so that the accepted candidates reduced modulo N are uniform in [0, N).
//
// An IndexGenerator must not be used concurrently.
type IndexGenerator struct {
	n      int
	c      int
	cutoff uint64
	seed   []byte
	shake  sha3.ShakeHash

	acc   uint64
	nbits int
	buf   [1]byte
}

// NewIndexGenerator creates a new [IndexGenerator] producing indices in [0, N)
// from candidates of C bits, seeded with seed.
// C must satisfy 2^C >= N and C <= 32.
func NewIndexGenerator(N, C int, seed []byte) (igf *IndexGenerator, err error) {

	if N <= 0 {
		return nil, fmt.Errorf("invalid N: %d <= 0", N)
	}

	if C > 32 || C < bits.Len64(uint64(N-1)) {
		return nil, fmt.Errorf("invalid C: must be in [%d, 32] but is %d", bits.Len64(uint64(N-1)), C)
	}

	igf = &IndexGenerator{
		n:    N,
		c:    C,
		seed: append([]byte{}, seed...),
	}

	igf.cutoff = (uint64(1) << C) - (uint64(1)<<C)%uint64(N)

	igf.Reset()

	return
}

// N returns the exclusive upper bound of the generated indices.
func (igf *IndexGenerator) N() int {
	return igf.n
}

// Reset rewinds the generator to the start of its stream.
func (igf *IndexGenerator) Reset() {
	igf.shake = sha3.NewShake256()
	if _, err := igf.shake.Write(igf.seed); err != nil {
		// Sanity check, this error should not happen.
		panic(fmt.Errorf("sha3.ShakeHash.Write: %w", err))
	}
	igf.acc = 0
	igf.nbits = 0
}

// NextIndex returns the next index of the stream.
func (igf *IndexGenerator) NextIndex() int {
	for {
		if candidate := igf.next(); candidate < igf.cutoff {
			return int(candidate % uint64(igf.n))
		}
	}
}

// next returns the next C bits of the stream, least significant bit first.
func (igf *IndexGenerator) next() (candidate uint64) {

	for igf.nbits < igf.c {
		if _, err := igf.shake.Read(igf.buf[:]); err != nil {
			// Sanity check, this error should not happen.
			panic(fmt.Errorf("sha3.ShakeHash.Read: %w", err))
		}
		igf.acc |= uint64(igf.buf[0]) << igf.nbits
		igf.nbits += 8
	}

	candidate = igf.acc & (uint64(1)<<igf.c - 1)
	igf.acc >>= igf.c
	igf.nbits -= igf.c

	return
}
