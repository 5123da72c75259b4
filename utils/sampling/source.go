// Package sampling implements secure sampling of bytes and integers.
package sampling

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math/bits"

	"golang.org/x/crypto/blake2b"
)

// NewSeed returns a new random seed read from crypto/rand.
func NewSeed() (seed [32]byte) {
	if _, err := rand.Read(seed[:]); err != nil {
		// Sanity check, this error should not happen.
		panic(fmt.Errorf("rand.Read: %w", err))
	}
	return
}

// Source is a deterministic stream of random bytes, seeded with a 32 byte
// key and expanded with the blake2b XOF. Two sources created with the same
// seed produce the same stream.
// A Source must not be used concurrently. Use one Source per goroutine.
type Source struct {
	seed [32]byte
	xof  blake2b.XOF
	buf  [8]byte
}

// NewSource creates a new Source from the given seed.
func NewSource(seed [32]byte) (s *Source) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, seed[:])
	if err != nil {
		// Sanity check, this error should not happen: the key is 32 bytes.
		panic(fmt.Errorf("blake2b.NewXOF: %w", err))
	}
	return &Source{seed: seed, xof: xof}
}

// Seed returns the seed of the receiver.
func (s *Source) Seed() [32]byte {
	return s.seed
}

// Reset rewinds the receiver to the start of its stream.
func (s *Source) Reset() {
	s.xof.Reset()
}

// Read fills p with the next len(p) bytes of the stream.
// It implements the io.Reader interface and never returns an error.
func (s *Source) Read(p []byte) (n int, err error) {
	if n, err = s.xof.Read(p); err != nil {
		// Sanity check, this error should not happen.
		panic(fmt.Errorf("blake2b.XOF.Read: %w", err))
	}
	return
}

// Uint64 returns the next 64 bits of the stream as an uint64.
func (s *Source) Uint64() uint64 {
	s.Read(s.buf[:])
	return binary.LittleEndian.Uint64(s.buf[:])
}

// IntN returns a uniformly distributed integer in [0, bound).
// It is sampled by rejection on the smallest power of two
// greater than or equal to bound, and panics if bound <= 0.
func (s *Source) IntN(bound int) int {

	if bound <= 0 {
		panic(fmt.Errorf("invalid bound: %d <= 0", bound))
	}

	mask := uint64(1)<<bits.Len64(uint64(bound-1)) - 1

	j := s.Uint64() & mask
	for j >= uint64(bound) {
		j = s.Uint64() & mask
	}

	return int(j)
}

// Float64 returns a uniformly distributed float64 in [min, max).
func (s *Source) Float64(min, max float64) float64 {
	f := float64(s.Uint64()>>11) / float64(1<<53)
	return min + f*(max-min)
}
