package ternary

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/Pro7ech/ntru/ring"
	"github.com/Pro7ech/ntru/utils/sampling"
)

func BenchmarkSparseTernaryPoly(b *testing.B) {

	source := sampling.NewSource([32]byte{})

	for _, tc := range testParametersLiteral {

		N, d := tc.N, tc.df

		a, err := NewRandomSparseTernaryPoly(N, d+1, d, source)
		if err != nil {
			b.Fatal(err)
		}

		op := ring.NewIntPoly(N)
		op.Randomize(source, 1<<11)

		opBig := ring.NewBigPoly(N)
		opBig.Randomize(source, new(big.Int).Lsh(big.NewInt(1), 128))

		b.Run(testString("NewRandom", N, d), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := NewRandomSparseTernaryPoly(N, d+1, d, source); err != nil {
					b.Fatal(err)
				}
			}
		})

		b.Run(testString("NewBlinding", N, d), func(b *testing.B) {

			igf, err := sampling.NewIndexGenerator(N, 12, []byte("benchmark"))
			if err != nil {
				b.Fatal(err)
			}

			for i := 0; i < b.N; i++ {
				if _, err := NewBlindingSparseTernaryPoly(igf, N, d); err != nil {
					b.Fatal(err)
				}
			}
		})

		b.Run(testString("Mul", N, d), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := a.Mul(op); err != nil {
					b.Fatal(err)
				}
			}
		})

		b.Run(testString("MulBig", N, d), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := a.MulBig(opBig); err != nil {
					b.Fatal(err)
				}
			}
		})

		ops := make([]ring.IntPoly, 16)
		for i := range ops {
			ops[i] = op
		}

		b.Run(fmt.Sprintf("%s/Ops=%d", testString("MulBatch", N, d), len(ops)), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := a.MulBatch(ops, 0); err != nil {
					b.Fatal(err)
				}
			}
		})

		b.Run(testString("Dense/Mul", N, d), func(b *testing.B) {
			aInt := a.ToIntPoly()
			for i := 0; i < b.N; i++ {
				naiveMul(aInt.Coeffs, op.Coeffs)
			}
		})

		data, err := a.MarshalBinary()
		if err != nil {
			b.Fatal(err)
		}

		b.Run(testString("MarshalBinary", N, d), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := a.MarshalBinary(); err != nil {
					b.Fatal(err)
				}
			}
		})

		b.Run(testString("UnmarshalBinary", N, d), func(b *testing.B) {
			p := NewSparseTernaryPoly(N, nil, nil)
			for i := 0; i < b.N; i++ {
				if err := p.UnmarshalBinary(data); err != nil {
					b.Fatal(err)
				}
			}
		})

		b.Run(testString("Hash", N, d), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				a.Hash()
			}
		})
	}
}
