package ring

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/Pro7ech/ntru/utils/buffer"
	"github.com/Pro7ech/ntru/utils/sampling"
	"github.com/stretchr/testify/require"
)

func testString(opname string, N int) string {
	return fmt.Sprintf("%s/N=%d", opname, N)
}

func TestIntPoly(t *testing.T) {

	source := sampling.NewSource([32]byte{})

	for _, N := range []int{1, 7, 439} {

		t.Run(testString("Add/Sub", N), func(t *testing.T) {

			p0 := NewIntPoly(N)
			p0.Randomize(source, 1<<20)
			p1 := NewIntPoly(N)
			p1.Randomize(source, 1<<20)

			p2 := p0.Clone()
			p2.Add(p1)
			for i := range p2.Coeffs {
				require.Equal(t, p0.Coeffs[i]+p1.Coeffs[i], p2.Coeffs[i])
			}

			p2.Sub(p1)
			require.True(t, p0.Equal(p2))
		})

		t.Run(testString("Mod", N), func(t *testing.T) {

			p := NewIntPoly(N)
			p.Randomize(source, 1<<20)

			pMod := p.Clone()
			pMod.Mod(2048)

			for i, c := range pMod.Coeffs {
				require.GreaterOrEqual(t, c, int64(0))
				require.Less(t, c, int64(2048))
				require.Zero(t, (p.Coeffs[i]-c)%2048)
			}

			pCenter := p.Clone()
			pCenter.ModCenter(3)
			for i, c := range pCenter.Coeffs {
				require.GreaterOrEqual(t, c, int64(-1))
				require.LessOrEqual(t, c, int64(1))
				require.Zero(t, (p.Coeffs[i]-c)%3)
			}
		})

		t.Run(testString("Serialization", N), func(t *testing.T) {
			p := NewIntPoly(N)
			p.Randomize(source, math.MaxInt32)
			buffer.RequireSerializerCorrect(t, &p)
		})
	}

	t.Run("Wraparound", func(t *testing.T) {
		p := NewIntPolyFromCoeffs([]int64{math.MaxInt64})
		p.Add(NewIntPolyFromCoeffs([]int64{1}))
		require.Equal(t, int64(math.MinInt64), p.Coeffs[0])
	})

	t.Run("Copy", func(t *testing.T) {
		coeffs := []int64{1, 2, 3}
		p := NewIntPolyFromCoeffs(coeffs)
		coeffs[0] = 7
		require.Equal(t, int64(1), p.Coeffs[0])

		q := NewIntPoly(3)
		q.Copy(p)
		require.True(t, p.Equal(&q))
	})

	t.Run("MulByMonomial", func(t *testing.T) {
		p := NewIntPolyFromCoeffs([]int64{1, 2, 3, 4, 5})
		q := NewIntPoly(5)
		p.MulByMonomial(1, q)
		require.Equal(t, []int64{5, 1, 2, 3, 4}, []int64(q.Coeffs))
		p.MulByMonomial(-6, q)
		require.Equal(t, []int64{2, 3, 4, 5, 1}, []int64(q.Coeffs))
		p.MulByMonomial(2, p)
		require.Equal(t, []int64{4, 5, 1, 2, 3}, []int64(p.Coeffs))
	})

	t.Run("At", func(t *testing.T) {
		p := NewIntPolyFromCoeffs([]int64{4, -5, 6})
		require.Equal(t, int64(-5), p.At(1))
		require.Panics(t, func() { p.At(3) })
		require.Panics(t, func() { p.At(-1) })
	})

	t.Run("DimensionMismatch", func(t *testing.T) {
		require.Panics(t, func() { NewIntPoly(4).Add(NewIntPoly(5)) })
	})

	t.Run("Serialization/InvalidSize", func(t *testing.T) {
		data := binary.BigEndian.AppendUint64(nil, 1<<56)
		var p IntPoly
		require.NotPanics(t, func() { require.Error(t, p.UnmarshalBinary(data)) })
		_, err := p.ReadFrom(bytes.NewReader(data))
		require.Error(t, err)
	})
}

func TestBigPoly(t *testing.T) {

	source := sampling.NewSource([32]byte{})

	N := 64

	bound := new(big.Int).Lsh(big.NewInt(1), 100)

	t.Run("Add/Sub", func(t *testing.T) {

		p0 := NewBigPoly(N)
		p0.Randomize(source, bound)
		p1 := NewBigPoly(N)
		p1.Randomize(source, bound)

		p2 := p0.Clone()
		p2.Add(p1)
		require.False(t, p0.Equal(p2))
		p2.Sub(p1)
		require.True(t, p0.Equal(p2))
	})

	t.Run("FromIntPoly", func(t *testing.T) {
		p := NewIntPoly(N)
		p.Randomize(source, 1<<40)
		pBig := NewBigPolyFromIntPoly(p)
		for i := range p.Coeffs {
			require.Equal(t, p.Coeffs[i], pBig.Coeffs[i].Int64())
		}
	})

	t.Run("Mod", func(t *testing.T) {
		p := NewBigPoly(N)
		p.Randomize(source, bound)
		q := big.NewInt(2048)
		p.Mod(q)
		for i := range p.Coeffs {
			require.True(t, p.Coeffs[i].Sign() >= 0 && p.Coeffs[i].Cmp(q) < 0)
		}
	})

	t.Run("Log2InfNorm", func(t *testing.T) {
		p := NewBigPoly(N)
		require.True(t, math.IsInf(p.Log2InfNorm(64), -1))

		p.Coeffs[3].Lsh(big.NewInt(-1), 80)
		p.Coeffs[5].SetInt64(12)
		require.InDelta(t, 80.0, p.Log2InfNorm(128), 1e-9)
	})

	t.Run("Stats", func(t *testing.T) {
		p := NewBigPoly(N)
		p.Randomize(source, bound)
		stats := p.Stats(128)
		// Uniform on [-2^100, 2^100]: std = 2^100/sqrt(3)
		require.InDelta(t, 100-math.Log2(math.Sqrt(3)), stats[0], 1)
	})
}
