package bignum

import (
	"crypto/rand"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBignum(t *testing.T) {

	t.Run("NewInt", func(t *testing.T) {
		require.Equal(t, 0, NewInt("0x10").Cmp(big.NewInt(16)))
		require.Equal(t, 0, NewInt(-3).Cmp(big.NewInt(-3)))
		require.Equal(t, 0, NewInt(uint64(1<<63)).Cmp(new(big.Int).Lsh(big.NewInt(1), 63)))
		require.Equal(t, 0, NewInt(nil).Sign())
		require.Panics(t, func() { NewInt(1.5) })
	})

	t.Run("Log2", func(t *testing.T) {

		for _, tc := range []struct {
			x    *big.Int
			want float64
		}{
			{big.NewInt(1), 0},
			{big.NewInt(-1024), 10},
			{new(big.Int).Lsh(big.NewInt(3), 200), 200 + math.Log2(3)},
		} {
			have, _ := Log2(tc.x, 128).Float64()
			require.InDelta(t, tc.want, have, 1e-9)
		}

		require.True(t, Log2(new(big.Int), 64).IsInf())
	})

	t.Run("Stats", func(t *testing.T) {
		values := make([]big.Int, 4)
		for i := range values {
			values[i].SetInt64(int64(2 * i))
		}
		// values = [0, 2, 4, 6], mean = 3, sample variance = 20/3
		stats := Stats(values, 128)
		require.InDelta(t, math.Log2(math.Sqrt(20.0/3)), stats[0], 1e-9)
		require.InDelta(t, 3.0, stats[1], 1e-9)
	})

	t.Run("RandInt", func(t *testing.T) {
		max := big.NewInt(17)
		for i := 0; i < 64; i++ {
			n := RandInt(rand.Reader, max)
			require.True(t, n.Sign() >= 0 && n.Cmp(max) < 0)
		}
	})
}
