package sampling

import (
	"fmt"
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/require"
)

func TestSource(t *testing.T) {

	seed := [32]byte{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07, 0xa1, 0xd7, 0xe9, 0x7b, 0x3b, 0xce, 0xa1, 0xdb,
		0x42, 0xf3, 0xa6, 0xd5, 0x75, 0xd2, 0x0c, 0x92, 0xb7, 0x35, 0xce, 0x0c, 0xee, 0x09, 0x7c, 0x98}

	t.Run("Deterministic", func(t *testing.T) {

		Ha := NewSource(seed)
		Hb := NewSource(seed)

		sum0 := make([]byte, 512)
		sum1 := make([]byte, 512)

		for i := 0; i < 128; i++ {
			Hb.Read(sum1)
		}

		Hb.Reset()

		Ha.Read(sum0)
		Hb.Read(sum1)

		require.Equal(t, sum0, sum1)
		require.Equal(t, seed, Hb.Seed())
	})

	t.Run("IntN", func(t *testing.T) {

		source := NewSource(seed)

		for _, bound := range []int{1, 2, 3, 7, 1 << 10, 1499} {

			samples := make([]float64, 1<<14)

			for i := range samples {
				v := source.IntN(bound)
				require.GreaterOrEqual(t, v, 0)
				require.Less(t, v, bound)
				samples[i] = float64(v)
			}

			if bound > 1 {
				mean, err := stats.Mean(samples)
				require.NoError(t, err)
				// Uniform on [0, bound): mean (bound-1)/2, loose 5% tolerance
				require.InDelta(t, float64(bound-1)/2, mean, 0.05*float64(bound), fmt.Sprintf("bound=%d", bound))
			}
		}

		require.Panics(t, func() { source.IntN(0) })
	})

	t.Run("Float64", func(t *testing.T) {
		source := NewSource(seed)
		for i := 0; i < 1024; i++ {
			f := source.Float64(-1, 1)
			require.GreaterOrEqual(t, f, -1.0)
			require.Less(t, f, 1.0)
		}
	})
}

func TestIndexGenerator(t *testing.T) {

	seed := []byte("index generator test seed")

	for _, N := range []int{11, 439, 743, 1499, 2048} {

		t.Run(fmt.Sprintf("N=%d", N), func(t *testing.T) {

			C := 12
			if N > 1<<11 {
				C = 13
			}

			igfa, err := NewIndexGenerator(N, C, seed)
			require.NoError(t, err)
			igfb, err := NewIndexGenerator(N, C, seed)
			require.NoError(t, err)

			counts := make([]float64, N)

			first := make([]int, 64)

			for i := 0; i < 64*N; i++ {
				v := igfa.NextIndex()
				require.Equal(t, v, igfb.NextIndex())
				require.GreaterOrEqual(t, v, 0)
				require.Less(t, v, N)
				counts[v]++
				if i < len(first) {
					first[i] = v
				}
			}

			// Every index is reachable and none dominates.
			lo, err := stats.Min(counts)
			require.NoError(t, err)
			hi, err := stats.Max(counts)
			require.NoError(t, err)
			require.Greater(t, lo, 0.0)
			require.Less(t, hi, 3*64.0)

			igfa.Reset()
			for i := range first {
				require.Equal(t, first[i], igfa.NextIndex())
			}
		})
	}

	t.Run("InvalidParameters", func(t *testing.T) {
		_, err := NewIndexGenerator(0, 8, seed)
		require.Error(t, err)
		_, err = NewIndexGenerator(1499, 10, seed)
		require.Error(t, err)
		_, err = NewIndexGenerator(1499, 33, seed)
		require.Error(t, err)
	})
}
