package concurrency

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResourceManager(t *testing.T) {

	t.Run("NoError", func(t *testing.T) {

		acc := make([]int, 64)

		resources := []int{0, 1, 2, 3}

		rm := NewResourceManager(resources)

		var active, peak atomic.Int64

		for i := range acc {
			rm.Run(func(r int) (err error) {

				n := active.Add(1)
				defer active.Add(-1)

				for {
					if p := peak.Load(); n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}

				acc[i] += r + 1
				return
			})
		}

		require.NoError(t, rm.Wait())

		for i := range acc {
			require.GreaterOrEqual(t, acc[i], 1)
			require.LessOrEqual(t, acc[i], len(resources))
		}

		require.LessOrEqual(t, peak.Load(), int64(len(resources)))
	})

	t.Run("WithError", func(t *testing.T) {

		acc := make([]int, 8)

		rm := NewResourceManager(make([]bool, 4))

		var done atomic.Int64

		for i := range acc {
			rm.Run(func(r bool) (err error) {
				defer done.Add(1)
				acc[i]++
				if i == 2 {
					return fmt.Errorf("something bad happened")
				}
				return
			})
		}

		require.EqualError(t, rm.Wait(), "something bad happened")

		// All the started tasks have returned.
		require.Equal(t, done.Load(), int64(acc[0]+acc[1]+acc[2]+acc[3]+acc[4]+acc[5]+acc[6]+acc[7]))

		// The pool is intact and reusable.
		rm.Run(func(r bool) (err error) { return })
		require.NoError(t, rm.Wait())
	})

	t.Run("Empty", func(t *testing.T) {
		require.Panics(t, func() { NewResourceManager([]int{}) })
	})
}
