package processing

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForEach(t *testing.T) {
	t.Run("visits every index once", func(t *testing.T) {
		const n = 100
		visits := make([]int32, n)
		ForEach(n, 8, func(i int) {
			atomic.AddInt32(&visits[i], 1)
		})
		for i, v := range visits {
			assert.Equal(t, int32(1), v, "index %d", i)
		}
	})

	t.Run("respects the worker bound", func(t *testing.T) {
		var active, peak int32
		ForEach(50, 4, func(i int) {
			cur := atomic.AddInt32(&active, 1)
			for {
				old := atomic.LoadInt32(&peak)
				if cur <= old || atomic.CompareAndSwapInt32(&peak, old, cur) {
					break
				}
			}
			atomic.AddInt32(&active, -1)
		})
		assert.LessOrEqual(t, peak, int32(4))
	})

	t.Run("zero items is a no-op", func(t *testing.T) {
		called := false
		ForEach(0, 4, func(i int) { called = true })
		assert.False(t, called)
	})

	t.Run("defaults workers when nonpositive", func(t *testing.T) {
		var count int32
		ForEach(10, 0, func(i int) { atomic.AddInt32(&count, 1) })
		assert.Equal(t, int32(10), count)
	})
}
