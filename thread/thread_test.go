package thread

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBounds(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7} {
		for _, size := range []int{7, 8, 100} {
			lims := Bounds(n, 0, size)

			assert.Len(t, lims, n+1, "n = %d, size = %d", n, size)
			assert.Equal(t, 0, lims[0], "n = %d, size = %d", n, size)
			assert.Equal(t, size, lims[n], "n = %d, size = %d", n, size)
			for i := 0; i < n; i++ {
				chunk := lims[i+1] - lims[i]
				assert.True(t, chunk > 0,
					"n = %d, size = %d: chunk %d is empty", n, size, i)
				assert.True(t, chunk >= size/n && chunk <= size/n+1,
					"n = %d, size = %d: chunk %d has size %d",
					n, size, i, chunk)
			}
		}
	}
}

func TestBoundsOffsetRange(t *testing.T) {
	lims := Bounds(3, 5, 15)
	assert.Equal(t, []int{5, 9, 12, 15}, lims)
}

func TestBoundsDegenerate(t *testing.T) {
	assert.Panics(t, func() { Bounds(0, 0, 10) })
	assert.Panics(t, func() { Bounds(4, 0, 3) })
}

func TestSet(t *testing.T) {
	defer func() {
		NumWorkers = runtime.NumCPU()
		runtime.GOMAXPROCS(runtime.NumCPU())
	}()

	assert.NoError(t, Set(1))
	assert.Equal(t, 1, NumWorkers)

	assert.NoError(t, Set(-1))
	assert.Equal(t, runtime.NumCPU(), NumWorkers)

	assert.Error(t, Set(0))
	assert.Error(t, Set(runtime.NumCPU()+1))
}
