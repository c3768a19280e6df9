/*package thread manages the fixed worker pool shared by every parallel loop
in gowake and computes the index-range partitions those loops run over.
*/
package thread

import (
	"fmt"
	"runtime"
)

// NumWorkers is the number of workers used by every parallel loop. It
// defaults to the number of logical cores.
var NumWorkers = runtime.NumCPU()

// Set sets NumWorkers along with GOMAXPROCS. n = -1 requests the maximum
// number of workers the machine supports.
func Set(n int) error {
	if n == -1 { n = runtime.NumCPU() }
	if n < 1 || n > runtime.NumCPU() {
		return fmt.Errorf(
			"%d threads requested, but your system has %d logical cores",
			n, runtime.NumCPU(),
		)
	}

	NumWorkers = n
	runtime.GOMAXPROCS(n)
	return nil
}

// Bounds splits the index range [start, end) into n contiguous chunks and
// returns the n+1 chunk boundaries. The first boundary is always start, the
// last is always end, and no chunk is more than one index longer than any
// other. Chunk i is [lims[i], lims[i+1]).
//
// Bounds panics if n < 1 or if the range is smaller than n, since a
// zero-length chunk is never what a caller wants.
func Bounds(n, start, end int) []int {
	if n < 1 {
		panic(fmt.Sprintf("Bounds() called with %d chunks.", n))
	} else if end-start < n {
		panic(fmt.Sprintf(
			"Bounds() called with %d chunks for a range of length %d.",
			n, end-start,
		))
	}

	size, rem := (end-start)/n, (end-start)%n

	lims := make([]int, n+1)
	lims[0] = start
	for i := 1; i <= n; i++ {
		lims[i] = lims[i-1] + size
		if i <= rem { lims[i]++ }
	}

	return lims
}
