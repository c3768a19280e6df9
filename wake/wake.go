/*package wake computes the longitudinal and transverse kicks that the
macro-particles of a bunch exchange through the wakefields of the
surrounding vacuum chamber.

A wake plane combines an optional tabulated wake function with an optional
set of resonator modes. Tabulated wakes are convolved over the bunch with a
direct O(N^2) pairwise sum, while resonator wakes use an O(N) recursive
convolution that splits the kernel exp(-gamma*(ss_s - ss_w)) into a running
source potential and a witness factor. Both convolutions are exact and run
in parallel over a fixed partition of the particle index range.
*/
package wake

import (
	"math"
	"math/cmplx"

	"github.com/phil-mansfield/gowake/thread"
)

// LightSpeed is the speed of light in m/s.
const LightSpeed = 299792458.0

// zeroSep is the width of the band around zero separation treated as an
// exact self-interaction, where the resonator kernel takes half weight.
// Keep this branch bit-identical across evaluation paths.
const zeroSep = 1e-10

// Table is a tabulated wake function sampled at a longitudinal separation.
// Implementations own the out-of-domain policy: a causal table returns zero
// for negative separations.
type Table interface {
	Eval(s float64) float64
}

// Mode is a single resonator mode.
type Mode struct {
	Wr float64 // Angular resonant frequency.
	Q  float64 // Quality factor. Must be > 0.5.
	Rs float64 // Shunt impedance.
}

// Plane is the wake acting on one plane of motion. Either part may be
// absent: a nil Table disables the tabulated wake and an empty Modes slice
// disables the resonator wake.
type Plane struct {
	Table Table
	Modes []Mode
}

// Set combines the three wake planes acting on a bunch.
type Set struct {
	Long, Dip, Quad Plane
}

// resample holds the per-mode quantities shared by every kernel evaluation:
// the kick amplitude, the complex decay rate gamma = kr/(2Q) + i*kr*Ql/Q,
// and Ql = sqrt(Q^2 - 1/4).
type resample struct {
	amp   float64
	gamma complex128
	ql    float64
}

func (m *Mode) sample(ktype int, stren float64) resample {
	kr := m.Wr / LightSpeed
	ql := math.Sqrt(m.Q*m.Q - 0.25)

	amp := m.Wr * m.Rs / m.Q * stren
	if ktype != kickLong { amp = m.Wr * m.Rs / ql * stren }

	return resample{amp, complex(kr/(2*m.Q), kr*ql/m.Q), ql}
}

// EvalAt returns the wake amplitude at each of the given separations,
// scaled by stren: the interpolated tabulated wake, if present, plus the
// closed-form kernel of every resonator mode. Negative separations are
// acausal and contribute nothing, and separations within zeroSep of zero
// take the half-weight self-wake branch.
//
// EvalAt has no side effects. Samples are independent, so the resonator
// sum runs in parallel over the worker partition.
func (pl *Plane) EvalAt(spos []float64, stren float64) []float64 {
	wakeF := make([]float64, len(spos))
	if len(spos) == 0 { return wakeF }

	if pl.Table != nil {
		for i, s := range spos { wakeF[i] = pl.Table.Eval(s) * stren }
	}

	if len(pl.Modes) > 0 {
		workers := thread.NumWorkers
		if workers > len(spos) { workers = len(spos) }
		lims := thread.Bounds(workers, 0, len(spos))

		out := make(chan int, workers)
		for id := 0; id < workers-1; id++ {
			go pl.evalChunk(spos, wakeF, stren, lims, id, out)
		}
		pl.evalChunk(spos, wakeF, stren, lims, workers-1, out)
		for i := 0; i < workers; i++ { <-out }
	}

	return wakeF
}

func (pl *Plane) evalChunk(
	spos, wakeF []float64, stren float64, lims []int, id int, out chan<- int,
) {
	for _, m := range pl.Modes {
		r := m.sample(kickLong, stren)
		for i := lims[id]; i < lims[id+1]; i++ {
			s := spos[i]

			weight := 1.0
			if s > -zeroSep && s < zeroSep {
				weight = 0.5
			} else if s < 0 {
				continue
			}

			kik := cmplx.Exp(-complex(s, 0) * r.gamma)
			wakeF[i] += weight * r.amp * (real(kik) + imag(kik)/(2*r.ql))
		}
	}
	out <- id
}
