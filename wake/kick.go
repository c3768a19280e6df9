package wake

import (
	"math/cmplx"

	"gonum.org/v1/gonum/floats"

	"github.com/phil-mansfield/gowake/bunch"
	"github.com/phil-mansfield/gowake/thread"
)

// Kick type selectors for the convolution engines.
const (
	kickLong = iota
	kickDip
	kickQuad
)

// ApplyKicks accumulates the wakefield kicks every particle receives from
// the particles ahead of it into the bunch's De and Xl fields and returns
// the bunch-wide longitudinal and transverse kick totals. stren is the wake
// strength (typically charge times a normalization) and betax the beta
// function at the kick location, which scales the transverse planes.
//
// ApplyKicks keeps no state between calls. It returns an error if the bunch
// violates the head-first ordering invariant, since the convolutions would
// silently produce wrong results on an unordered bunch.
func (w *Set) ApplyKicks(
	b *bunch.Bunch, stren, betax float64,
) (wl, wt float64, err error) {
	if err = b.CheckOrdered(); err != nil { return 0, 0, err }
	p := b.Particles
	if len(p) == 0 { return 0, 0, nil }

	// One partition per call, shared by every plane and mode.
	workers := thread.NumWorkers
	if workers > len(p) { workers = len(p) }
	lims := thread.Bounds(workers, 0, len(p))

	if w.Long.Table != nil || w.Dip.Table != nil || w.Quad.Table != nil {
		gl, gd := w.generalKicks(p, stren, betax, lims)
		wl += gl
		wt += gd
	}

	for i := range w.Long.Modes {
		wl += resonatorKicks(p, &w.Long.Modes[i], kickLong, stren, lims)
	}
	for i := range w.Dip.Modes {
		wt += resonatorKicks(p, &w.Dip.Modes[i], kickDip, stren/betax, lims)
	}
	for i := range w.Quad.Modes {
		wt += resonatorKicks(p, &w.Quad.Modes[i], kickQuad, stren/betax, lims)
	}

	return wl, wt, nil
}

// generalKicks convolves the tabulated wakes of all three planes over the
// bunch with a direct pairwise sum. Every witness's inner sum over the
// particles ahead of it is independent and writes only to that witness, so
// the outer loop splits freely over the partition.
func (w *Set) generalKicks(
	p []bunch.Particle, stren, betax float64, lims []int,
) (wgl, wgd float64) {
	n := len(lims) - 1
	wls := make([]float64, n)
	wds := make([]float64, n)

	out := make(chan int, n)
	for id := 0; id < n-1; id++ {
		go w.generalChunk(p, stren, betax, lims, id, wls, wds, out)
	}
	w.generalChunk(p, stren, betax, lims, n-1, wls, wds, out)
	for i := 0; i < n; i++ { <-out }

	return floats.Sum(wls), floats.Sum(wds)
}

func (w *Set) generalChunk(
	p []bunch.Particle, stren, betax float64,
	lims []int, id int, wls, wds []float64, out chan<- int,
) {
	for wi := lims[id]; wi < lims[id+1]; wi++ {
		for si := wi; si >= 0; si-- {
			// The source is ahead of (or coincident with) the witness, so
			// the separation is never negative on an ordered bunch.
			ds := p[si].Ss - p[wi].Ss
			if w.Long.Table != nil {
				kick := -w.Long.Table.Eval(ds) * stren
				wls[id] += kick
				p[wi].De += kick
			}
			if w.Dip.Table != nil {
				kick := -p[si].Xx * w.Dip.Table.Eval(ds) * stren / betax
				wds[id] += kick
				p[wi].Xl += kick
			}
			if w.Quad.Table != nil {
				kick := -p[wi].Xx * w.Quad.Table.Eval(ds) * stren / betax
				wds[id] += kick
				p[wi].Xl += kick
			}
		}
	}
	out <- id
}

// resonatorKicks convolves one resonator mode over the bunch in O(N) and
// returns the total kick it imparted. The kernel factorizes as
//
//	exp(-gamma*(ss_s - ss_w)) = [exp(-gamma*ss_s)] * [exp(+gamma*ss_w)],
//
// so a single complex potential accumulated over the sources ahead of the
// witness replaces the inner pairwise sum. The scan is causal: it splits
// over the partition with a two-phase protocol in which every chunk first
// scans its own particles from an empty potential, an exclusive prefix sum
// then hands each chunk the final potential of every chunk ahead of it, and
// a second pass applies that constant correction. The combined kick is
// identical to the single-worker scan for any partition.
func resonatorKicks(
	p []bunch.Particle, m *Mode, ktype int, stren float64, lims []int,
) float64 {
	n := len(lims) - 1
	r := m.sample(ktype, stren)

	pot := make([]complex128, n) // Per-chunk source potentials.
	kicks := make([]float64, n) // Per-chunk kick totals.

	// Phase 1: in-chunk scan.
	out := make(chan int, n)
	for id := 0; id < n-1; id++ {
		go resonatorChunk(p, r, ktype, true, pot, kicks, lims, id, out)
	}
	resonatorChunk(p, r, ktype, true, pot, kicks, lims, n-1, out)
	for i := 0; i < n; i++ { <-out }

	total := floats.Sum(kicks)
	if n == 1 { return total }

	// Exclusive prefix sum: chunk i starts phase 2 from the potential left
	// behind by the chunks ahead of it. Chunk 0 has nothing ahead of it and
	// sits out the second phase.
	sum := pot[0]
	for id := 1; id < n; id++ {
		pot[id], sum = sum, sum+pot[id]
		kicks[id] = 0
	}

	// Phase 2: cross-chunk correction.
	for id := 1; id < n-1; id++ {
		go resonatorChunk(p, r, ktype, false, pot, kicks, lims, id, out)
	}
	resonatorChunk(p, r, ktype, false, pot, kicks, lims, n-1, out)
	for i := 1; i < n; i++ { <-out }

	return total + floats.Sum(kicks[1:])
}

// resonatorChunk runs one chunk of the resonator convolution. During the
// first phase (scan = true) the chunk accumulates its own source potential
// as it goes; during the second it applies the constant cross-chunk
// potential computed by the prefix sum, and the longitudinal self wake,
// already applied in the first phase, is not repeated.
func resonatorChunk(
	p []bunch.Particle, r resample, ktype int, scan bool,
	pot []complex128, kicks []float64, lims []int, id int, out chan<- int,
) {
	for w := lims[id]; w < lims[id+1]; w++ {
		ex := cmplx.Exp(complex(p[w].Ss, 0) * r.gamma)
		kik := pot[id] * ex

		// The potential update comes after the kick read, so a particle
		// never wakes itself through the accumulator. The dipole potential
		// is weighted by the source offset; the other kernels weight every
		// source equally.
		if scan {
			if ktype == kickDip {
				pot[id] += complex(p[w].Xx, 0) / ex
			} else {
				pot[id] += 1 / ex
			}
		}

		var kick float64
		switch ktype {
		case kickLong:
			kick = -r.amp * (real(kik) + imag(kik)/(2*r.ql))
			if scan { kick -= 0.5 * r.amp } // Half-weight self wake at s = 0.
			p[w].De += kick
		case kickDip:
			kick = -r.amp * imag(kik)
			p[w].Xl += kick
		case kickQuad:
			kick = -r.amp * imag(kik) * p[w].Xx
			p[w].Xl += kick
		}
		kicks[id] += kick
	}
	out <- id
}
