/*package bunch contains the macro-particle bunch snapshot consumed by the
wake kick routines.
*/
package bunch

import (
	"fmt"

	"github.com/phil-mansfield/table"
)

// Particle is a single macro-particle. The wake kick routines mutate Xl and
// De in place and leave Ss and Xx untouched.
type Particle struct {
	Ss float64 // Longitudinal position relative to the bunch reference.
	Xx float64 // Transverse offset.
	Xl float64 // Accumulated transverse kick.
	De float64 // Accumulated energy deviation.
}

// Bunch is an ordered sequence of macro-particles stored head first: Ss
// never increases with index. The kick routines require this invariant and
// check it, but never sort.
type Bunch struct {
	Particles []Particle
}

// New creates a bunch from parallel position and offset arrays. The kick
// accumulators start at zero.
func New(ss, xx []float64) (*Bunch, error) {
	if len(ss) != len(xx) {
		return nil, fmt.Errorf(
			"bunch has %d longitudinal positions, but %d transverse offsets",
			len(ss), len(xx),
		)
	}

	b := &Bunch{Particles: make([]Particle, len(ss))}
	for i := range b.Particles {
		b.Particles[i].Ss = ss[i]
		b.Particles[i].Xx = xx[i]
	}

	return b, b.CheckOrdered()
}

// CheckOrdered returns an error if the bunch violates the non-increasing Ss
// invariant. A kick applied to an unordered bunch is silently wrong rather
// than imprecise, so callers fail fast on this.
func (b *Bunch) CheckOrdered() error {
	p := b.Particles
	for i := 0; i < len(p)-1; i++ {
		if p[i+1].Ss > p[i].Ss {
			return fmt.Errorf(
				"bunch not ordered head first: particle %d has ss = %g, "+
					"but particle %d has ss = %g",
				i, p[i].Ss, i+1, p[i+1].Ss,
			)
		}
	}
	return nil
}

// Read reads a bunch from a text file with one particle per row. The first
// column is the longitudinal position and the second is the transverse
// offset. Rows must be ordered head first.
func Read(fname string) (*Bunch, error) {
	cols, err := table.ReadTable(fname, []int{0, 1}, nil)
	if err != nil { return nil, err }
	return New(cols[0], cols[1])
}
