/*package io reads wake configuration files and the tabulated wake functions
they reference.
*/
package io

import (
	"fmt"

	"github.com/phil-mansfield/table"
	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/gowake/interpolate"
	"github.com/phil-mansfield/gowake/wake"
)

const ExampleWakeFile = `# A wake configuration has one section per plane. Every section is optional,
# and within a section both the tabulated wake and the resonator modes are
# optional. A plane with neither contributes nothing.

[Longitudinal]

# WakeFile is a text file tabulating the wake function: column 0 is the
# longitudinal separation in meters (strictly increasing, starting at or
# above zero) and column 1 is the wake amplitude. Separations outside the
# tabulated range contribute zero.
# WakeFile = path/to/long_wake.dat

# Each resonator mode is one (Wr, Q, Rs) triple: its angular resonant
# frequency in rad/s, its quality factor, and its shunt impedance. Repeat
# the three keys once per mode, in matching order. Q must exceed 0.5.
Wr = 1e9
Q = 1.0
Rs = 1e4

[Dipole]

# Same keys as [Longitudinal]. Dipole kicks are weighted by the source
# particle's transverse offset.
# Wr = 5e9
# Q = 2.0
# Rs = 2e3

[Quadrupole]

# Same keys as [Longitudinal]. Quadrupole kicks are weighted by the witness
# particle's transverse offset.
# WakeFile = path/to/quad_wake.dat`

// PlaneConfig is the configuration of a single wake plane: an optional
// tabulated wake file and the parameters of zero or more resonator modes.
type PlaneConfig struct {
	WakeFile string
	Wr       []float64
	Q        []float64
	Rs       []float64
}

// WakeConfig is the on-disk layout of a wake configuration file.
type WakeConfig struct {
	Longitudinal PlaneConfig
	Dipole       PlaneConfig
	Quadrupole   PlaneConfig
}

// ReadWakeConfig reads a wake configuration file and returns the wake set
// it describes.
func ReadWakeConfig(fname string) (*wake.Set, error) {
	cfg := WakeConfig{}
	if err := gcfg.ReadFileInto(&cfg, fname); err != nil {
		return nil, err
	}
	return wakeSet(&cfg)
}

func wakeSet(cfg *WakeConfig) (*wake.Set, error) {
	w := &wake.Set{}

	var err error
	if w.Long, err = plane("Longitudinal", &cfg.Longitudinal); err != nil {
		return nil, err
	}
	if w.Dip, err = plane("Dipole", &cfg.Dipole); err != nil {
		return nil, err
	}
	if w.Quad, err = plane("Quadrupole", &cfg.Quadrupole); err != nil {
		return nil, err
	}

	return w, nil
}

func plane(name string, cfg *PlaneConfig) (wake.Plane, error) {
	pl := wake.Plane{}

	if len(cfg.Wr) != len(cfg.Q) || len(cfg.Wr) != len(cfg.Rs) {
		return pl, fmt.Errorf(
			"section [%s] gives %d Wr values, %d Q values, and %d Rs "+
				"values, but each resonator mode needs one of each",
			name, len(cfg.Wr), len(cfg.Q), len(cfg.Rs),
		)
	}

	for i := range cfg.Wr {
		if cfg.Q[i] <= 0.5 {
			return pl, fmt.Errorf(
				"mode %d in section [%s] has Q = %g, but Q must be "+
					"greater than 0.5", i, name, cfg.Q[i],
			)
		}
		pl.Modes = append(pl.Modes, wake.Mode{
			Wr: cfg.Wr[i], Q: cfg.Q[i], Rs: cfg.Rs[i],
		})
	}

	if cfg.WakeFile != "" {
		t, err := ReadWakeTable(cfg.WakeFile)
		if err != nil {
			return pl, fmt.Errorf("section [%s]: %s", name, err.Error())
		}
		pl.Table = t
	}

	return pl, nil
}

// ReadWakeTable reads a tabulated wake function from a text file. Column 0
// is the longitudinal separation and column 1 the wake amplitude.
func ReadWakeTable(fname string) (*interpolate.WakeTable, error) {
	cols, err := table.ReadTable(fname, []int{0, 1}, nil)
	if err != nil { return nil, err }
	if len(cols[0]) <= 1 {
		return nil, fmt.Errorf(
			"wake table %s has %d rows, but interpolation needs at "+
				"least two", fname, len(cols[0]),
		)
	}
	return interpolate.NewWakeTable(cols[0], cols[1]), nil
}
