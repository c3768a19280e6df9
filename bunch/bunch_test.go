package bunch

import (
	"io/ioutil"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	b, err := New([]float64{0, -1, -1, -2.5}, []float64{1, 2, 3, 4})
	assert.NoError(t, err)
	assert.Len(t, b.Particles, 4)
	assert.Equal(t, -1.0, b.Particles[2].Ss)
	assert.Equal(t, 3.0, b.Particles[2].Xx)
	assert.Equal(t, 0.0, b.Particles[2].Xl)
	assert.Equal(t, 0.0, b.Particles[2].De)
}

func TestNewMismatchedColumns(t *testing.T) {
	_, err := New([]float64{0, -1}, []float64{1})
	assert.Error(t, err)
}

func TestCheckOrdered(t *testing.T) {
	b := &Bunch{Particles: []Particle{{Ss: 1}, {Ss: 1}, {Ss: 0.5}}}
	assert.NoError(t, b.CheckOrdered())

	b = &Bunch{Particles: []Particle{{Ss: 1}, {Ss: 0.5}, {Ss: 0.75}}}
	assert.Error(t, b.CheckOrdered())

	assert.NoError(t, (&Bunch{}).CheckOrdered())
}

func TestRead(t *testing.T) {
	fname := path.Join(t.TempDir(), "bunch.dat")
	text := "0.0 1.0\n-0.5 0.25\n-1.5 -2.0\n"
	assert.NoError(t, ioutil.WriteFile(fname, []byte(text), 0644))

	b, err := Read(fname)
	assert.NoError(t, err)
	assert.Len(t, b.Particles, 3)
	assert.Equal(t, -0.5, b.Particles[1].Ss)
	assert.Equal(t, 0.25, b.Particles[1].Xx)
	assert.Equal(t, -2.0, b.Particles[2].Xx)
}

func TestReadUnordered(t *testing.T) {
	fname := path.Join(t.TempDir(), "bunch.dat")
	text := "0.0 1.0\n0.5 0.25\n"
	assert.NoError(t, ioutil.WriteFile(fname, []byte(text), 0644))

	_, err := Read(fname)
	assert.Error(t, err)
}
