package io

import (
	"fmt"
	"io/ioutil"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phil-mansfield/gowake/wake"
)

func writeFile(t *testing.T, dir, name, text string) string {
	fname := path.Join(dir, name)
	assert.NoError(t, ioutil.WriteFile(fname, []byte(text), 0644))
	return fname
}

func TestReadWakeConfig(t *testing.T) {
	dir := t.TempDir()
	wakeFile := writeFile(t, dir, "long_wake.dat", "0 2\n5 12\n10 -3\n")

	cfgText := fmt.Sprintf(`[Longitudinal]
WakeFile = %s
Wr = 1e9
Q = 1.0
Rs = 1e4
Wr = 2e9
Q = 2.5
Rs = 3e4

[Dipole]
Wr = 5e9
Q = 0.8
Rs = 100
`, wakeFile)
	cfgFile := writeFile(t, dir, "wake.cfg", cfgText)

	w, err := ReadWakeConfig(cfgFile)
	assert.NoError(t, err)

	assert.Equal(t, []wake.Mode{
		{Wr: 1e9, Q: 1.0, Rs: 1e4},
		{Wr: 2e9, Q: 2.5, Rs: 3e4},
	}, w.Long.Modes)
	assert.NotNil(t, w.Long.Table)
	assert.Equal(t, 2.0, w.Long.Table.Eval(0))
	assert.Equal(t, 7.0, w.Long.Table.Eval(2.5))
	assert.Equal(t, 0.0, w.Long.Table.Eval(-1))

	assert.Equal(t, []wake.Mode{{Wr: 5e9, Q: 0.8, Rs: 100}}, w.Dip.Modes)
	assert.Nil(t, w.Dip.Table)

	assert.Empty(t, w.Quad.Modes)
	assert.Nil(t, w.Quad.Table)
}

func TestReadWakeConfigBadQ(t *testing.T) {
	dir := t.TempDir()
	cfgFile := writeFile(t, dir, "wake.cfg", `[Quadrupole]
Wr = 1e9
Q = 0.5
Rs = 1e4
`)

	_, err := ReadWakeConfig(cfgFile)
	assert.Error(t, err)
}

func TestReadWakeConfigMismatchedModes(t *testing.T) {
	dir := t.TempDir()
	cfgFile := writeFile(t, dir, "wake.cfg", `[Longitudinal]
Wr = 1e9
Wr = 2e9
Q = 1.0
Rs = 1e4
`)

	_, err := ReadWakeConfig(cfgFile)
	assert.Error(t, err)
}

func TestReadWakeConfigMissingWakeFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := writeFile(t, dir, "wake.cfg", `[Dipole]
WakeFile = does_not_exist.dat
`)

	_, err := ReadWakeConfig(cfgFile)
	assert.Error(t, err)
}

func TestReadWakeTable(t *testing.T) {
	dir := t.TempDir()
	fname := writeFile(t, dir, "wake.dat", "0 1\n1 3\n2 5\n")

	tab, err := ReadWakeTable(fname)
	assert.NoError(t, err)
	assert.Equal(t, 2.0, tab.Eval(0.5))
	assert.Equal(t, 0.0, tab.Eval(3))

	fname = writeFile(t, dir, "short.dat", "0 1\n")
	_, err = ReadWakeTable(fname)
	assert.Error(t, err)
}
