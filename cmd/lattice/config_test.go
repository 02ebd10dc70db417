package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/osuushi/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "lattice.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config, err := loadConfig("")
		require.NoError(t, err)
		assert.Equal(t, lattice.DefaultOuterTriangle(), config.Outer)
		assert.Equal(t, lattice.DefaultAdditiveVertices(), config.Additive)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		config, err := loadConfig(writeConfig(t, "outer:\n  leg: 5\n"))
		require.NoError(t, err)
		assert.Equal(t, 5, config.Outer.Leg)
		assert.Equal(t, lattice.Point{}, config.Outer.Origin)
		assert.Equal(t, lattice.DefaultAdditiveVertices(), config.Additive)
	})

	t.Run("full file", func(t *testing.T) {
		config, err := loadConfig(writeConfig(t, `
outer:
  origin: {x: -2, y: 1}
  leg: 3
additive:
  - {x: 0, y: 0}
  - {x: 3, y: -1}
  - {x: 4, y: 2}
  - {x: -1, y: 3}
`))
		require.NoError(t, err)
		assert.Equal(t, lattice.OuterTriangle{Origin: lattice.Point{X: -2, Y: 1}, Leg: 3}, config.Outer)
		assert.Equal(t, lattice.Point{X: 4, Y: 2}, config.Additive[2])
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := loadConfig(writeConfig(t, "outer: [1, 2"))
		assert.Error(t, err)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
