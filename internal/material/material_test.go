package material_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gobeam/internal/material"
)

// TestNew_Validation rejects out-of-range properties at construction.
func TestNew_Validation(t *testing.T) {
	_, err := material.New("bad", 0, 79e9, 7850, 345e6)
	assert.ErrorIs(t, err, material.ErrInvalidMaterial, "E must be positive")

	_, err = material.New("bad", 206e9, -1, 7850, 345e6)
	assert.ErrorIs(t, err, material.ErrInvalidMaterial, "G must be positive")

	_, err = material.New("bad", 206e9, 79e9, -10, 345e6)
	assert.ErrorIs(t, err, material.ErrInvalidMaterial, "density must be non-negative")

	_, err = material.New("bad", 206e9, 79e9, 7850, 0)
	assert.ErrorIs(t, err, material.ErrInvalidMaterial, "fy must be positive")

	m, err := material.New("ok", 206e9, 79e9, 0, 345e6)
	require.NoError(t, err, "zero density is allowed")
	assert.Equal(t, "ok", m.Name)
}

// TestPreset looks up catalogued grades and rejects unknown names.
func TestPreset(t *testing.T) {
	m, err := material.Preset("Q345")
	require.NoError(t, err)
	assert.Equal(t, 345e6, m.YieldStrength)
	assert.Equal(t, 206e9, m.Youngs)

	_, err = material.Preset("unobtainium")
	assert.ErrorIs(t, err, material.ErrInvalidMaterial)
}
