package solver_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gobeam/internal/load"
	"github.com/alexiusacademia/gobeam/internal/solver"
)

// TestStressField_Antisymmetry: for the doubly symmetric rectangle,
// σ(x, −y) = −σ(x, y) everywhere on the grid.
func TestStressField_Antisymmetry(t *testing.T) {
	const span = 4.0
	beam := rectBeam(t, span)
	loads := aggregate(t, nil, []load.Point{{Position: 0.5, Magnitude: 1e4}}, span)

	res, err := solver.Solve(beam, loads, solver.Options{MeshNodes: 401, StressSamples: 80})
	require.NoError(t, err)

	ny := len(res.YGrid)
	require.Equal(t, 80, ny)
	assert.InDelta(t, -beam.Section.ExtremeFiber, res.YGrid[0], 1e-12, "depth grid starts at -c")
	assert.InDelta(t, beam.Section.ExtremeFiber, res.YGrid[ny-1], 1e-12, "depth grid ends at +c")

	tol := 1e-9 * res.MaxStress
	for j := 0; j < ny/2; j++ {
		mirror := ny - 1 - j
		assert.InDelta(t, -res.YGrid[j], res.YGrid[mirror], 1e-12)
		for i := 0; i < len(res.Grid); i += 40 {
			assert.InDelta(t, -res.Sigma[j][i], res.Sigma[mirror][i], tol,
				"σ antisymmetric about the neutral axis")
		}
	}
}

// TestStressField_MaxAndUtilization: max|σ| = M_max·c/I at the extreme
// fiber and utilization = max|σ|/fy.
func TestStressField_MaxAndUtilization(t *testing.T) {
	const (
		span = 4.0
		p    = 1e4
	)
	beam := rectBeam(t, span)
	loads := aggregate(t, nil, []load.Point{{Position: 0.5, Magnitude: p}}, span)

	res, err := solver.Solve(beam, loads, solver.Options{MeshNodes: 4001, StressSamples: 120})
	require.NoError(t, err)

	mMax := p * span / 4
	wantStress := mMax * beam.Section.ExtremeFiber / beam.Section.Inertia
	assert.InEpsilon(t, wantStress, res.MaxStress, 1e-3, "max σ = M_max·c/I")
	assert.InEpsilon(t, wantStress/beam.Material.YieldStrength, res.Utilization, 1e-3)
}

// TestStressField_LinearInDepth checks σ scales linearly with y at a
// fixed station: half depth carries half the fiber stress.
func TestStressField_LinearInDepth(t *testing.T) {
	beam := rectBeam(t, 4)
	loads := aggregate(t, []load.Distributed{{Start: 0, End: 4, Intensity: 5e3}}, nil, 4)

	// 81 depth samples put y = ±c/2 exactly on the grid
	res, err := solver.Solve(beam, loads, solver.Options{MeshNodes: 401, StressSamples: 81})
	require.NoError(t, err)

	mid := len(res.Grid) / 2
	top := len(res.YGrid) - 1
	quarter := 3 * (len(res.YGrid) - 1) / 4 // y = +c/2
	assert.InEpsilon(t, res.Sigma[top][mid]/2, res.Sigma[quarter][mid], 1e-9,
		"σ at c/2 is half the fiber stress")
}

// TestResultAt_ProbesNearestSample checks the fractional-position readout
// against the underlying arrays.
func TestResultAt_ProbesNearestSample(t *testing.T) {
	beam := rectBeam(t, 4)
	loads := aggregate(t, nil, []load.Point{{Position: 0.5, Magnitude: 1e4}}, 4)

	res, err := solver.Solve(beam, loads, solver.Options{MeshNodes: 401, StressSamples: 60})
	require.NoError(t, err)

	probe := res.At(0.5)
	mid := (len(res.Grid) - 1) / 2
	assert.Equal(t, res.Grid[mid], probe.X)
	assert.Equal(t, res.Deflection[mid], probe.Deflection)
	assert.Equal(t, res.Sigma[len(res.YGrid)-1][mid], probe.SigmaTop)
	assert.Equal(t, res.Sigma[0][mid], probe.SigmaBottom)

	// extreme fibers carry opposite-sign stress under sagging moment
	assert.InDelta(t, -probe.SigmaTop, probe.SigmaBottom, 1e-9*math.Abs(probe.SigmaTop))

	// positions are clamped to the span
	assert.Equal(t, res.Grid[len(res.Grid)-1], res.At(2).X)
	assert.Equal(t, res.Grid[0], res.At(-0.5).X)
}
