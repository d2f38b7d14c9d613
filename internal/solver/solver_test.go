package solver_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gobeam/internal/load"
	"github.com/alexiusacademia/gobeam/internal/material"
	"github.com/alexiusacademia/gobeam/internal/section"
	"github.com/alexiusacademia/gobeam/internal/solver"
)

// rectBeam is the reference test beam: 100x200mm rectangle, E = 200 GPa,
// fy = 345 MPa, on the given span.
func rectBeam(t *testing.T, span float64) solver.Beam {
	t.Helper()
	mat, err := material.New("test-steel", 2e11, 79e9, 7850, 345e6)
	require.NoError(t, err)
	sec, err := section.BuildRectangular(section.RectParams{Width: 0.1, Height: 0.2})
	require.NoError(t, err)
	beam, err := solver.NewSimplySupported(span, mat, sec)
	require.NoError(t, err)
	return beam
}

func aggregate(t *testing.T, d []load.Distributed, p []load.Point, span float64) *load.Model {
	t.Helper()
	m, err := load.Aggregate(d, p, span)
	require.NoError(t, err)
	return m
}

// TestSolve_GridCoversSpan checks the discretization invariant: strictly
// increasing samples from 0 to L inclusive.
func TestSolve_GridCoversSpan(t *testing.T) {
	beam := rectBeam(t, 4)
	res, err := solver.Solve(beam, aggregate(t, nil, nil, 4), solver.Options{MeshNodes: 97, StressSamples: 50})
	require.NoError(t, err)

	require.Len(t, res.Grid, 97)
	assert.Equal(t, 0.0, res.Grid[0])
	assert.Equal(t, 4.0, res.Grid[len(res.Grid)-1])
	for i := 1; i < len(res.Grid); i++ {
		assert.Greater(t, res.Grid[i], res.Grid[i-1], "grid must be strictly increasing")
	}
}

// TestSolve_ZeroLoadZeroResponse: an empty load layout is a valid input
// and every output is identically zero.
func TestSolve_ZeroLoadZeroResponse(t *testing.T) {
	beam := rectBeam(t, 4)
	res, err := solver.Solve(beam, aggregate(t, nil, nil, 4), solver.DefaultOptions())
	require.NoError(t, err)

	for i := range res.Grid {
		assert.Zero(t, res.Shear[i])
		assert.Zero(t, res.Moment[i])
		assert.Zero(t, res.Deflection[i])
	}
	assert.Zero(t, res.ReactionLeft)
	assert.Zero(t, res.ReactionRight)
	assert.Zero(t, res.MaxDeflection)
	assert.Zero(t, res.MaxStress)
	assert.Zero(t, res.Utilization)
}

// TestSolve_ReactionEquilibrium: the two reactions carry the total load
// and the moment about the left support balances.
func TestSolve_ReactionEquilibrium(t *testing.T) {
	const span = 4.0
	beam := rectBeam(t, span)
	loads := aggregate(t,
		[]load.Distributed{{Start: 1, End: 3, Intensity: 2e3}},
		[]load.Point{
			{Position: 0.3, Magnitude: 5e3},
			{Position: 0.7, Magnitude: 8e3},
		}, span)

	res, err := solver.Solve(beam, loads, solver.Options{MeshNodes: 2001, StressSamples: 60})
	require.NoError(t, err)

	assert.InEpsilon(t, loads.TotalForce(), res.ReactionLeft+res.ReactionRight, 5e-3,
		"ΣF = 0 within quadrature tolerance")
	assert.InEpsilon(t, loads.MomentAboutOrigin(), res.ReactionRight*span, 5e-3,
		"ΣM about the left support = 0 within quadrature tolerance")
}

// TestSolve_BoundaryConditions: v(0) = v(L) = 0 for a mixed load layout.
func TestSolve_BoundaryConditions(t *testing.T) {
	beam := rectBeam(t, 6)
	loads := aggregate(t,
		[]load.Distributed{{Start: 0, End: 6, Intensity: 3e3}},
		[]load.Point{{Position: 0.4, Magnitude: 2e4}}, 6)

	res, err := solver.Solve(beam, loads, solver.Options{MeshNodes: 801, StressSamples: 60})
	require.NoError(t, err)

	assert.InDelta(t, 0, res.Deflection[0], 1e-12, "pinned left support")
	assert.InDelta(t, 0, res.Deflection[len(res.Deflection)-1], 1e-12, "pinned right support")
}

// TestSolve_CentralPointLoad compares against the closed form
// v_max = P·L³/(48·EI) and checks symmetry about midspan. This is the
// concrete reference scenario: b=0.1m, h=0.2m (A=0.02 m², I≈6.667e-5 m⁴),
// L=4m, E=2e11 Pa, P=10 kN.
func TestSolve_CentralPointLoad(t *testing.T) {
	const (
		span = 4.0
		p    = 1e4
		mesh = 4001
	)
	beam := rectBeam(t, span)
	assert.InEpsilon(t, 0.02, beam.Section.Area, 1e-9)
	assert.InEpsilon(t, 6.667e-5, beam.Section.Inertia, 1e-4)

	loads := aggregate(t, nil, []load.Point{{Position: 0.5, Magnitude: p}}, span)
	res, err := solver.Solve(beam, loads, solver.Options{MeshNodes: mesh, StressSamples: 80})
	require.NoError(t, err)

	exact := p * math.Pow(span, 3) / (48 * beam.EI())
	assert.InEpsilon(t, exact, res.MaxDeflection, 1e-3,
		"max deflection matches P·L³/48EI")

	// reactions split evenly
	assert.InEpsilon(t, p/2, res.ReactionLeft, 1e-9)
	assert.InEpsilon(t, p/2, res.ReactionRight, 1e-9)

	// max deflection sits at midspan, pointing down (negative v)
	mid := (mesh - 1) / 2
	assert.InEpsilon(t, -exact, res.Deflection[mid], 1e-3)

	// symmetric curve about x = L/2
	n := len(res.Deflection)
	for i := 0; i < n/2; i += 100 {
		assert.InDelta(t, res.Deflection[i], res.Deflection[n-1-i], 1e-3*res.MaxDeflection,
			"deflection symmetric about midspan")
	}
}

// TestSolve_UniformLoadClosedForm compares a full-span UDL against
// v_max = 5·w·L⁴/(384·EI) and M_max = w·L²/8.
func TestSolve_UniformLoadClosedForm(t *testing.T) {
	const (
		span = 4.0
		w    = 4e3
		mesh = 2001
	)
	beam := rectBeam(t, span)
	loads := aggregate(t, []load.Distributed{{Start: 0, End: span, Intensity: w}}, nil, span)

	res, err := solver.Solve(beam, loads, solver.Options{MeshNodes: mesh, StressSamples: 60})
	require.NoError(t, err)

	wantDefl := 5 * w * math.Pow(span, 4) / (384 * beam.EI())
	assert.InEpsilon(t, wantDefl, res.MaxDeflection, 1e-3)

	mid := (mesh - 1) / 2
	assert.InEpsilon(t, w*span*span/8, res.Moment[mid], 1e-3, "M_max = wL²/8 at midspan")
	assert.InEpsilon(t, w*span/2, res.ReactionLeft, 1e-6)
}

// TestSolve_MeshConvergence: finer meshes drive the max deflection toward
// the closed form for the central point load case.
func TestSolve_MeshConvergence(t *testing.T) {
	const (
		span = 4.0
		p    = 1e4
	)
	beam := rectBeam(t, span)
	loads := aggregate(t, nil, []load.Point{{Position: 0.5, Magnitude: p}}, span)
	exact := p * math.Pow(span, 3) / (48 * beam.EI())

	var errs []float64
	for _, mesh := range []int{101, 401, 1601} {
		res, err := solver.Solve(beam, loads, solver.Options{MeshNodes: mesh, StressSamples: 40})
		require.NoError(t, err)
		errs = append(errs, math.Abs(res.MaxDeflection-exact))
	}

	assert.Less(t, errs[1], errs[0], "401 nodes beat 101")
	assert.Less(t, errs[2], errs[1], "1601 nodes beat 401")
	assert.Less(t, errs[2], 1e-3*exact, "finest mesh within 1e-3 relative")
}

// TestSolve_PointLoadLandsOnNextSample documents the jump attribution
// rule: the nearest grid sample at or after the load position absorbs the
// shear jump.
func TestSolve_PointLoadLandsOnNextSample(t *testing.T) {
	const (
		span = 4.0
		p    = 1e4
	)
	beam := rectBeam(t, span)
	// x = 2.2 m falls between samples 2 and 3 on a 5-node grid
	loads := aggregate(t, nil, []load.Point{{Position: 0.55, Magnitude: p}}, span)

	res, err := solver.Solve(beam, loads, solver.Options{MeshNodes: 5, StressSamples: 20})
	require.NoError(t, err)

	rLeft := 0.45 * p
	assert.InEpsilon(t, rLeft, res.Shear[2], 1e-9, "sample before the load keeps R_left")
	assert.InEpsilon(t, rLeft-p, res.Shear[3], 1e-9, "first sample at or after x absorbs the jump")
	assert.InEpsilon(t, rLeft-p, res.Shear[4], 1e-9)
}

// TestSolve_CoarseMeshSmearsButSolves: a mesh too coarse to resolve the
// point load position still returns a result, not an error.
func TestSolve_CoarseMeshSmearsButSolves(t *testing.T) {
	beam := rectBeam(t, 4)
	loads := aggregate(t, nil, []load.Point{{Position: 0.37, Magnitude: 1e4}}, 4)

	res, err := solver.Solve(beam, loads, solver.Options{MeshNodes: 2, StressSamples: 10})
	require.NoError(t, err, "minimum usable mesh is 2 nodes")
	require.Len(t, res.Grid, 2)
	assert.Positive(t, res.MaxStress)
}

// TestSolve_TypedRejections covers the mesh and span validation errors.
func TestSolve_TypedRejections(t *testing.T) {
	beam := rectBeam(t, 4)
	loads := aggregate(t, nil, nil, 4)

	res, err := solver.Solve(beam, loads, solver.Options{MeshNodes: 1, StressSamples: 40})
	assert.ErrorIs(t, err, solver.ErrInvalidMesh)
	assert.Nil(t, res, "no partial result on rejection")

	res, err = solver.Solve(beam, loads, solver.Options{MeshNodes: solver.MaxMeshNodes + 1, StressSamples: 40})
	assert.ErrorIs(t, err, solver.ErrMeshTooFine)
	assert.Nil(t, res)

	res, err = solver.Solve(beam, loads, solver.Options{MeshNodes: 100, StressSamples: solver.MaxStressSamples + 1})
	assert.ErrorIs(t, err, solver.ErrMeshTooFine)
	assert.Nil(t, res)

	// a beam literal that bypassed the constructor is still rejected
	broken := solver.Beam{Span: -1, Material: beam.Material, Section: beam.Section}
	res, err = solver.Solve(broken, loads, solver.DefaultOptions())
	assert.ErrorIs(t, err, solver.ErrIllConditionedSpan)
	assert.Nil(t, res)
}

// TestNewSimplySupported_Validation rejects non-positive span and rigidity.
func TestNewSimplySupported_Validation(t *testing.T) {
	mat, err := material.New("test", 2e11, 79e9, 7850, 345e6)
	require.NoError(t, err)
	sec, err := section.BuildRectangular(section.RectParams{Width: 0.1, Height: 0.2})
	require.NoError(t, err)

	_, err = solver.NewSimplySupported(0, mat, sec)
	assert.ErrorIs(t, err, solver.ErrIllConditionedSpan)

	// zero-value section carries EI = 0
	_, err = solver.NewSimplySupported(4, mat, section.Section{})
	assert.ErrorIs(t, err, solver.ErrIllConditionedSpan)
}
