package solver

import (
	"fmt"

	"github.com/alexiusacademia/gobeam/internal/load"
)

// Options controls the solve resolution.
type Options struct {
	// MeshNodes is the number of uniformly spaced span samples (≥ 2).
	MeshNodes int

	// StressSamples is the number of depth samples for the stress field.
	StressSamples int
}

// DefaultOptions returns the resolutions the interactive defaults used.
func DefaultOptions() Options {
	return Options{MeshNodes: 600, StressSamples: 120}
}

// Solve runs the full pipeline: discretize the span, balance the support
// reactions, integrate load density to shear, shear to moment and moment
// to deflection, then evaluate the stress field. The returned result is a
// fresh snapshot; it is never mutated afterwards.
//
// A zero load layout is a valid input and yields identically zero arrays.
func Solve(beam Beam, loads *load.Model, opts Options) (*SolutionResult, error) {
	if opts.MeshNodes < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMesh, opts.MeshNodes)
	}
	if opts.MeshNodes > MaxMeshNodes || opts.StressSamples > MaxStressSamples {
		return nil, fmt.Errorf("%w: %d nodes / %d stress samples", ErrMeshTooFine, opts.MeshNodes, opts.StressSamples)
	}
	if beam.Span <= 0 || beam.EI() <= 0 {
		return nil, fmt.Errorf("%w: L=%.4g m, EI=%.4g N·m²", ErrIllConditionedSpan, beam.Span, beam.EI())
	}
	if opts.StressSamples < 2 {
		opts.StressSamples = DefaultOptions().StressSamples
	}

	grid := discretize(beam.Span, opts.MeshNodes)

	density := make([]float64, len(grid))
	for i, x := range grid {
		density[i] = loads.DensityAt(x)
	}

	points := loads.Points()
	rLeft, rRight := reactions(grid, density, points, beam.Span)
	shear := shearCurve(grid, density, points, rLeft)
	moment := cumTrapezoid(grid, shear)
	deflection := deflectionCurve(grid, moment, beam.EI())

	yGrid, sigma, maxStress := stressField(beam.Section, moment, opts.StressSamples)

	return newResult(beam, grid, density, shear, moment, deflection,
		yGrid, sigma, maxStress, rLeft, rRight), nil
}

// discretize returns n uniformly spaced samples covering [0, span]
// inclusive of both endpoints.
func discretize(span float64, n int) []float64 {
	grid := make([]float64, n)
	dx := span / float64(n-1)
	for i := range grid {
		grid[i] = float64(i) * dx
	}
	grid[n-1] = span
	return grid
}

// cumTrapezoid integrates values over the grid cumulatively with the
// trapezoidal rule; result[0] = 0.
func cumTrapezoid(grid, values []float64) []float64 {
	out := make([]float64, len(grid))
	for i := 1; i < len(grid); i++ {
		dx := grid[i] - grid[i-1]
		out[i] = out[i-1] + 0.5*(values[i]+values[i-1])*dx
	}
	return out
}

// reactions balances the two pin supports by static equilibrium: the sum
// of vertical forces and the moment about the left support are both zero.
// The distributed resultant uses the same trapezoidal quadrature as the
// shear integration so the discrete system stays self-consistent.
func reactions(grid, density []float64, points []load.ResolvedPoint, span float64) (rLeft, rRight float64) {
	var total, moment float64
	for i := 1; i < len(grid); i++ {
		dx := grid[i] - grid[i-1]
		total += 0.5 * (density[i] + density[i-1]) * dx
		moment += 0.5 * (density[i]*grid[i] + density[i-1]*grid[i-1]) * dx
	}
	for _, p := range points {
		total += p.Magnitude
		moment += p.Magnitude * p.X
	}
	rRight = moment / span
	rLeft = total - rRight
	return rLeft, rRight
}

// shearCurve evaluates V(x) = R_left − ∫₀ˣ w dξ − Σ{P : xₚ ≤ x}. A point
// load lands on the nearest grid sample at or after its position, so its
// jump is attributed to the interval straddling xₚ.
func shearCurve(grid, density []float64, points []load.ResolvedPoint, rLeft float64) []float64 {
	distributed := cumTrapezoid(grid, density)
	shear := make([]float64, len(grid))
	for i, x := range grid {
		v := rLeft - distributed[i]
		for _, p := range points {
			if p.X > x {
				break // points are sorted by position
			}
			v -= p.Magnitude
		}
		shear[i] = v
	}
	return shear
}

// deflectionCurve solves EI·v'' = M by double trapezoidal integration.
// Indefinite integration leaves two unknown constants; v_raw(0) = 0 fixes
// one and the linear correction −v_raw(L)·x/L fixes the other so both
// supports satisfy v = 0.
func deflectionCurve(grid, moment []float64, ei float64) []float64 {
	curvature := make([]float64, len(grid))
	for i, m := range moment {
		curvature[i] = m / ei
	}
	slope := cumTrapezoid(grid, curvature)
	raw := cumTrapezoid(grid, slope)

	span := grid[len(grid)-1]
	endErr := raw[len(raw)-1]
	deflection := make([]float64, len(grid))
	for i, x := range grid {
		deflection[i] = raw[i] - endErr*x/span
	}
	return deflection
}
