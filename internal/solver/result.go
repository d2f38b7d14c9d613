package solver

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// SolutionResult is the read-only snapshot of one solve. Arrays are
// aligned to Grid; Sigma rows are aligned to YGrid. Consumers (plotting,
// reporting) must not mutate it — every solve produces a fresh instance.
type SolutionResult struct {
	Beam Beam

	Grid       []float64 // x samples (m)
	Density    []float64 // w(x) sampled on Grid (N/m)
	Shear      []float64 // V(x) (N)
	Moment     []float64 // M(x) (N·m)
	Deflection []float64 // v(x) (m), negative = downward

	YGrid []float64   // depth samples (m), −c .. +c
	Sigma [][]float64 // σ[j][i] = Moment[i]·YGrid[j]/I (Pa)

	ReactionLeft  float64 // N
	ReactionRight float64 // N

	MaxDeflection float64 // max |v| (m)
	MaxStress     float64 // max |σ| (Pa)
	Utilization   float64 // max |σ| / fy
}

// Probe is the response sampled at one fractional span position.
type Probe struct {
	X           float64 // m
	Deflection  float64 // m
	SigmaTop    float64 // Pa, extreme top fiber
	SigmaBottom float64 // Pa, extreme bottom fiber
}

func newResult(beam Beam, grid, density, shear, moment, deflection, yGrid []float64,
	sigma [][]float64, maxStress, rLeft, rRight float64) *SolutionResult {

	maxDefl := math.Max(math.Abs(floats.Max(deflection)), math.Abs(floats.Min(deflection)))

	return &SolutionResult{
		Beam:          beam,
		Grid:          grid,
		Density:       density,
		Shear:         shear,
		Moment:        moment,
		Deflection:    deflection,
		YGrid:         yGrid,
		Sigma:         sigma,
		ReactionLeft:  rLeft,
		ReactionRight: rRight,
		MaxDeflection: maxDefl,
		MaxStress:     maxStress,
		Utilization:   maxStress / beam.Material.YieldStrength,
	}
}

// At samples the result at fractional span position t ∈ [0, 1], clamped
// to the grid, returning the deflection and the extreme-fiber stresses at
// the nearest sample.
func (r *SolutionResult) At(t float64) Probe {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	i := int(math.Round(t * float64(len(r.Grid)-1)))
	top := len(r.YGrid) - 1
	return Probe{
		X:           r.Grid[i],
		Deflection:  r.Deflection[i],
		SigmaTop:    r.Sigma[top][i],
		SigmaBottom: r.Sigma[0][i],
	}
}
