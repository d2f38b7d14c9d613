package solver

import (
	"math"

	"github.com/alexiusacademia/gobeam/internal/section"
)

// stressField evaluates the linear-elastic bending stress σ(x, y) =
// M(x)·y/I on a depth grid of `samples` points spanning [−c, +c]. Rows of
// sigma follow yGrid (bottom fiber first), columns follow the span grid,
// so sigma[j][i] pairs yGrid[j] with moment[i].
//
// For a symmetric section the field is antisymmetric about the neutral
// axis: σ(x, −y) = −σ(x, y).
func stressField(sec section.Section, moment []float64, samples int) (yGrid []float64, sigma [][]float64, maxStress float64) {
	c := sec.ExtremeFiber
	yGrid = make([]float64, samples)
	dy := 2 * c / float64(samples-1)
	for j := range yGrid {
		yGrid[j] = -c + float64(j)*dy
	}
	yGrid[samples-1] = c

	sigma = make([][]float64, samples)
	for j, y := range yGrid {
		row := make([]float64, len(moment))
		for i, m := range moment {
			s := m * y / sec.Inertia
			row[i] = s
			if a := math.Abs(s); a > maxStress {
				maxStress = a
			}
		}
		sigma[j] = row
	}
	return yGrid, sigma, maxStress
}
