package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gobeam/internal/solver"
)

const (
	asciiHeight = 10
	asciiWidth  = 72
)

// RenderResponse draws terminal diagrams of the shear, moment and
// deflection curves in display units (kN, kN·m, mm).
func RenderResponse(res *solver.SolutionResult) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(renderCurve(res.Shear, 1e-3, "Shear V(x)  [kN]"))
	sb.WriteString("\n")
	sb.WriteString(renderCurve(res.Moment, 1e-3, "Bending moment M(x)  [kN·m]"))
	sb.WriteString("\n")
	sb.WriteString(renderCurve(res.Deflection, 1e3, "Deflection v(x)  [mm]"))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  x spans 0 .. %g m, %d samples\n", res.Beam.Span, len(res.Grid)))

	return sb.String()
}

func renderCurve(values []float64, scale float64, caption string) string {
	scaled := make([]float64, len(values))
	for i, v := range values {
		scaled[i] = v * scale
	}
	return asciigraph.Plot(scaled,
		asciigraph.Height(asciiHeight),
		asciigraph.Width(asciiWidth),
		asciigraph.Caption(caption),
	) + "\n"
}
