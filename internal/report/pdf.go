// Package report exports a SolutionResult to engineering report files
// (PDF summary, xlsx workbook). It performs no computation of its own.
package report

import (
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gobeam/internal/solver"
)

// WritePDF renders a one-page summary of the solve to filename.
func WritePDF(res *solver.SolutionResult, title, filename string) error {
	if title == "" {
		title = "Beam Analysis Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	b := res.Beam
	section(pdf, "Input")
	row(pdf, "Span L", "%.3f m", b.Span)
	row(pdf, "Material", "%s", b.Material.Name)
	row(pdf, "Elastic modulus E", "%.1f GPa", b.Material.Youngs/1e9)
	row(pdf, "Yield strength fy", "%.1f MPa", b.Material.YieldStrength/1e6)
	row(pdf, "Section", "%s", string(b.Section.Kind))
	row(pdf, "Area A", "%.2f cm2", b.Section.Area*1e4)
	row(pdf, "Inertia I", "%.2f cm4", b.Section.Inertia*1e8)
	row(pdf, "Extreme fiber c", "%.1f mm", b.Section.ExtremeFiber*1e3)
	row(pdf, "Mesh", "%d nodes", len(res.Grid))
	pdf.Ln(4)

	section(pdf, "Results")
	row(pdf, "Left reaction", "%.2f kN", res.ReactionLeft/1e3)
	row(pdf, "Right reaction", "%.2f kN", res.ReactionRight/1e3)
	row(pdf, "Max deflection", "%.3f mm", res.MaxDeflection*1e3)
	row(pdf, "Max bending stress", "%.2f MPa", res.MaxStress/1e6)
	row(pdf, "Utilization sigma/fy", "%.3f", res.Utilization)
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 11)
	if res.Utilization > 1 {
		pdf.Cell(0, 6, "Verdict: yield strength exceeded - section NOT adequate")
	} else {
		pdf.Cell(0, 6, "Verdict: section adequate (linear-elastic check)")
	}

	return pdf.OutputFileAndClose(filename)
}

func section(pdf *gofpdf.Fpdf, name string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, name)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
}

func row(pdf *gofpdf.Fpdf, label, format string, value interface{}) {
	pdf.Cell(60, 6, label)
	pdf.Cell(0, 6, fmt.Sprintf(format, value))
	pdf.Ln(6)
}
