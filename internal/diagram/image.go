package diagram

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/alexiusacademia/gobeam/internal/solver"
)

// ExportResponseCurves writes the load, shear, moment and deflection
// curves as PNG files under dir (created if missing). Display units match
// the terminal diagrams: kN, kN·m, mm. amplify scales the drawn deflection
// curve only; it never enters the solve.
func ExportResponseCurves(res *solver.SolutionResult, dir string, amplify float64) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	if amplify <= 0 {
		amplify = 1
	}

	curves := []struct {
		file   string
		title  string
		yLabel string
		values []float64
		scale  float64
	}{
		{"load.png", "Load Density", "w (kN/m)", res.Density, 1e-3},
		{"shear.png", "Shear Force", "V (kN)", res.Shear, 1e-3},
		{"moment.png", "Bending Moment", "M (kN·m)", res.Moment, 1e-3},
		{"deflection.png", "Deflection", "v (mm)", res.Deflection, 1e3 * amplify},
	}

	for _, c := range curves {
		if err := saveLine(res.Grid, c.values, c.scale, c.title, c.yLabel,
			filepath.Join(dir, c.file)); err != nil {
			return fmt.Errorf("diagram: export %s: %w", c.file, err)
		}
	}
	return nil
}

func saveLine(x, values []float64, scale float64, title, yLabel, filename string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = yLabel

	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i] = plotter.XY{X: x[i], Y: values[i] * scale}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(1.5)
	p.Add(line, plotter.NewGrid())

	return p.Save(8*vg.Inch, 4*vg.Inch, filename)
}

// stressGrid adapts a SolutionResult to plotter.GridXYZ. Display units:
// x in m, y in mm, σ in MPa.
type stressGrid struct {
	res *solver.SolutionResult
}

func (g stressGrid) Dims() (c, r int)   { return len(g.res.Grid), len(g.res.YGrid) }
func (g stressGrid) X(c int) float64    { return g.res.Grid[c] }
func (g stressGrid) Y(r int) float64    { return g.res.YGrid[r] * 1e3 }
func (g stressGrid) Z(c, r int) float64 { return g.res.Sigma[r][c] * 1e-6 }

// ExportStressHeatmap writes σ(x, y) as a PNG heatmap with a diverging
// blue-red palette centered on zero stress.
func ExportStressHeatmap(res *solver.SolutionResult, filename string) error {
	p := plot.New()
	p.Title.Text = "Bending Stress σ(x, y)"
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = "y (mm)"

	h := plotter.NewHeatMap(stressGrid{res: res}, moreland.SmoothBlueRed().Palette(255))

	// Symmetric color range keeps zero stress on the palette midpoint.
	limit := res.MaxStress * 1e-6
	if limit == 0 {
		limit = 1
	}
	h.Min, h.Max = -limit, limit
	p.Add(h)

	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return p.Save(8*vg.Inch, 4*vg.Inch, filename)
}
