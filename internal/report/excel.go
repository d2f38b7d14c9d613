package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gobeam/internal/solver"
)

// WriteExcel exports the full solve to an xlsx workbook: a Summary sheet
// with the scalar results, a Response sheet with the x/V/M/v columns and
// a Stress sheet carrying the σ(x, y) matrix (MPa) with y row headers.
func WriteExcel(res *solver.SolutionResult, filename string) error {
	f := excelize.NewFile()
	defer f.Close()

	const summary = "Summary"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Span L (m)", res.Beam.Span},
		{"Material", res.Beam.Material.Name},
		{"E (GPa)", res.Beam.Material.Youngs / 1e9},
		{"fy (MPa)", res.Beam.Material.YieldStrength / 1e6},
		{"Section", string(res.Beam.Section.Kind)},
		{"A (cm2)", res.Beam.Section.Area * 1e4},
		{"I (cm4)", res.Beam.Section.Inertia * 1e8},
		{"c (mm)", res.Beam.Section.ExtremeFiber * 1e3},
		{"R_left (kN)", res.ReactionLeft / 1e3},
		{"R_right (kN)", res.ReactionRight / 1e3},
		{"Max deflection (mm)", res.MaxDeflection * 1e3},
		{"Max stress (MPa)", res.MaxStress / 1e6},
		{"Utilization", res.Utilization},
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summary, cell, &r); err != nil {
			return err
		}
	}

	const response = "Response"
	if _, err := f.NewSheet(response); err != nil {
		return err
	}
	header := []interface{}{"x (m)", "V (kN)", "M (kN·m)", "v (mm)"}
	if err := f.SetSheetRow(response, "A1", &header); err != nil {
		return err
	}
	for i := range res.Grid {
		r := []interface{}{res.Grid[i], res.Shear[i] / 1e3, res.Moment[i] / 1e3, res.Deflection[i] * 1e3}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(response, cell, &r); err != nil {
			return err
		}
	}

	const stress = "Stress"
	if _, err := f.NewSheet(stress); err != nil {
		return err
	}
	head := make([]interface{}, 0, len(res.Grid)+1)
	head = append(head, "y (mm) \\ x (m)")
	for _, x := range res.Grid {
		head = append(head, x)
	}
	if err := f.SetSheetRow(stress, "A1", &head); err != nil {
		return err
	}
	for j, y := range res.YGrid {
		r := make([]interface{}, 0, len(res.Grid)+1)
		r = append(r, y*1e3)
		for _, s := range res.Sigma[j] {
			r = append(r, s/1e6)
		}
		cell, err := excelize.CoordinatesToCellName(1, j+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(stress, cell, &r); err != nil {
			return err
		}
	}

	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("report: save workbook: %w", err)
	}
	return nil
}
