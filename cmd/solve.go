package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/alexiusacademia/gobeam/internal/load"
	"github.com/alexiusacademia/gobeam/internal/material"
	"github.com/alexiusacademia/gobeam/internal/report"
	"github.com/alexiusacademia/gobeam/internal/solver"
	"github.com/spf13/cobra"
)

var (
	// Beam and material inputs
	solveSpan     float64
	solveGrade    string
	solveYoungs   float64
	solveShearMod float64
	solveDensity  float64
	solveFy       float64

	// Load inputs
	solveUDLs   []string
	solvePoints []string

	// Solve resolution
	solveMesh          int
	solveStressSamples int

	// Presentation
	solveASCII   bool
	solveProbe   float64
	solveAmplify float64
	solvePlotDir string
	solvePDF     string
	solveXLSX    string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve the static response of a simply supported beam",
	Long: `Compute support reactions, shear, bending moment, deflection and the
bending-stress field for a simply supported beam under distributed and
point loads.

Distributed loads are given as --udl x0:x1:q with x0, x1 in meters from
the left support and q in kN/m (positive downward). Point loads are given
as --point t:P[:label] with t the fractional span position in [0,1] and
P in kN. Both flags repeat.

Examples:
  # 8m I-beam, full-span 40 kN/m plus 120 kN at 0.65L
  gobeam solve --span 8 --shape ishape --depth 400 --flange-width 200 \
    --flange-thk 18 --web-thk 12 --udl 0:8:40 --point 0.65:120:P1

  # Rectangular bar with a central point load, PNG plots and a PDF report
  gobeam solve --span 4 --shape rect --width 100 --height 200 \
    --point 0.5:10 --plot-dir out --pdf report.pdf`,
	Run: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().Float64VarP(&solveSpan, "span", "l", 0, "Span length L (m) [required]")
	solveCmd.MarkFlagRequired("span")

	addSectionFlags(solveCmd)

	solveCmd.Flags().StringVar(&solveGrade, "grade", "", "Steel grade preset (Q235, Q345, Q420); overrides --e/--g/--density/--fy")
	solveCmd.Flags().Float64Var(&solveYoungs, "e", 205, "Elastic modulus E (GPa)")
	solveCmd.Flags().Float64Var(&solveShearMod, "g", 79, "Shear modulus G (GPa)")
	solveCmd.Flags().Float64Var(&solveDensity, "density", 7850, "Density ρ (kg/m³)")
	solveCmd.Flags().Float64Var(&solveFy, "fy", 345, "Yield strength fy (MPa)")

	solveCmd.Flags().StringArrayVar(&solveUDLs, "udl", nil, "Distributed load x0:x1:q (m, m, kN/m); repeatable")
	solveCmd.Flags().StringArrayVar(&solvePoints, "point", nil, "Point load t:P[:label] (x/L, kN); repeatable")

	solveCmd.Flags().IntVar(&solveMesh, "mesh", 600, "Mesh density (number of span samples)")
	solveCmd.Flags().IntVar(&solveStressSamples, "stress-samples", 120, "Depth samples for the stress field")

	solveCmd.Flags().BoolVar(&solveASCII, "ascii", false, "Draw terminal diagrams of V, M and v")
	solveCmd.Flags().Float64Var(&solveProbe, "probe", 0.5, "Probe position x/L for the spot readout")
	solveCmd.Flags().Float64Var(&solveAmplify, "amplify", 1, "Deflection display amplification (plots only)")
	solveCmd.Flags().StringVar(&solvePlotDir, "plot-dir", "", "Directory for PNG diagrams (curves + stress heatmap)")
	solveCmd.Flags().StringVar(&solvePDF, "pdf", "", "Write a PDF summary report to this file")
	solveCmd.Flags().StringVar(&solveXLSX, "xlsx", "", "Write an xlsx workbook with the full arrays to this file")
}

func runSolve(cmd *cobra.Command, args []string) {
	mat, err := materialFromFlags()
	if err != nil {
		fail(err)
	}
	sec, err := sectionFromFlags()
	if err != nil {
		fail(err)
	}
	beam, err := solver.NewSimplySupported(solveSpan, mat, sec)
	if err != nil {
		fail(err)
	}

	distributed, points, err := loadsFromFlags()
	if err != nil {
		fail(err)
	}
	loads, err := load.Aggregate(distributed, points, beam.Span)
	if err != nil {
		fail(err)
	}

	opts := solver.Options{MeshNodes: solveMesh, StressSamples: solveStressSamples}
	res, err := solver.Solve(beam, loads, opts)
	if err != nil {
		fail(err)
	}

	printSolveReport(res, loads)

	if solveASCII {
		fmt.Println(diagram.RenderResponse(res))
	}
	if solvePlotDir != "" {
		if err := diagram.ExportResponseCurves(res, solvePlotDir, solveAmplify); err != nil {
			fail(err)
		}
		if err := diagram.ExportStressHeatmap(res, solvePlotDir+"/stress.png"); err != nil {
			fail(err)
		}
		fmt.Printf("  Diagrams written to %s/\n\n", solvePlotDir)
	}
	if solvePDF != "" {
		if err := report.WritePDF(res, "", solvePDF); err != nil {
			fail(err)
		}
		fmt.Printf("  PDF report written to %s\n\n", solvePDF)
	}
	if solveXLSX != "" {
		if err := report.WriteExcel(res, solveXLSX); err != nil {
			fail(err)
		}
		fmt.Printf("  Workbook written to %s\n\n", solveXLSX)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func materialFromFlags() (material.Material, error) {
	if solveGrade != "" {
		return material.Preset(solveGrade)
	}
	return material.New("custom", solveYoungs*1e9, solveShearMod*1e9, solveDensity, solveFy*1e6)
}

// loadsFromFlags parses the repeated --udl and --point flags into SI loads.
func loadsFromFlags() ([]load.Distributed, []load.Point, error) {
	var distributed []load.Distributed
	for _, s := range solveUDLs {
		parts := strings.Split(s, ":")
		if len(parts) != 3 {
			return nil, nil, fmt.Errorf("bad --udl %q, want x0:x1:q", s)
		}
		vals, err := parseFloats(parts)
		if err != nil {
			return nil, nil, fmt.Errorf("bad --udl %q: %w", s, err)
		}
		distributed = append(distributed, load.Distributed{
			Start:     vals[0],
			End:       vals[1],
			Intensity: vals[2] * 1e3, // kN/m → N/m
		})
	}

	var points []load.Point
	for i, s := range solvePoints {
		parts := strings.Split(s, ":")
		if len(parts) != 2 && len(parts) != 3 {
			return nil, nil, fmt.Errorf("bad --point %q, want t:P[:label]", s)
		}
		vals, err := parseFloats(parts[:2])
		if err != nil {
			return nil, nil, fmt.Errorf("bad --point %q: %w", s, err)
		}
		label := fmt.Sprintf("P%d", i+1)
		if len(parts) == 3 {
			label = parts[2]
		}
		points = append(points, load.Point{
			Position:  vals[0],
			Magnitude: vals[1] * 1e3, // kN → N
			Label:     label,
		})
	}
	return distributed, points, nil
}

func parseFloats(parts []string) ([]float64, error) {
	vals := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

func printSolveReport(res *solver.SolutionResult, loads *load.Model) {
	b := res.Beam

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SIMPLY SUPPORTED BEAM ANALYSIS - EULER-BERNOULLI")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Span (L):\t%.3f m\n", b.Span)
	fmt.Fprintf(w, "  Material:\t%s\n", b.Material.Name)
	fmt.Fprintf(w, "  E:\t%.1f GPa\n", b.Material.Youngs/1e9)
	fmt.Fprintf(w, "  fy:\t%.1f MPa\n", b.Material.YieldStrength/1e6)
	fmt.Fprintf(w, "  Section:\t%s\n", b.Section.Kind)
	fmt.Fprintf(w, "  A:\t%.2f cm²\n", b.Section.Area*1e4)
	fmt.Fprintf(w, "  I:\t%.2f cm⁴\n", b.Section.Inertia*1e8)
	fmt.Fprintf(w, "  EI:\t%.4g N·m²\n", b.EI())
	fmt.Fprintf(w, "  Mesh:\t%d nodes\n", len(res.Grid))
	w.Flush()
	fmt.Println()

	if pts := loads.Points(); len(pts) > 0 {
		fmt.Println("POINT LOADS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, p := range pts {
			fmt.Fprintf(w, "  %s:\t%.2f kN at x=%.3f m\n", p.Label, p.Magnitude/1e3, p.X)
		}
		w.Flush()
		fmt.Println()
	}

	fmt.Println("REACTIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  R_left:\t%.2f kN\n", res.ReactionLeft/1e3)
	fmt.Fprintf(w, "  R_right:\t%.2f kN\n", res.ReactionRight/1e3)
	w.Flush()
	fmt.Println()

	probe := res.At(solveProbe)
	fmt.Println("RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Max deflection:\t%.3f mm\n", res.MaxDeflection*1e3)
	fmt.Fprintf(w, "  Max bending stress:\t%.2f MPa\n", res.MaxStress/1e6)
	fmt.Fprintf(w, "  x/L=%.2f deflection:\t%.3f mm\n", solveProbe, probe.Deflection*1e3)
	fmt.Fprintf(w, "  x/L=%.2f σ_top:\t%.2f MPa\n", solveProbe, probe.SigmaTop/1e6)
	fmt.Fprintf(w, "  x/L=%.2f σ_bottom:\t%.2f MPa\n", solveProbe, probe.SigmaBottom/1e6)
	w.Flush()
	fmt.Println()

	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  UTILIZATION σ/fy = %.3f               \n", res.Utilization)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()

	if res.Utilization > 1 {
		fmt.Println("  ⚠ Yield strength exceeded — reduce loads or increase the section.")
	} else {
		fmt.Println("  ✓ Section adequate (linear-elastic check).")
	}
	fmt.Println()
}
