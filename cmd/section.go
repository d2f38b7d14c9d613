package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/section"
	"github.com/spf13/cobra"
)

var (
	// Section geometry inputs (mm)
	sectionShape      string
	sectionDepth      float64
	sectionFlangeW    float64
	sectionFlangeThk  float64
	sectionWebThk     float64
	sectionWidth      float64
	sectionHeight     float64
	sectionOuterWidth float64
	sectionWallThk    float64
	sectionDiameter   float64
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Derive cross-section properties (A, I, c)",
	Long: `Compute the area, second moment of area and extreme fiber distance
for one of the supported section families.

Examples:
  # 400mm deep I-beam
  gobeam section --shape ishape --depth 400 --flange-width 200 --flange-thk 18 --web-thk 12

  # Solid rectangle 120x400mm
  gobeam section --shape rect --width 120 --height 400

  # Square hollow section 250mm, 10mm wall
  gobeam section --shape tube --outer-width 250 --wall-thk 10

  # 150mm round bar
  gobeam section --shape circular --diameter 150`,
	Run: runSection,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
	addSectionFlags(sectionCmd)
}

// addSectionFlags registers the shared geometry flags (all dims in mm).
func addSectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&sectionShape, "shape", "rect", "Section family: ishape|rect|tube|circular")
	cmd.Flags().Float64Var(&sectionDepth, "depth", 400, "I-shape total depth h (mm)")
	cmd.Flags().Float64Var(&sectionFlangeW, "flange-width", 200, "I-shape flange width bf (mm)")
	cmd.Flags().Float64Var(&sectionFlangeThk, "flange-thk", 18, "I-shape flange thickness tf (mm)")
	cmd.Flags().Float64Var(&sectionWebThk, "web-thk", 12, "I-shape web thickness tw (mm)")
	cmd.Flags().Float64Var(&sectionWidth, "width", 120, "Rectangle width b (mm)")
	cmd.Flags().Float64Var(&sectionHeight, "height", 400, "Rectangle height h (mm)")
	cmd.Flags().Float64Var(&sectionOuterWidth, "outer-width", 250, "Tube outer width b (mm)")
	cmd.Flags().Float64Var(&sectionWallThk, "wall-thk", 10, "Tube wall thickness t (mm)")
	cmd.Flags().Float64Var(&sectionDiameter, "diameter", 150, "Circular bar diameter d (mm)")
}

// sectionFromFlags builds the section from the mm flag values.
func sectionFromFlags() (section.Section, error) {
	const mm = 1e-3
	switch sectionShape {
	case "ishape":
		return section.BuildIShape(section.IShapeParams{
			Depth:           sectionDepth * mm,
			FlangeWidth:     sectionFlangeW * mm,
			FlangeThickness: sectionFlangeThk * mm,
			WebThickness:    sectionWebThk * mm,
		})
	case "rect":
		return section.BuildRectangular(section.RectParams{
			Width:  sectionWidth * mm,
			Height: sectionHeight * mm,
		})
	case "tube":
		return section.BuildSquareTube(section.TubeParams{
			OuterWidth:    sectionOuterWidth * mm,
			WallThickness: sectionWallThk * mm,
		})
	case "circular":
		return section.BuildCircular(section.CircParams{
			Diameter: sectionDiameter * mm,
		})
	default:
		return section.Section{}, fmt.Errorf("unknown section shape %q", sectionShape)
	}
}

func runSection(cmd *cobra.Command, args []string) {
	sec, err := sectionFromFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SECTION PROPERTIES")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Family:\t%s\n", sec.Kind)
	fmt.Fprintf(w, "  Area (A):\t%.2f cm²\n", sec.Area*1e4)
	fmt.Fprintf(w, "  Moment of inertia (I):\t%.2f cm⁴\n", sec.Inertia*1e8)
	fmt.Fprintf(w, "  Extreme fiber (c):\t%.1f mm\n", sec.ExtremeFiber*1e3)
	fmt.Fprintf(w, "  Overall depth:\t%.1f mm\n", sec.Depth*1e3)
	w.Flush()
	fmt.Println()
}
