package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gobeam/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gobeam",
	Short: "Elastic Beam Response Solver",
	Long: `gobeam - Go Elastic Beam Analyzer

A CLI tool for the static analysis of simply supported steel beams
under combined distributed and point transverse loads.

This tool computes:
  - Support reactions by static equilibrium
  - Shear force and bending moment diagrams
  - Deflection by double integration (Euler-Bernoulli)
  - Bending-stress field over the section depth
  - Yield utilization ratio (max stress / fy)

Sections: I-shape, rectangular, square tube and circular bars.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gobeam v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Elastic Beam Analyzer                                ║")
		fmt.Printf("  ║   %s ©  %s                             ║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the static analysis of simply supported beams")
		fmt.Println("  under combined distributed and point loads.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Shear, moment and deflection diagrams (terminal and PNG)")
		fmt.Println("    • Bending-stress heatmap over the section depth")
		fmt.Println("    • Section property derivation for four section families")
		fmt.Println("    • PDF and xlsx result reports")
		fmt.Println()
		fmt.Println("  Use 'gobeam --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
