package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gobeam/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gobeam",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gobeam v%s\n", version.Version)
		fmt.Println("Elastic Beam Response Solver")
		fmt.Println("Euler-Bernoulli theory, simply supported spans")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
