// Package cli provides the command-line interface for contagion.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "contagion",
	Short: "Simulate monotone infection spread on N-dimensional grids",
	Long: `Contagion simulates discrete-time infection spread on an ` +
		`N-dimensional binary grid: a cell becomes infected once at least m ` +
		`of its axis-aligned neighbors are infected, and infection is ` +
		`permanent. Grids are either bounded (lattice) or wrap around every ` +
		`axis (torus).`,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
