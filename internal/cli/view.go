package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"contagion/internal/app"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Animate a 2-D scenario in a window (requires the ebiten build tag)",
	Long: `View opens a window and animates a two-dimensional scenario step ` +
		`by step. Space pauses, N advances one step, R restarts, Q or Escape ` +
		`quits. Build with -tags ebiten to enable it.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := configFromFlags(cmd)
		if err != nil {
			return err
		}
		if len(cfg.Shape) != 2 {
			return fmt.Errorf("view needs a 2-D shape, got %d axes", len(cfg.Shape))
		}
		scale, _ := cmd.Flags().GetInt("scale")
		sps, _ := cmd.Flags().GetInt("sps")
		return app.Run(cfg, scale, sps)
	},
}

func init() {
	bindScenarioFlags(viewCmd)
	viewCmd.Flags().Int("scale", 8, "pixel scale multiplier")
	viewCmd.Flags().Int("sps", 4, "simulation steps per second")
	rootCmd.AddCommand(viewCmd)
}
