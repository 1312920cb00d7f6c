package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"contagion/internal/grid"
	"contagion/internal/scenario"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scenario headless and print every state",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := configFromFlags(cmd)
		if err != nil {
			return err
		}
		_, sim, err := cfg.Build()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		quiet, _ := cmd.Flags().GetBool("quiet")
		step := 0
		var last *grid.Grid
		for g := range sim.All() {
			if !quiet {
				fmt.Fprintf(out, "step %d:\n%s\n", step, formatGrid(g))
			}
			step++
			last = g
		}
		fmt.Fprintf(out, "converged after %d states (%d/%d infected)\n",
			step, last.Count(), last.Len())
		if last.Full() {
			fmt.Fprintln(out, "every cell is infected")
		} else {
			fmt.Fprintln(out, "the infection stopped spreading")
		}
		return nil
	},
}

// configFromFlags loads the scenario file (if any) and layers changed flags
// on top of it.
func configFromFlags(cmd *cobra.Command) (scenario.Config, error) {
	cfg := scenario.Default()
	fs := cmd.Flags()
	if path, _ := fs.GetString("scenario"); path != "" {
		var err error
		if cfg, err = scenario.Load(path); err != nil {
			return cfg, err
		}
	}
	if fs.Changed("shape") {
		cfg.Shape, _ = fs.GetIntSlice("shape")
	}
	if fs.Changed("threshold") {
		m, _ := fs.GetInt("threshold")
		cfg.Threshold = &m
	}
	if fs.Changed("boundary") {
		cfg.Boundary, _ = fs.GetString("boundary")
	}
	if fs.Changed("seeding") {
		cfg.Seeding, _ = fs.GetString("seeding")
	}
	if fs.Changed("seed") {
		cfg.Seed, _ = fs.GetInt64("seed")
	}
	if fs.Changed("density") {
		cfg.Density, _ = fs.GetFloat64("density")
	}
	return cfg, nil
}

// bindScenarioFlags attaches the scenario parameters to a command.
func bindScenarioFlags(cmd *cobra.Command) {
	def := scenario.Default()
	fs := cmd.Flags()
	fs.StringP("scenario", "f", "", "scenario YAML file")
	fs.IntSlice("shape", def.Shape, "grid shape, one size per axis")
	fs.IntP("threshold", "m", 2, "infected neighbors needed to infect a cell")
	fs.String("boundary", def.Boundary, "boundary policy: lattice or torus")
	fs.String("seeding", def.Seeding, "initial state: center, random or diagonal")
	fs.Int64("seed", def.Seed, "seed for random seeding")
	fs.Float64("density", def.Density, "infection density for random seeding")
}

func init() {
	bindScenarioFlags(runCmd)
	runCmd.Flags().BoolP("quiet", "q", false, "print only the final summary")
	rootCmd.AddCommand(runCmd)
}
