//go:build !ebiten

// Package app hosts the windowed viewer for two-dimensional scenarios. The
// real implementation requires the ebiten build tag; this stub keeps the
// headless build compiling.
package app

import (
	"errors"

	"contagion/internal/scenario"
)

// Run reports that the GUI build tag is missing.
func Run(scenario.Config, int, int) error {
	return errors.New("the viewer requires building with the 'ebiten' tag")
}
