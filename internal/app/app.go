//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"contagion/internal/grid"
	"contagion/internal/render"
	"contagion/internal/scenario"
	"contagion/internal/spread"
)

// Game adapts a spread simulation to the ebiten.Game interface. It steps the
// sequence at a fixed rate and holds the final state once it converges.
type Game struct {
	cfg     scenario.Config
	sim     *spread.Simulation
	cur     *grid.Grid
	painter *render.GridPainter
	timer   *fixedStep

	onColor  color.Color
	offColor color.Color

	scale    int
	sps      int
	paused   bool
	stepOnce bool
	step     int
}

// newGame constructs a Game for the provided scenario. The scenario must be
// two-dimensional.
func newGame(cfg scenario.Config, scale, sps int) (*Game, error) {
	g := &Game{
		cfg:      cfg,
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		sps:      sps,
	}
	if err := g.reset(); err != nil {
		return nil, err
	}
	g.painter = render.NewGridPainter(g.cur.Dim(1), g.cur.Dim(0))
	return g, nil
}

// reset rebuilds the simulation from the scenario and pulls its first state.
func (g *Game) reset() error {
	_, sim, err := g.cfg.Build()
	if err != nil {
		return err
	}
	first, ok := sim.Next()
	if !ok {
		return fmt.Errorf("simulation produced no states")
	}
	g.sim = sim
	g.cur = first
	g.step = 0
	g.timer = newFixedStep(g.sps)
	g.stepOnce = false
	return nil
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.stepOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.reset(); err != nil {
			return err
		}
	}

	if g.timer.shouldStep() && (!g.paused || g.stepOnce) && !g.sim.Done() {
		if next, ok := g.sim.Next(); ok {
			g.cur = next
			g.step++
		}
		g.stepOnce = false
	}

	status := fmt.Sprintf("contagion — %s m=%d step %d (%d/%d infected)",
		g.sim.Boundary(), g.sim.Threshold(), g.step, g.cur.Count(), g.cur.Len())
	if g.sim.Done() {
		status += " — converged"
	}
	ebiten.SetWindowTitle(status)
	return nil
}

// Draw renders the current state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.cur.Cells(), g.onColor, g.offColor, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(int, int) (int, int) {
	return g.cur.Dim(1) * g.scale, g.cur.Dim(0) * g.scale
}

// Run opens a window and animates the scenario until the user quits.
func Run(cfg scenario.Config, scale, sps int) error {
	game, err := newGame(cfg, scale, sps)
	if err != nil {
		return err
	}
	ebiten.SetWindowSize(game.cur.Dim(1)*scale, game.cur.Dim(0)*scale)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
