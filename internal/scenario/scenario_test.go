package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"contagion/internal/grid"
	"contagion/internal/spread"
)

func TestLoadKeepsDefaultsForAbsentFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	data := "shape: [3, 3, 3]\nthreshold: 0\nboundary: torus\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []int{3, 3, 3}, cfg.Shape)
	require.NotNil(t, cfg.Threshold)
	require.Equal(t, 0, *cfg.Threshold)
	require.Equal(t, "torus", cfg.Boundary)

	def := Default()
	require.Equal(t, def.Seeding, cfg.Seeding)
	require.Equal(t, def.Seed, cfg.Seed)
	require.Equal(t, def.Density, cfg.Density)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestThresholdDefaultsWhenUnset(t *testing.T) {
	cfg := Default()
	require.Nil(t, cfg.Threshold)
	require.Equal(t, spread.DefaultThreshold, cfg.ThresholdOrDefault())

	m := 0
	cfg.Threshold = &m
	require.Equal(t, 0, cfg.ThresholdOrDefault())
}

func TestBuildWiresScenarioIntoSimulation(t *testing.T) {
	cfg := Default()
	cfg.Boundary = "torus"
	start, sim, err := cfg.Build()
	require.NoError(t, err)
	require.Equal(t, []int{16, 16}, start.Shape())
	require.Equal(t, 1, start.Count())
	require.Equal(t, spread.Torus, sim.Boundary())
	require.Equal(t, spread.DefaultThreshold, sim.Threshold())

	cfg.Boundary = "signpost"
	_, _, err = cfg.Build()
	require.Error(t, err)

	cfg = Default()
	cfg.Shape = []int{4, 0}
	_, _, err = cfg.Build()
	require.ErrorIs(t, err, grid.ErrInvalidShape)
}

func TestSeedCenter(t *testing.T) {
	g, err := grid.New(4, 5)
	require.NoError(t, err)
	require.NoError(t, Seed(g, SeedCenter, 0, 0))
	require.Equal(t, 1, g.Count())
	require.EqualValues(t, 1, g.At(2, 2))
}

func TestSeedDiagonalMatchesRolledIdentityPlanes(t *testing.T) {
	g, err := grid.New(3, 3, 3)
	require.NoError(t, err)
	require.NoError(t, Seed(g, SeedDiagonal, 0, 0))

	// Layer i is the identity plane rolled i steps down: cell (i, r, c)
	// is infected exactly when (r - i) mod 3 == c.
	for i := 0; i < 3; i++ {
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				want := uint8(0)
				if ((r-i)%3+3)%3 == c {
					want = 1
				}
				require.Equal(t, want, g.At(i, r, c), "cell (%d,%d,%d)", i, r, c)
			}
		}
	}
	require.Equal(t, 9, g.Count())
}

func TestSeedDiagonal2DIsTheMainDiagonal(t *testing.T) {
	g, err := grid.New(4, 4)
	require.NoError(t, err)
	require.NoError(t, Seed(g, SeedDiagonal, 0, 0))
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			require.Equal(t, r == c, g.At(r, c) == 1, "cell (%d,%d)", r, c)
		}
	}
}

func TestSeedRandomIsDeterministic(t *testing.T) {
	a, err := grid.New(8, 8)
	require.NoError(t, err)
	b, err := grid.New(8, 8)
	require.NoError(t, err)

	require.NoError(t, Seed(a, SeedRandom, 99, 0.3))
	require.NoError(t, Seed(b, SeedRandom, 99, 0.3))
	require.True(t, a.Equal(b))

	require.NoError(t, Seed(a, SeedRandom, 99, 0))
	require.Equal(t, 0, a.Count())
	require.NoError(t, Seed(a, SeedRandom, 99, 1))
	require.True(t, a.Full())
}

func TestSeedUnknownMode(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	require.Error(t, Seed(g, "spiral", 0, 0))
}
