package perft

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/LucDeCaf/mogen/config"
	"github.com/LucDeCaf/mogen/fen"
	"github.com/LucDeCaf/mogen/movegen"
)

type fixture struct {
	Name  string `yaml:"name"`
	FEN   string `yaml:"fen"`
	Depth int    `yaml:"depth"`
	Nodes uint64 `yaml:"nodes"`
}

func loadFixtures(t *testing.T) []fixture {
	t.Helper()
	data, err := os.ReadFile("testdata/perft_fixtures.yaml")
	require.NoError(t, err)

	var fixtures []fixture
	require.NoError(t, yaml.Unmarshal(data, &fixtures))
	return fixtures
}

func newTestGenerator(t *testing.T) *movegen.Generator {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 7
	cfg.Parallel = false
	g, err := movegen.New(cfg)
	require.NoError(t, err)
	return g
}

func TestPerftAgainstFixtures(t *testing.T) {
	gen := newTestGenerator(t)

	for _, f := range loadFixtures(t) {
		f := f
		t.Run(f.Name, func(t *testing.T) {
			pos, err := fen.Parse(f.FEN)
			require.NoError(t, err)

			got := Perft(pos, gen, f.Depth)
			require.Equal(t, f.Nodes, got)
		})
	}
}

func TestPerftDepthZeroIsOne(t *testing.T) {
	gen := newTestGenerator(t)
	pos, err := fen.Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)
	require.Equal(t, uint64(1), Perft(pos, gen, 0))
}

func TestDivideSumsToPerft(t *testing.T) {
	gen := newTestGenerator(t)
	pos, err := fen.Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)

	entries, total := Divide(pos, gen, 2)
	require.Equal(t, Perft(pos, gen, 2), total)

	var sum uint64
	for _, e := range entries {
		sum += e.Nodes
	}
	require.Equal(t, total, sum)
	require.Len(t, entries, 20)
}

func TestVerboseCountsStartingPositionCapturesAsZeroAtDepthOne(t *testing.T) {
	gen := newTestGenerator(t)
	pos, err := fen.Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)

	result := Verbose(pos, gen, 1)
	require.Equal(t, uint64(20), result.Nodes)
	require.Zero(t, result.Captures)
	require.Zero(t, result.Promotions)
}
