package perft

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LucDeCaf/mogen/fen"
	"github.com/LucDeCaf/mogen/zobrist"
)

func TestPerftTTAgreesWithPerft(t *testing.T) {
	gen := newTestGenerator(t)
	pos, err := fen.Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)

	tt := NewTranspositionTable(zobrist.New(11, 22))
	for depth := 0; depth <= 3; depth++ {
		require.Equal(t, Perft(pos, gen, depth), tt.PerftTT(pos, gen, depth))
	}
}

func TestPerftTTReusesCacheAcrossCalls(t *testing.T) {
	gen := newTestGenerator(t)
	pos, err := fen.Parse("8/8/8/3k4/8/3Q4/8/3K4 w - - 0 1")
	require.NoError(t, err)

	tt := NewTranspositionTable(zobrist.New(5, 6))
	first := tt.PerftTT(pos, gen, 3)
	cacheSizeAfterFirst := len(tt.cache)
	second := tt.PerftTT(pos, gen, 3)

	require.Equal(t, first, second)
	require.Equal(t, cacheSizeAfterFirst, len(tt.cache))
}
