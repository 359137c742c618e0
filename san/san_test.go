package san

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LucDeCaf/mogen/board"
	"github.com/LucDeCaf/mogen/chesstype"
	"github.com/LucDeCaf/mogen/config"
	"github.com/LucDeCaf/mogen/fen"
	"github.com/LucDeCaf/mogen/movegen"
)

func newTestGenerator(t *testing.T) *movegen.Generator {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 99
	cfg.Parallel = false
	g, err := movegen.New(cfg)
	require.NoError(t, err)
	return g
}

func TestFormatPawnPushHasNoPieceLetter(t *testing.T) {
	pos := board.Starting()
	gen := newTestGenerator(t)
	var moves chesstype.MoveList
	gen.PseudolegalMoves(pos, &moves)

	mv := chesstype.NewMove(chesstype.NewSquare(4, 1), chesstype.NewSquare(4, 3))
	require.Equal(t, "e4", Format(mv, pos, moves, false, false))
}

func TestFormatKnightMoveHasPieceLetter(t *testing.T) {
	pos := board.Starting()
	gen := newTestGenerator(t)
	var moves chesstype.MoveList
	gen.PseudolegalMoves(pos, &moves)

	mv := chesstype.NewMove(chesstype.NewSquare(1, 0), chesstype.NewSquare(2, 2))
	require.Equal(t, "Nc3", Format(mv, pos, moves, false, false))
}

func TestFormatDisambiguatesByFileWhenTwoRooksShareATarget(t *testing.T) {
	pos, err := fen.Parse("4k3/8/8/8/8/8/8/R4R1K w - - 0 1")
	require.NoError(t, err)
	gen := newTestGenerator(t)
	var moves chesstype.MoveList
	gen.PseudolegalMoves(pos, &moves)

	mv := chesstype.NewMove(chesstype.NewSquare(0, 0), chesstype.NewSquare(3, 0))
	require.Equal(t, "Rad1", Format(mv, pos, moves, false, false))
}

func TestFormatCaptureIncludesX(t *testing.T) {
	pos, err := fen.Parse("8/8/8/3p4/4P3/8/8/4K2k w - - 0 1")
	require.NoError(t, err)
	gen := newTestGenerator(t)
	var moves chesstype.MoveList
	gen.PseudolegalMoves(pos, &moves)

	mv := chesstype.NewMove(chesstype.NewSquare(4, 3), chesstype.NewSquare(3, 4))
	require.Equal(t, "exd5", Format(mv, pos, moves, false, false))
}

func TestFormatPromotionAppendsEqualsLetter(t *testing.T) {
	pos, err := fen.Parse("8/4P3/8/8/8/8/8/4K2k w - - 0 1")
	require.NoError(t, err)
	gen := newTestGenerator(t)
	var moves chesstype.MoveList
	gen.PseudolegalMoves(pos, &moves)

	mv := chesstype.NewPromotionMove(chesstype.NewSquare(4, 6), chesstype.NewSquare(4, 7), chesstype.Queen)
	require.Equal(t, "e8=Q", Format(mv, pos, moves, false, false))
}

func TestFormatAppendsCheckAndCheckmateSuffixes(t *testing.T) {
	pos := board.Starting()
	gen := newTestGenerator(t)
	var moves chesstype.MoveList
	gen.PseudolegalMoves(pos, &moves)

	mv := chesstype.NewMove(chesstype.NewSquare(4, 1), chesstype.NewSquare(4, 3))
	require.Equal(t, "e4+", Format(mv, pos, moves, true, false))
	require.Equal(t, "e4#", Format(mv, pos, moves, true, true))
}
