package fen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LucDeCaf/mogen/board"
	"github.com/LucDeCaf/mogen/chesstype"
)

const startingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func TestParseStartingFENYieldsStartingBoard(t *testing.T) {
	pos, err := Parse(startingFEN)
	require.NoError(t, err)
	require.Equal(t, board.Starting(), pos)
}

func TestFormatStartingBoardRoundTrips(t *testing.T) {
	require.Equal(t, startingFEN, Format(board.Starting()))
}

func TestParseFormatRoundTripsArbitraryPosition(t *testing.T) {
	fenStr := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w Qk a6 5 12"
	pos, err := Parse(fenStr)
	require.NoError(t, err)
	require.Equal(t, fenStr, Format(pos))
}

func TestFlagsRoundTripForAllCastlingRights(t *testing.T) {
	pos, err := Parse("8/8/8/8/8/8/8/8 w KQkq - 0 1")
	require.NoError(t, err)
	require.Equal(t, chesstype.CastlingRights(0b1111), pos.CastlingRights())
}

func TestWrongSectionCount(t *testing.T) {
	_, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0")
	requireKind(t, err, WrongSectionCount)
}

func TestBadPosition(t *testing.T) {
	_, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBZZ w KQkq - 0 1")
	requireKind(t, err, BadPosition)
}

func TestBadPositionWrongRankLength(t *testing.T) {
	_, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPP/RNBQKBNR w KQkq - 0 1")
	requireKind(t, err, BadPosition)
}

func TestBadActiveColor(t *testing.T) {
	_, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1")
	requireKind(t, err, BadActiveColor)
}

func TestBadCastlingRights(t *testing.T) {
	_, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkx - 0 1")
	requireKind(t, err, BadCastlingRights)
}

func TestBadEnPassant(t *testing.T) {
	_, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1")
	requireKind(t, err, BadEnPassant)
}

func TestBadHalfmoves(t *testing.T) {
	_, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1")
	requireKind(t, err, BadHalfmoves)
}

func TestBadFullmoves(t *testing.T) {
	_, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 x")
	requireKind(t, err, BadFullmoves)
}

func requireKind(t *testing.T, err error, want ErrorKind) {
	t.Helper()
	require.Error(t, err)
	var fenErr *Error
	require.True(t, errors.As(err, &fenErr))
	require.Equal(t, want, fenErr.Kind)
}
