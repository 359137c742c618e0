package board

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LucDeCaf/mogen/bitboard"
	"github.com/LucDeCaf/mogen/chesstype"
)

func TestStartingPositionInvariants(t *testing.T) {
	p := Starting()

	var union bitboard.Bitboard
	for piece := chesstype.Pawn; piece <= chesstype.King; piece++ {
		require.Zero(t, p.Planes[piece]&union, "piece planes must be pairwise disjoint")
		union |= p.Planes[piece]
	}

	require.Zero(t, p.Planes[planeWhiteOccupancy]&p.Planes[planeBlackOccupancy])
	require.Equal(t, union, p.Planes[planeWhiteOccupancy]|p.Planes[planeBlackOccupancy])

	require.Equal(t, 1, (p.Planes[chesstype.King] & p.Planes[planeWhiteOccupancy]).CountBits())
	require.Equal(t, 1, (p.Planes[chesstype.King] & p.Planes[planeBlackOccupancy]).CountBits())

	require.Equal(t, chesstype.White, p.ActiveColor)
	require.Equal(t, chesstype.CastlingRights(0b1111), p.CastlingRights())
	_, ok := p.EnPassant()
	require.False(t, ok)
}

// TestDoublePushThenEnPassantCapture mirrors the concrete scenario: empty
// board, White pawn e2, Black pawn d4; e2e4 sets ep_file=4; Black's d4e3
// captures en passant, leaving a single Black pawn on e3.
func TestDoublePushThenEnPassantCapture(t *testing.T) {
	p := Empty()
	e2, e4, d4, e3 := chesstype.Square(12), chesstype.Square(28), chesstype.Square(27), chesstype.Square(20)

	p.Planes[chesstype.Pawn] = bitboard.FromSquare(int(e2)) | bitboard.FromSquare(int(d4))
	p.Planes[planeWhiteOccupancy] = bitboard.FromSquare(int(e2))
	p.Planes[planeBlackOccupancy] = bitboard.FromSquare(int(d4))
	p.ActiveColor = chesstype.White

	afterPush := p.MakeMove(chesstype.NewMove(e2, e4))
	file, ok := afterPush.EnPassant()
	require.True(t, ok)
	require.Equal(t, 4, file)
	require.Equal(t, chesstype.Black, afterPush.ActiveColor)

	afterCapture := afterPush.MakeMove(chesstype.NewMove(d4, e3))
	require.Equal(t, 1, afterCapture.Planes[chesstype.Pawn].CountBits())
	require.Equal(t, bitboard.FromSquare(int(e3)), afterCapture.Planes[chesstype.Pawn])
	require.True(t, afterCapture.Planes[planeWhiteOccupancy].IsEmpty())
	_, ok = afterCapture.EnPassant()
	require.False(t, ok)
}

func TestMakeMoveNormalCapture(t *testing.T) {
	p := Empty()
	a1, h8 := chesstype.Square(0), chesstype.Square(63)

	p.Planes[chesstype.Rook] = bitboard.FromSquare(int(a1))
	p.Planes[planeWhiteOccupancy] = bitboard.FromSquare(int(a1))
	p.Planes[chesstype.Queen] = bitboard.FromSquare(int(h8))
	p.Planes[planeBlackOccupancy] = bitboard.FromSquare(int(h8))
	p.ActiveColor = chesstype.White

	next := p.MakeMove(chesstype.NewMove(a1, h8))
	require.True(t, next.Planes[chesstype.Queen].IsEmpty())
	require.Equal(t, bitboard.FromSquare(int(h8)), next.Planes[chesstype.Rook])
	require.Equal(t, bitboard.FromSquare(int(h8)), next.Planes[planeWhiteOccupancy])
	require.True(t, next.Planes[planeBlackOccupancy].IsEmpty())
}

func TestMakeMovePromotion(t *testing.T) {
	p := Empty()
	b7, c8 := chesstype.Square(49), chesstype.Square(58)

	p.Planes[chesstype.Pawn] = bitboard.FromSquare(int(b7))
	p.Planes[planeWhiteOccupancy] = bitboard.FromSquare(int(b7))
	p.ActiveColor = chesstype.White

	next := p.MakeMove(chesstype.NewPromotionMove(b7, c8, chesstype.Queen))
	require.True(t, next.Planes[chesstype.Pawn].IsEmpty())
	require.Equal(t, bitboard.FromSquare(int(c8)), next.Planes[chesstype.Queen])
}

func TestMakeMoveFromEmptySquareIsNoopExceptEnPassantClear(t *testing.T) {
	p := Starting()
	p.SetEnPassant(3)

	unusedSquare := chesstype.Square(20) // e3, empty on the starting board
	next := p.MakeMove(chesstype.NewMove(unusedSquare, chesstype.Square(28)))

	require.Equal(t, p.Planes, next.Planes)
	_, ok := next.EnPassant()
	require.False(t, ok)
}

func TestMakeMoveDoesNotTouchCastlingRightsOrClocks(t *testing.T) {
	p := Starting()
	p.HalfmoveCnt = 7
	p.FullmoveCnt = 12

	next := p.MakeMove(chesstype.NewMove(chesstype.Square(8), chesstype.Square(16))) // a2a3
	require.Equal(t, p.CastlingRights(), next.CastlingRights())
	require.Equal(t, p.HalfmoveCnt, next.HalfmoveCnt)
	require.Equal(t, p.FullmoveCnt, next.FullmoveCnt)
}
