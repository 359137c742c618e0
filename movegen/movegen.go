// Package movegen generates pseudolegal moves from a board.Position: own-
// piece blocking and enemy capture are handled correctly, but moves that
// leave the own king in check are not filtered, and castling is not
// emitted.
//
// Grounded on the teacher's movegen.go (genNormalMoves, genPawnMoves,
// genKingMoves's non-castling half), generalized from the teacher's
// copy-make legal generator down to a pure pseudolegal generator operating
// over board.Position's eight-plane layout instead of the teacher's
// 15-plane Bitboards array, and wired against magic.Table instead of the
// teacher's package-level lookupBishopAttacks/lookupRookAttacks globals.
package movegen

import (
	"github.com/LucDeCaf/mogen/attacks"
	"github.com/LucDeCaf/mogen/bitboard"
	"github.com/LucDeCaf/mogen/board"
	"github.com/LucDeCaf/mogen/chesstype"
	"github.com/LucDeCaf/mogen/config"
	"github.com/LucDeCaf/mogen/magic"
)

// Generator wraps the magic tables needed to answer sliding-piece attack
// queries. Built once via New; PseudolegalMoves and the per-piece
// generators below are pure, read-only functions of a Generator and a
// Position.
type Generator struct {
	magic *magic.Table
}

// New builds a Generator, running the magic-number search once.
func New(cfg config.MagicSearch) (*Generator, error) {
	table, err := magic.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Generator{magic: table}, nil
}

// PseudolegalMoves appends every pseudolegal move available to
// pos.ActiveColor into out, in the order Knight, Bishop, Rook, Queen,
// King, Pawn-pushes, Pawn-captures.
func (g *Generator) PseudolegalMoves(pos board.Position, out *chesstype.MoveList) {
	c := pos.ActiveColor
	friendly := pos.Friendly(c)

	g.leaperMoves(pos.Planes[chesstype.Knight]&friendly, attacks.Knight[:], friendly, out)
	g.sliderMoves(pos.Planes[chesstype.Bishop]&friendly, pos, friendly, g.magic.BishopAttacks, out)
	g.sliderMoves(pos.Planes[chesstype.Rook]&friendly, pos, friendly, g.magic.RookAttacks, out)
	g.queenMoves(pos, friendly, out)
	g.leaperMoves(pos.Planes[chesstype.King]&friendly, attacks.King[:], friendly, out)
	g.pawnPushes(pos, c, out)
	g.pawnCaptures(pos, c, out)
}

// leaperMoves drives the shared knight/king emission loop: for every piece
// in pieces, targets = table[from] &^ friendly.
func (g *Generator) leaperMoves(pieces bitboard.Bitboard, table []bitboard.Bitboard, friendly bitboard.Bitboard, out *chesstype.MoveList) {
	for !pieces.IsEmpty() {
		from := bitboard.PopLSB(&pieces)
		targets := table[from] &^ friendly
		for !targets.IsEmpty() {
			to := bitboard.PopLSB(&targets)
			out.Push(chesstype.NewMove(chesstype.Square(from), chesstype.Square(to)))
		}
	}
}

// sliderMoves drives the shared bishop/rook emission loop.
func (g *Generator) sliderMoves(pieces bitboard.Bitboard, pos board.Position, friendly bitboard.Bitboard, lookup func(int, bitboard.Bitboard) bitboard.Bitboard, out *chesstype.MoveList) {
	occupied := pos.Occupied()
	for !pieces.IsEmpty() {
		from := bitboard.PopLSB(&pieces)
		targets := lookup(from, occupied) &^ friendly
		for !targets.IsEmpty() {
			to := bitboard.PopLSB(&targets)
			out.Push(chesstype.NewMove(chesstype.Square(from), chesstype.Square(to)))
		}
	}
}

// queenMoves unions the bishop and rook generators from each queen square.
func (g *Generator) queenMoves(pos board.Position, friendly bitboard.Bitboard, out *chesstype.MoveList) {
	queens := pos.Planes[chesstype.Queen] & friendly
	occupied := pos.Occupied()
	for !queens.IsEmpty() {
		from := bitboard.PopLSB(&queens)
		targets := g.magic.QueenAttacks(from, occupied) &^ friendly
		for !targets.IsEmpty() {
			to := bitboard.PopLSB(&targets)
			out.Push(chesstype.NewMove(chesstype.Square(from), chesstype.Square(to)))
		}
	}
}

// pushPromotionFanOut emits either the four promotion moves or a single
// plain move, depending on whether to lands on the back rank.
func pushPromotionFanOut(from, to chesstype.Square, out *chesstype.MoveList) {
	if to.Rank() == 0 || to.Rank() == 7 {
		out.Push(chesstype.NewPromotionMove(from, to, chesstype.Knight))
		out.Push(chesstype.NewPromotionMove(from, to, chesstype.Bishop))
		out.Push(chesstype.NewPromotionMove(from, to, chesstype.Rook))
		out.Push(chesstype.NewPromotionMove(from, to, chesstype.Queen))
		return
	}
	out.Push(chesstype.NewMove(from, to))
}

// startingRank returns the rank pawns of color c begin the game on: rank 2
// (index 1) for White, rank 7 (index 6) for Black.
func startingRank(c chesstype.Color) bitboard.Bitboard {
	if c == chesstype.White {
		return bitboard.Rank2
	}
	return bitboard.Rank7
}

// shift moves every bit in b by n squares (n>0 shifts north/up the board,
// n<0 shifts south/down), discarding bits that would fall off either edge.
func shift(b bitboard.Bitboard, n int) bitboard.Bitboard {
	if n >= 0 {
		return b << uint(n)
	}
	return b >> uint(-n)
}

// pawnPushes emits single and double pawn pushes with promotion fan-out,
// per spec.md §4.D.
func (g *Generator) pawnPushes(pos board.Position, c chesstype.Color, out *chesstype.MoveList) {
	ownPawns := pos.Planes[chesstype.Pawn] & pos.Friendly(c)
	blocked := ^pos.Occupied()
	dir := 8 * c.Direction()

	single := shift(ownPawns, dir) & blocked
	remaining := single
	for !remaining.IsEmpty() {
		to := bitboard.PopLSB(&remaining)
		from := chesstype.Square(to - dir)
		pushPromotionFanOut(from, chesstype.Square(to), out)
	}

	startPawns := ownPawns & startingRank(c)
	doubleTargets := shift(shift(startPawns, dir)&blocked, dir) & blocked
	for !doubleTargets.IsEmpty() {
		to := bitboard.PopLSB(&doubleTargets)
		from := chesstype.Square(to - 2*dir)
		out.Push(chesstype.NewMove(from, chesstype.Square(to)))
	}
}

// epCaptureRank mirrors board.epCaptureRank: rank 6 (index 5) for White,
// rank 3 (index 2) for Black.
func epCaptureRank(by chesstype.Color) int {
	if by == chesstype.White {
		return 5
	}
	return 2
}

// pawnCaptures emits pawn captures, including en passant, with promotion
// fan-out, per spec.md §4.D.
func (g *Generator) pawnCaptures(pos board.Position, c chesstype.Color, out *chesstype.MoveList) {
	ownPawns := pos.Planes[chesstype.Pawn] & pos.Friendly(c)
	enemy := pos.Enemy(c)

	var epTarget bitboard.Bitboard
	if file, ok := pos.EnPassant(); ok {
		sq := chesstype.NewSquare(file, epCaptureRank(c))
		epTarget = bitboard.FromSquare(int(sq))
	}

	pawns := ownPawns
	for !pawns.IsEmpty() {
		from := bitboard.PopLSB(&pawns)
		targets := attacks.PawnCaptures[c][from] & (enemy | epTarget)
		for !targets.IsEmpty() {
			to := bitboard.PopLSB(&targets)
			pushPromotionFanOut(chesstype.Square(from), chesstype.Square(to), out)
		}
	}
}

// Attacked reports whether sq is attacked by any piece of color by in pos.
// This lives in movegen rather than attacks because it needs board.Position
// and the magic tables together; attacks must stay free of a board
// dependency to avoid an import cycle between attacks and board.
func (g *Generator) Attacked(pos board.Position, sq chesstype.Square, by chesstype.Color) bool {
	enemyOccupied := pos.Planes[board.OccupancyPlane(by)]
	occupied := pos.Occupied()

	if attacks.Knight[sq]&pos.Planes[chesstype.Knight]&enemyOccupied != 0 {
		return true
	}
	if attacks.King[sq]&pos.Planes[chesstype.King]&enemyOccupied != 0 {
		return true
	}
	// A pawn of color `by` attacks sq when sq is in that pawn's own
	// PawnCaptures[by] mask, the same mask used for generation.
	sqBit := bitboard.FromSquare(int(sq))
	pawns := pos.Planes[chesstype.Pawn] & enemyOccupied
	for !pawns.IsEmpty() {
		from := bitboard.PopLSB(&pawns)
		if attacks.PawnCaptures[by][from]&sqBit != 0 {
			return true
		}
	}
	if g.magic.BishopAttacks(int(sq), occupied)&pos.Planes[chesstype.Bishop]&enemyOccupied != 0 {
		return true
	}
	if g.magic.RookAttacks(int(sq), occupied)&pos.Planes[chesstype.Rook]&enemyOccupied != 0 {
		return true
	}
	if g.magic.QueenAttacks(int(sq), occupied)&pos.Planes[chesstype.Queen]&enemyOccupied != 0 {
		return true
	}
	return false
}
