// Package attacks implements the deterministic, dependency-free static
// attack-mask tables for leaping pieces (knight, king, pawn captures) and
// the raw/trimmed ray templates the magic package hashes against.
//
// Grounded on the teacher's init.go (initKnightAttacks, initKingAttacks,
// initPawnAttacks, initBishopOccupancy, initRookOccupancy) and the ray
// walkers in movegen.go (genBishopAttacks, genRookAttacks), generalized
// from the teacher's inline NOT_A_FILE-style masking into named
// bitboard.Bitboard constants and exported so magic and movegen can both
// depend on this package without depending on each other.
package attacks

import (
	"github.com/LucDeCaf/mogen/bitboard"
	"github.com/LucDeCaf/mogen/chesstype"
)

// knightOffsets and kingOffsets are validated against the wrap-safe
// rank/file delta check in genKnightAttacks/genKingAttacks below; the
// literal offsets mirror spec.md's candidate set.
var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// onBoard reports whether the zero-based file/rank pair is a real square.
func onBoard(file, rank int) bool { return file >= 0 && file < 8 && rank >= 0 && rank < 8 }

func genKnightAttacks(sq int) bitboard.Bitboard {
	file, rank := sq%8, sq/8
	var attacks bitboard.Bitboard
	for _, d := range knightOffsets {
		f, r := file+d[0], rank+d[1]
		if onBoard(f, r) {
			attacks |= bitboard.FromSquare(r*8 + f)
		}
	}
	return attacks
}

func genKingAttacks(sq int) bitboard.Bitboard {
	file, rank := sq%8, sq/8
	var attacks bitboard.Bitboard
	for _, d := range kingOffsets {
		f, r := file+d[0], rank+d[1]
		if onBoard(f, r) {
			attacks |= bitboard.FromSquare(r*8 + f)
		}
	}
	return attacks
}

// genPawnCaptureAttacks returns the (at most two) squares a pawn of the
// given color standing on sq could capture on. Pawns on rank 1 or rank 8
// have an empty capture mask by convention (no pawn can legally stand
// there, but the table must still be total over all 64 squares).
func genPawnCaptureAttacks(sq int, c chesstype.Color) bitboard.Bitboard {
	file, rank := sq%8, sq/8
	if rank == 0 || rank == 7 {
		return bitboard.Empty
	}

	dir := c.Direction()
	var attacks bitboard.Bitboard
	for _, df := range [2]int{-1, 1} {
		f, r := file+df, rank+dir
		if onBoard(f, r) {
			attacks |= bitboard.FromSquare(r*8 + f)
		}
	}
	return attacks
}

// rayDirections for rooks (N, E, S, W) and bishops (NE, NW, SE, SW), each
// expressed as a (file delta, rank delta) step.
var rookDirections = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
var bishopDirections = [4][2]int{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}

// castRay walks from sq in the given direction, including every square it
// passes through (the "raw" ray used for the unclipped rook/bishop masks
// and, with a blocker set, as the true ray-trace attack set the magic
// engine's construction checks itself against).
func castRay(sq int, dir [2]int, blockers bitboard.Bitboard, stopAtBlocker bool) bitboard.Bitboard {
	file, rank := sq%8, sq/8
	var ray bitboard.Bitboard
	for {
		file += dir[0]
		rank += dir[1]
		if !onBoard(file, rank) {
			break
		}
		dest := bitboard.FromSquare(rank*8 + file)
		ray |= dest
		if stopAtBlocker && dest&blockers != 0 {
			break
		}
	}
	return ray
}

func genRookRay(sq int) bitboard.Bitboard {
	var ray bitboard.Bitboard
	for _, d := range rookDirections {
		ray |= castRay(sq, d, 0, false)
	}
	return ray
}

func genBishopRay(sq int) bitboard.Bitboard {
	var ray bitboard.Bitboard
	for _, d := range bishopDirections {
		ray |= castRay(sq, d, 0, false)
	}
	return ray
}

// RookAttacks ray-traces the true rook attack set for sq given an arbitrary
// occupancy: it stops (inclusively) at the first blocker in each direction.
// This is the ground truth the magic engine's construction validates
// against; it is not itself a table lookup.
func RookAttacks(sq int, occupancy bitboard.Bitboard) bitboard.Bitboard {
	var attacks bitboard.Bitboard
	for _, d := range rookDirections {
		attacks |= castRay(sq, d, occupancy, true)
	}
	return attacks
}

// BishopAttacks ray-traces the true bishop attack set for sq given an
// arbitrary occupancy. See RookAttacks.
func BishopAttacks(sq int, occupancy bitboard.Bitboard) bitboard.Bitboard {
	var attacks bitboard.Bitboard
	for _, d := range bishopDirections {
		attacks |= castRay(sq, d, occupancy, true)
	}
	return attacks
}

// rookBlockerMask trims a rook's raw ray mask to the relevant-blocker mask:
// edge squares that can never themselves block further motion are removed,
// except where the rook itself sits on that edge (in which case the ray
// never extends past it in the first place).
func rookBlockerMask(sq int) bitboard.Bitboard {
	file, rank := sq%8, sq/8
	mask := genRookRay(sq)
	if rank != 0 {
		mask &^= bitboard.Rank1
	}
	if rank != 7 {
		mask &^= bitboard.Rank8
	}
	if file != 0 {
		mask &^= bitboard.FileA
	}
	if file != 7 {
		mask &^= bitboard.FileH
	}
	return mask
}

// bishopBlockerMask trims a bishop's raw ray mask by dropping all four
// board edges: a bishop's diagonal rays always terminate on an edge, so
// edge occupancy never changes the attack set.
func bishopBlockerMask(sq int) bitboard.Bitboard {
	return genBishopRay(sq) &^ bitboard.Edges
}

// Precomputed, program-lifetime static tables. Deterministic and
// dependency-free, matching spec.md §4.B verbatim.
var (
	Knight       [64]bitboard.Bitboard
	King         [64]bitboard.Bitboard
	PawnCaptures [2][64]bitboard.Bitboard

	// RookRay/BishopRay are the raw (edge-inclusive) ray templates.
	RookRay   [64]bitboard.Bitboard
	BishopRay [64]bitboard.Bitboard

	// RookBlockerMask/BishopBlockerMask are the edge-trimmed
	// relevant-blocker masks the magic engine hashes against.
	RookBlockerMask   [64]bitboard.Bitboard
	BishopBlockerMask [64]bitboard.Bitboard
)

func init() {
	for sq := 0; sq < 64; sq++ {
		Knight[sq] = genKnightAttacks(sq)
		King[sq] = genKingAttacks(sq)
		PawnCaptures[chesstype.White][sq] = genPawnCaptureAttacks(sq, chesstype.White)
		PawnCaptures[chesstype.Black][sq] = genPawnCaptureAttacks(sq, chesstype.Black)

		RookRay[sq] = genRookRay(sq)
		BishopRay[sq] = genBishopRay(sq)

		RookBlockerMask[sq] = rookBlockerMask(sq)
		BishopBlockerMask[sq] = bishopBlockerMask(sq)
	}
}
