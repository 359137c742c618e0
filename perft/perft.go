// Package perft counts leaf nodes reached by iterated pseudolegal move
// application, and reports per-first-move breakdowns via Divide.
//
// Grounded on the teacher's internal/perft.perft/perftVerbose, generalized
// from the teacher's legal-move generator (chego.GenLegalMoves) to this
// core's pseudolegal generator: perft here is pseudolegal-perft and will
// not match published legal-perft numbers beyond depth 1.
package perft

import (
	"github.com/LucDeCaf/mogen/board"
	"github.com/LucDeCaf/mogen/chesstype"
	"github.com/LucDeCaf/mogen/movegen"
)

// Perft returns the number of leaf positions at depth d reached by
// iterated pseudolegal move application. Perft(_, 0) = 1.
func Perft(pos board.Position, gen *movegen.Generator, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var moves chesstype.MoveList
	gen.PseudolegalMoves(pos, &moves)

	if depth == 1 {
		return uint64(moves.Len)
	}

	var nodes uint64
	for i := 0; i < moves.Len; i++ {
		nodes += Perft(pos.MakeMove(moves.Moves[i]), gen, depth-1)
	}
	return nodes
}

// DivideEntry is one first-move's subtree node count.
type DivideEntry struct {
	Move  chesstype.Move
	Nodes uint64
}

// Divide returns, for every pseudolegal first move from pos, the node
// count of perft(make_move(pos, m), depth-1), plus their sum.
func Divide(pos board.Position, gen *movegen.Generator, depth int) ([]DivideEntry, uint64) {
	var moves chesstype.MoveList
	gen.PseudolegalMoves(pos, &moves)

	entries := make([]DivideEntry, 0, moves.Len)
	var total uint64
	for i := 0; i < moves.Len; i++ {
		nodes := Perft(pos.MakeMove(moves.Moves[i]), gen, depth-1)
		entries = append(entries, DivideEntry{Move: moves.Moves[i], Nodes: nodes})
		total += nodes
	}
	return entries, total
}

// VerboseResult tallies the move-kind breakdown Verbose reports. Checks,
// double-checks, and checkmates are omitted relative to the teacher's own
// result struct because this core never computes legality/check
// information; reporting them here would be a fabricated number, not a
// pseudolegal one.
type VerboseResult struct {
	Nodes      uint64
	Captures   uint64
	EPCaptures uint64
	Promotions uint64
}

// Verbose walks the same tree as Perft, additionally tallying captures,
// en-passant captures, and promotions encountered along the way.
func Verbose(pos board.Position, gen *movegen.Generator, depth int) VerboseResult {
	var r VerboseResult
	verboseWalk(pos, gen, depth, &r)
	return r
}

func verboseWalk(pos board.Position, gen *movegen.Generator, depth int, r *VerboseResult) uint64 {
	if depth == 0 {
		r.Nodes++
		return 1
	}

	var moves chesstype.MoveList
	gen.PseudolegalMoves(pos, &moves)

	if depth == 1 {
		for i := 0; i < moves.Len; i++ {
			tallyMove(pos, moves.Moves[i], r)
		}
		r.Nodes += uint64(moves.Len)
		return uint64(moves.Len)
	}

	var nodes uint64
	for i := 0; i < moves.Len; i++ {
		tallyMove(pos, moves.Moves[i], r)
		nodes += verboseWalk(pos.MakeMove(moves.Moves[i]), gen, depth-1, r)
	}
	return nodes
}

// tallyMove inspects mv against its source position only for the
// counters a pseudolegal core can honestly report.
func tallyMove(pos board.Position, mv chesstype.Move, r *VerboseResult) {
	if _, isPromo := mv.Promotion(); isPromo {
		r.Promotions++
	}

	if _, captured := pos.PieceAt(mv.To()); captured {
		r.Captures++
		return
	}

	// No piece sits on the destination square; the only other way a pawn
	// move removes an enemy piece is en passant.
	if piece, ok := pos.PieceAt(mv.From()); ok && piece == chesstype.Pawn && mv.From().File() != mv.To().File() {
		r.EPCaptures++
		r.Captures++
	}
}
