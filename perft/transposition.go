package perft

import (
	"github.com/LucDeCaf/mogen/board"
	"github.com/LucDeCaf/mogen/chesstype"
	"github.com/LucDeCaf/mogen/movegen"
	"github.com/LucDeCaf/mogen/zobrist"
)

// cacheKey pairs a Zobrist hash with the remaining depth: the same
// position hashes the same regardless of how it was reached, but its
// subtree size depends on how deep the walk still has to go, so depth is
// part of the key.
type cacheKey struct {
	hash  uint64
	depth int
}

// TranspositionTable memoizes PerftTT subtree counts keyed by
// (zobrist-hash, remaining depth), the standard perft speedup: repeated
// positions (reached via different move orders, or after a capture pair
// cancels out) are counted once instead of re-walked. Build one with
// NewTranspositionTable; the zero value has neither keys nor a cache.
type TranspositionTable struct {
	keys  *zobrist.Table
	cache map[cacheKey]uint64
}

// NewTranspositionTable builds an empty table keyed by keys.
func NewTranspositionTable(keys *zobrist.Table) *TranspositionTable {
	return &TranspositionTable{keys: keys, cache: make(map[cacheKey]uint64)}
}

// PerftTT behaves exactly like Perft but consults and populates tt, so
// transpositions encountered during the walk are counted once. Results
// are identical to Perft for any pos/gen/depth; only the work to produce
// them differs.
func (tt *TranspositionTable) PerftTT(pos board.Position, gen *movegen.Generator, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	if depth == 1 {
		var moves chesstype.MoveList
		gen.PseudolegalMoves(pos, &moves)
		return uint64(moves.Len)
	}

	key := cacheKey{hash: tt.keys.Hash(pos), depth: depth}
	if nodes, ok := tt.cache[key]; ok {
		return nodes
	}

	var moves chesstype.MoveList
	gen.PseudolegalMoves(pos, &moves)

	var nodes uint64
	for i := 0; i < moves.Len; i++ {
		nodes += tt.PerftTT(pos.MakeMove(moves.Moves[i]), gen, depth-1)
	}

	tt.cache[key] = nodes
	return nodes
}
