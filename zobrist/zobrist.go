// Package zobrist hashes board.Position values into 64-bit keys suitable
// for transposition-table lookups, grounded on the teacher's root
// zobrist.go (pieceKeys/epKeys/castlingKeys/colorKey, XORed together in
// zobristKey). The teacher used this hash exclusively for threefold-
// repetition detection over a game's move history, a non-goal here; this
// package keeps the hashing scheme itself and retargets it at perft's
// transposition table instead (see perft.PerftTT), where memoizing
// (position, depth) -> node-count pairs is the standard real-world perft
// speedup.
//
// Keys are generated from a seedable PRNG rather than the teacher's
// unseeded package-level rand.Uint64() calls, so a Table (and therefore
// every hash it produces) is reproducible across runs for a given seed,
// matching the determinism the magic package's own search offers.
package zobrist

import (
	"math/rand/v2"

	"github.com/LucDeCaf/mogen/bitboard"
	"github.com/LucDeCaf/mogen/board"
	"github.com/LucDeCaf/mogen/chesstype"
)

// Table holds the random keys used to fold a Position into a hash. Build
// once via New and reuse across every Hash call.
type Table struct {
	pieceKeys    [6][2][64]uint64
	epFileKeys   [8]uint64
	castlingKeys [16]uint64
	colorKey     uint64
}

// New builds a Table. A nonzero seed pair makes the keys reproducible;
// (0, 0) draws a fresh random seed pair instead.
func New(seed1, seed2 uint64) *Table {
	if seed1 == 0 && seed2 == 0 {
		seed1, seed2 = rand.Uint64(), rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed1, seed2))

	var t Table
	for piece := chesstype.Pawn; piece <= chesstype.King; piece++ {
		for color := chesstype.White; color <= chesstype.Black; color++ {
			for sq := 0; sq < 64; sq++ {
				t.pieceKeys[piece][color][sq] = rng.Uint64()
			}
		}
	}
	for file := 0; file < 8; file++ {
		t.epFileKeys[file] = rng.Uint64()
	}
	for i := 0; i < 16; i++ {
		t.castlingKeys[i] = rng.Uint64()
	}
	t.colorKey = rng.Uint64()

	return &t
}

// Hash folds pos into a 64-bit key. Two positions with the same piece
// placement, active color, castling rights, and en-passant file hash
// equal; halfmove/fullmove counters do not participate, matching the
// teacher's own zobristKey (which never hashed its move clocks either).
func (t *Table) Hash(pos board.Position) uint64 {
	var key uint64

	for piece := chesstype.Pawn; piece <= chesstype.King; piece++ {
		plane := pos.Planes[piece]
		for !plane.IsEmpty() {
			sq := bitboard.PopLSB(&plane)
			color, _ := pos.ColorAt(chesstype.Square(sq))
			key ^= t.pieceKeys[piece][color][sq]
		}
	}

	if file, ok := pos.EnPassant(); ok {
		key ^= t.epFileKeys[file]
	}

	key ^= t.castlingKeys[pos.CastlingRights()]

	if pos.ActiveColor == chesstype.Black {
		key ^= t.colorKey
	}

	return key
}
