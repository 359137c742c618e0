// Package magic builds and serves the magic-bitboard sliding-attack
// lookup tables for rooks and bishops.
//
// The per-square randomized search is grounded on
// other_examples/.../blunext-chess generate.go (findMagic: sparse
// rand64()&rand64()&rand64() candidates, a used-table collision check that
// accepts benign collisions and rejects destructive ones) and on the
// style of frankkopp-FrankyGo's internal/attacks package, which is the
// source of this package's package-level *logging.Logger and Debugf-style
// tracing.
// Per-square search is parallelized with golang.org/x/sync/errgroup, the
// same package frankkopp-FrankyGo vendors for its own concurrent search
// worker pools.
package magic

import (
	"fmt"
	"math/bits"
	"math/rand/v2"

	"github.com/op/go-logging"
	"golang.org/x/sync/errgroup"

	"github.com/LucDeCaf/mogen/attacks"
	"github.com/LucDeCaf/mogen/bitboard"
	"github.com/LucDeCaf/mogen/config"
)

var log = logging.MustGetLogger("mogen/magic")

// rookIndexBits and bishopIndexBits are fixed by the data model: 12 for
// rook, 10 for bishop.
const (
	rookIndexBits   = 12
	bishopIndexBits = 10
)

// ErrSearchExhausted reports that no magic number was found for a square
// within the configured attempt budget. In practice this never triggers:
// the fixed index_bits headroom above the true relevant-bit popcount makes
// a sparse random search converge within a handful of tries.
type ErrSearchExhausted struct {
	Square  int
	Bishop  bool
	Attempt int
}

func (e *ErrSearchExhausted) Error() string {
	kind := "rook"
	if e.Bishop {
		kind = "bishop"
	}
	return fmt.Sprintf("magic: exhausted %d attempts searching for a %s magic on square %d", e.Attempt, kind, e.Square)
}

// perSquare holds the magic triple and lookup table for one square and one
// slider kind.
type perSquare struct {
	mask  bitboard.Bitboard
	magic uint64
	shift int
	table []bitboard.Bitboard
}

func (s *perSquare) lookup(occupied bitboard.Bitboard) bitboard.Bitboard {
	blockers := occupied & s.mask
	idx := (uint64(blockers) * s.magic) >> s.shift
	return s.table[idx]
}

// Table is the complete, read-only set of rook and bishop magic tables for
// all 64 squares. It is built once via New and never mutated afterward, so
// concurrent readers need no synchronization.
type Table struct {
	rook   [64]perSquare
	bishop [64]perSquare
}

// New builds a Table by running the randomized magic search for every
// square and both slider kinds. When cfg.Parallel is set the 64 rook
// searches and 64 bishop searches run concurrently via errgroup; each
// square is searched with an independent PRNG stream so parallel runs
// don't contend on shared random state.
func New(cfg config.MagicSearch) (*Table, error) {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = config.Default().MaxAttempts
	}

	t := &Table{}

	build := func(sq int, bishop bool) (perSquare, error) {
		return searchSquare(sq, bishop, cfg, sq)
	}

	if !cfg.Parallel {
		for sq := 0; sq < 64; sq++ {
			rs, err := build(sq, false)
			if err != nil {
				return nil, err
			}
			t.rook[sq] = rs

			bs, err := build(sq, true)
			if err != nil {
				return nil, err
			}
			t.bishop[sq] = bs
		}
		log.Debugf("magic: built tables for 64 squares sequentially")
		return t, nil
	}

	var g errgroup.Group
	for sq := 0; sq < 64; sq++ {
		sq := sq
		g.Go(func() error {
			rs, err := build(sq, false)
			if err != nil {
				return err
			}
			t.rook[sq] = rs
			return nil
		})
		g.Go(func() error {
			bs, err := build(sq, true)
			if err != nil {
				return err
			}
			t.bishop[sq] = bs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Debugf("magic: built tables for 64 squares in parallel")
	return t, nil
}

// searchSquare runs the construction algorithm for one square and slider
// kind. streamSeed perturbs the PRNG seed so concurrent per-square searches
// started from the same cfg.Seed do not all draw the same candidate
// sequence.
func searchSquare(sq int, bishop bool, cfg config.MagicSearch, streamSeed int) (perSquare, error) {
	var mask bitboard.Bitboard
	var indexBits int
	var trueAttacks func(sq int, occ bitboard.Bitboard) bitboard.Bitboard

	if bishop {
		mask = attacks.BishopBlockerMask[sq]
		indexBits = bishopIndexBits
		trueAttacks = attacks.BishopAttacks
	} else {
		mask = attacks.RookBlockerMask[sq]
		indexBits = rookIndexBits
		trueAttacks = attacks.RookAttacks
	}

	shift := 64 - indexBits
	tableSize := 1 << indexBits

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewPCG(cfg.Seed, uint64(streamSeed)))
	} else {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	// Precompute every (blocker subset, true attack set) pair once; the
	// search loop below only varies the candidate magic.
	type entry struct {
		blockers bitboard.Bitboard
		attack   bitboard.Bitboard
	}
	entries := make([]entry, 0, tableSize)
	mask.Subsets(func(sub bitboard.Bitboard) bool {
		entries = append(entries, entry{blockers: sub, attack: trueAttacks(sq, sub)})
		return true
	})

	table := make([]bitboard.Bitboard, tableSize)
	used := make([]bool, tableSize)
	maxAttempts := cfg.MaxAttempts

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		candidate := rng.Uint64() & rng.Uint64() & rng.Uint64()

		// Reject candidates unlikely to spread bits well across the
		// index: the high byte of mask*candidate should carry several
		// set bits.
		if bits.OnesCount64(uint64(mask)*candidate&0xFF00000000000000) < 6 {
			continue
		}

		for i := range used {
			used[i] = false
		}

		valid := true
		for _, e := range entries {
			idx := (uint64(e.blockers) * candidate) >> shift
			switch {
			case !used[idx]:
				used[idx] = true
				table[idx] = e.attack
			case table[idx] != e.attack:
				valid = false
			}
			if !valid {
				break
			}
		}

		if valid {
			log.Debugf("magic: square %d bishop=%v found after %d attempts", sq, bishop, attempt)
			return perSquare{mask: mask, magic: candidate, shift: shift, table: table}, nil
		}
	}

	return perSquare{}, &ErrSearchExhausted{Square: sq, Bishop: bishop, Attempt: maxAttempts}
}

// RookAttacks returns the rook attack set for sq given the board's full
// occupancy, via a single table lookup.
func (t *Table) RookAttacks(sq int, occupied bitboard.Bitboard) bitboard.Bitboard {
	return t.rook[sq].lookup(occupied)
}

// BishopAttacks returns the bishop attack set for sq given the board's
// full occupancy, via a single table lookup.
func (t *Table) BishopAttacks(sq int, occupied bitboard.Bitboard) bitboard.Bitboard {
	return t.bishop[sq].lookup(occupied)
}

// QueenAttacks returns the queen attack set for sq: the union of the rook
// and bishop attack sets.
func (t *Table) QueenAttacks(sq int, occupied bitboard.Bitboard) bitboard.Bitboard {
	return t.RookAttacks(sq, occupied) | t.BishopAttacks(sq, occupied)
}
