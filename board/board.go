// Package board implements Position, the eight-bitboard chessboard value
// type, and MakeMove, its pure XOR-toggle state transition.
//
// Grounded on the teacher's position.go (Position, placePiece, removePiece,
// MakeMove, GetPieceFromSquare), generalized from the teacher's 15-plane
// layout (six pieces per color plus three occupancy planes) down to the
// eight planes [Pawn, Knight, Bishop, Rook, Queen, King, WhiteOccupancy,
// BlackOccupancy]: a piece's color is no longer its own plane, it is
// whichever color plane intersects the piece plane at that square.
package board

import (
	"github.com/LucDeCaf/mogen/bitboard"
	"github.com/LucDeCaf/mogen/chesstype"
)

// Flags bit layout, LSB to MSB: bit 0-3 castling rights, bit 4 en-passant
// available, bits 5-7 en-passant target file.
const (
	flagWhiteKingside  uint8 = 1 << 0
	flagWhiteQueenside uint8 = 1 << 1
	flagBlackKingside  uint8 = 1 << 2
	flagBlackQueenside uint8 = 1 << 3
	flagEPAvailable    uint8 = 1 << 4
	flagEPFileShift          = 5
	flagEPFileMask     uint8 = 0x7 << flagEPFileShift

	flagCastlingMask uint8 = flagWhiteKingside | flagWhiteQueenside | flagBlackKingside | flagBlackQueenside
)

// Position is an immutable-in-normal-use value type holding exactly the
// eight bitboards required by the data model: the six piece planes followed
// by the two color occupancy planes.
type Position struct {
	Planes [8]bitboard.Bitboard

	ActiveColor chesstype.Color
	Flags       uint8
	HalfmoveCnt uint8
	FullmoveCnt uint16
}

// Plane indices into Position.Planes. The first six match chesstype.Piece
// exactly; the last two have no chesstype.Piece counterpart.
const (
	WhiteOccupancyPlane = 6
	BlackOccupancyPlane = 7

	planeWhiteOccupancy = WhiteOccupancyPlane
	planeBlackOccupancy = BlackOccupancyPlane
)

// OccupancyPlane returns the index into Position.Planes of c's occupancy
// plane.
func OccupancyPlane(c chesstype.Color) int {
	if c == chesstype.White {
		return planeWhiteOccupancy
	}
	return planeBlackOccupancy
}

// occupancyPlane is the package-internal spelling used throughout this
// file, kept so call sites read naturally without the package qualifier.
func occupancyPlane(c chesstype.Color) int { return OccupancyPlane(c) }

// Starting returns the standard initial chess position.
func Starting() Position {
	var p Position

	p.Planes[chesstype.Rook] = bitboard.FromSquare(0) | bitboard.FromSquare(7) |
		bitboard.FromSquare(56) | bitboard.FromSquare(63)
	p.Planes[chesstype.Knight] = bitboard.FromSquare(1) | bitboard.FromSquare(6) |
		bitboard.FromSquare(57) | bitboard.FromSquare(62)
	p.Planes[chesstype.Bishop] = bitboard.FromSquare(2) | bitboard.FromSquare(5) |
		bitboard.FromSquare(58) | bitboard.FromSquare(61)
	p.Planes[chesstype.Queen] = bitboard.FromSquare(3) | bitboard.FromSquare(59)
	p.Planes[chesstype.King] = bitboard.FromSquare(4) | bitboard.FromSquare(60)
	p.Planes[chesstype.Pawn] = bitboard.Rank2 | bitboard.Rank7

	p.Planes[planeWhiteOccupancy] = bitboard.Rank1 | bitboard.Rank2
	p.Planes[planeBlackOccupancy] = bitboard.Rank7 | bitboard.Rank8

	p.ActiveColor = chesstype.White
	p.Flags = flagCastlingMask
	p.HalfmoveCnt = 0
	p.FullmoveCnt = 1

	return p
}

// Empty returns a Position with no pieces on the board, White to move, no
// castling rights, and no en-passant target. Useful for building hand-made
// test fixtures.
func Empty() Position {
	return Position{ActiveColor: chesstype.White}
}

// Occupied returns the union of every occupied square.
func (p Position) Occupied() bitboard.Bitboard {
	return p.Planes[planeWhiteOccupancy] | p.Planes[planeBlackOccupancy]
}

// Friendly returns the occupancy plane of c.
func (p Position) Friendly(c chesstype.Color) bitboard.Bitboard {
	return p.Planes[occupancyPlane(c)]
}

// Enemy returns the occupancy plane of c's opponent.
func (p Position) Enemy(c chesstype.Color) bitboard.Bitboard {
	return p.Planes[occupancyPlane(c.Opponent())]
}

// PieceAt returns the piece occupying sq, or (NoPiece, false) if sq is
// empty.
func (p Position) PieceAt(sq chesstype.Square) (chesstype.Piece, bool) {
	bit := bitboard.FromSquare(int(sq))
	for piece := chesstype.Pawn; piece <= chesstype.King; piece++ {
		if p.Planes[piece]&bit != 0 {
			return piece, true
		}
	}
	return chesstype.NoPiece, false
}

// ColorAt returns the color of the piece occupying sq, or (White, false) if
// sq is empty.
func (p Position) ColorAt(sq chesstype.Square) (chesstype.Color, bool) {
	bit := bitboard.FromSquare(int(sq))
	switch {
	case p.Planes[planeWhiteOccupancy]&bit != 0:
		return chesstype.White, true
	case p.Planes[planeBlackOccupancy]&bit != 0:
		return chesstype.Black, true
	default:
		return chesstype.White, false
	}
}

// CastlingRights returns the four castling-right bits as a
// chesstype.CastlingRights value.
func (p Position) CastlingRights() chesstype.CastlingRights {
	return chesstype.CastlingRights(p.Flags & flagCastlingMask)
}

// SetCastlingRights overwrites the castling-right bits, leaving the
// en-passant bits untouched.
func (p *Position) SetCastlingRights(rights chesstype.CastlingRights) {
	p.Flags = (p.Flags &^ flagCastlingMask) | (uint8(rights) & flagCastlingMask)
}

// EnPassant returns the en-passant target file and whether one is set this
// turn.
func (p Position) EnPassant() (file int, ok bool) {
	if p.Flags&flagEPAvailable == 0 {
		return 0, false
	}
	return int(p.Flags&flagEPFileMask) >> flagEPFileShift, true
}

// SetEnPassant sets the en-passant target file, marking it available.
func (p *Position) SetEnPassant(file int) {
	p.Flags = (p.Flags &^ flagEPFileMask) | flagEPAvailable | (uint8(file)<<flagEPFileShift)&flagEPFileMask
}

// ClearEnPassant marks no en-passant target available this turn.
func (p *Position) ClearEnPassant() {
	p.Flags &^= flagEPAvailable
}

// epCaptureRank returns the rank a capturing pawn of color by lands on when
// taking en passant.
func epCaptureRank(by chesstype.Color) int {
	if by == chesstype.White {
		return 5
	}
	return 2
}

// MakeMove applies mv to p and returns the resulting Position. p is left
// unmodified; the receiver is a value, not a pointer, so every mutation
// below acts on a private copy.
//
// Per the data model's XOR-toggle discipline, every affected square is
// toggled in exactly one piece plane and exactly one color plane, which
// keeps the piece/color-plane invariants intact across the call.
//
// MakeMove does not update castling rights or the halfmove/fullmove clocks;
// those fields carry over unchanged. An invalid move (empty from-square)
// returns the position unchanged except for ep_available, which is always
// cleared first.
func (p Position) MakeMove(mv chesstype.Move) Position {
	next := p
	next.ClearEnPassant()

	from, to := mv.From(), mv.To()
	fromBit := bitboard.FromSquare(int(from))
	toBit := bitboard.FromSquare(int(to))

	fromPiece, ok := p.PieceAt(from)
	if !ok {
		return next
	}
	fromColor, _ := p.ColorAt(from)

	if fromPiece == chesstype.Pawn {
		fromRank, toRank := from.Rank(), to.Rank()
		if abs(toRank-fromRank) == 2 {
			next.SetEnPassant(from.File())
		} else if epFile, wasSet := p.EnPassant(); wasSet &&
			toRank == epCaptureRank(fromColor) && to.File() == epFile {
			capturedSq := chesstype.NewSquare(epFile, fromRank)
			capturedBit := bitboard.FromSquare(int(capturedSq))
			next.Planes[chesstype.Pawn] &^= capturedBit
			next.Planes[occupancyPlane(fromColor.Opponent())] &^= capturedBit
		}
	}

	next.Planes[fromPiece] &^= fromBit
	next.Planes[occupancyPlane(fromColor)] ^= fromBit | toBit

	if toPiece, captured := p.PieceAt(to); captured {
		next.Planes[toPiece] &^= toBit
		next.Planes[occupancyPlane(fromColor.Opponent())] &^= toBit
	}

	if promo, isPromo := mv.Promotion(); isPromo {
		next.Planes[promo] |= toBit
	} else {
		next.Planes[fromPiece] |= toBit
	}

	next.ActiveColor = fromColor.Opponent()

	return next
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
