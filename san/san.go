// Package san formats moves in Standard Algebraic Notation, grounded on
// the teacher's root san.go (Move2SAN, disambiguate). Castling notation
// ("O-O"/"O-O-O") is dropped: this core's Move encoding has no castling
// bit (movegen never emits castling moves, per its Non-goals), so there
// is nothing to recognize a castle from. Check and checkmate suffixes
// remain caller-supplied booleans exactly as the teacher's own function
// takes them, since neither is computable without a legality layer this
// core doesn't have.
package san

import (
	"strings"

	"github.com/LucDeCaf/mogen/board"
	"github.com/LucDeCaf/mogen/chesstype"
	"github.com/LucDeCaf/mogen/uci"
)

var pieceLetter = map[chesstype.Piece]byte{
	chesstype.Knight: 'N',
	chesstype.Bishop: 'B',
	chesstype.Rook:   'R',
	chesstype.Queen:  'Q',
	chesstype.King:   'K',
}

var promoLetter = map[chesstype.Piece]byte{
	chesstype.Knight: 'N',
	chesstype.Bishop: 'B',
	chesstype.Rook:   'R',
	chesstype.Queen:  'Q',
}

// Format renders mv, played from pos, in Standard Algebraic Notation.
// siblings is every other pseudolegal move available from pos, used to
// resolve origin-square ambiguity; pass the same list PseudolegalMoves
// produced for pos. isCheck and isCheckmate are supplied by the caller,
// since this core does not compute legality or check status itself.
func Format(mv chesstype.Move, pos board.Position, siblings chesstype.MoveList, isCheck, isCheckmate bool) string {
	piece, ok := pos.PieceAt(mv.From())
	if !ok {
		return uci.FormatMove(mv)
	}

	var b strings.Builder
	b.Grow(6)

	if letter, isNotPawn := pieceLetter[piece]; isNotPawn {
		b.WriteByte(letter)
		if d := disambiguate(mv, pos, piece, siblings); d != 0 {
			b.WriteByte(d)
		}
	}

	isCapture := isCaptureMove(mv, pos, piece)
	if isCapture {
		if piece == chesstype.Pawn {
			b.WriteByte(byte('a' + mv.From().File()))
		}
		b.WriteByte('x')
	}

	b.WriteString(uci.FormatSquare(mv.To()))

	if promo, isPromo := mv.Promotion(); isPromo {
		b.WriteByte('=')
		b.WriteByte(promoLetter[promo])
	}

	switch {
	case isCheckmate:
		b.WriteByte('#')
	case isCheck:
		b.WriteByte('+')
	}

	return b.String()
}

// isCaptureMove reports whether mv removes an enemy piece from the board,
// including en passant, mirroring perft's own tallyMove logic.
func isCaptureMove(mv chesstype.Move, pos board.Position, piece chesstype.Piece) bool {
	if _, captured := pos.PieceAt(mv.To()); captured {
		return true
	}
	return piece == chesstype.Pawn && mv.From().File() != mv.To().File()
}

// disambiguate returns a disambiguation byte (origin file letter, origin
// rank digit, or 0 for none needed) for a non-pawn move against every
// other same-piece sibling move sharing mv's destination.
func disambiguate(mv chesstype.Move, pos board.Position, piece chesstype.Piece, siblings chesstype.MoveList) byte {
	sameFile, sameRank := false, false
	ambiguous := false

	for i := 0; i < siblings.Len; i++ {
		other := siblings.Moves[i]
		if other == mv || other.To() != mv.To() {
			continue
		}
		otherPiece, ok := pos.PieceAt(other.From())
		if !ok || otherPiece != piece {
			continue
		}
		ambiguous = true
		if other.From().File() == mv.From().File() {
			sameFile = true
		}
		if other.From().Rank() == mv.From().Rank() {
			sameRank = true
		}
	}

	if !ambiguous {
		return 0
	}
	if !sameFile {
		return byte('a' + mv.From().File())
	}
	if !sameRank {
		return byte('1' + mv.From().Rank())
	}
	return byte('a' + mv.From().File())
}
