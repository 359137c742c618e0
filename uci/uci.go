// Package uci implements the Universal Chess Interface text forms for
// squares and moves, used by test tooling and the CLI front end.
//
// Move formatting is grounded on the teacher's uci.go (Move2UCI: square
// text concatenation plus a promotion-letter suffix). The teacher only
// ever formats moves, never parses them (chego drives everything from its
// own Move type internally); parsing is original to this package, built
// in the same long-algebraic style the teacher's format uses.
package uci

import (
	"strings"

	"github.com/LucDeCaf/mogen/chesstype"
)

// SquareError reports a malformed square string.
type SquareError struct {
	Text string
}

func (e *SquareError) Error() string { return "uci: bad square " + `"` + e.Text + `"` }

// MoveError reports a malformed move string.
type MoveError struct {
	Text string
}

func (e *MoveError) Error() string { return "uci: bad move " + `"` + e.Text + `"` }

// FormatSquare returns sq's canonical two-character text form, e.g. "e4".
func FormatSquare(sq chesstype.Square) string {
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// ParseSquare parses a two-character square string, e.g. "e4".
func ParseSquare(s string) (chesstype.Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return chesstype.NoSquare, &SquareError{Text: s}
	}
	return chesstype.NewSquare(int(s[0]-'a'), int(s[1]-'1')), nil
}

var promotionLetter = map[chesstype.Piece]byte{
	chesstype.Knight: 'n',
	chesstype.Bishop: 'b',
	chesstype.Rook:   'r',
	chesstype.Queen:  'q',
}

var promotionPiece = map[byte]chesstype.Piece{
	'n': chesstype.Knight,
	'b': chesstype.Bishop,
	'r': chesstype.Rook,
	'q': chesstype.Queen,
}

// FormatMove returns mv's long algebraic text form, e.g. "e2e4", "f7f8q".
func FormatMove(mv chesstype.Move) string {
	var b strings.Builder
	b.Grow(5)
	b.WriteString(FormatSquare(mv.From()))
	b.WriteString(FormatSquare(mv.To()))
	if promo, ok := mv.Promotion(); ok {
		b.WriteByte(promotionLetter[promo])
	}
	return b.String()
}

// ParseMove parses a long algebraic move string, e.g. "e2e4" or "f7f8q".
func ParseMove(s string) (chesstype.Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return 0, &MoveError{Text: s}
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return 0, &MoveError{Text: s}
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return 0, &MoveError{Text: s}
	}

	if len(s) == 4 {
		return chesstype.NewMove(from, to), nil
	}

	piece, ok := promotionPiece[s[4]]
	if !ok {
		return 0, &MoveError{Text: s}
	}
	return chesstype.NewPromotionMove(from, to, piece), nil
}
