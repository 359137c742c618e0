package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LucDeCaf/mogen/board"
	"github.com/LucDeCaf/mogen/chesstype"
	"github.com/LucDeCaf/mogen/fen"
)

func fenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fen <fen-string>",
		Short: "parse a FEN string, print the board, and re-emit its canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := fen.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Print(render(pos))
			fmt.Println(fen.Format(pos))
			return nil
		},
	}
	return cmd
}

var pieceSymbols = [2][6]rune{
	chesstype.White: {'P', 'N', 'B', 'R', 'Q', 'K'},
	chesstype.Black: {'p', 'n', 'b', 'r', 'q', 'k'},
}

// render draws an 8x8 board diagram, grounded on the teacher's root
// main.go printBitboard rank-major layout.
func render(pos board.Position) string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")

	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			sq := chesstype.NewSquare(file, rank)
			symbol := '.'
			if piece, ok := pos.PieceAt(sq); ok {
				color, _ := pos.ColorAt(sq)
				symbol = pieceSymbols[color][piece]
			}
			sb.WriteRune(symbol)
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d\n", rank+1)
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
