package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LucDeCaf/mogen/chesstype"
	"github.com/LucDeCaf/mogen/movegen"
	"github.com/LucDeCaf/mogen/perft"
	"github.com/LucDeCaf/mogen/san"
	"github.com/LucDeCaf/mogen/uci"
)

func divideCmd() *cobra.Command {
	var (
		fenStr string
		depth  int
		useSAN bool
	)

	cmd := &cobra.Command{
		Use:   "divide",
		Short: "report the subtree node count under each root move",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			gen, err := movegen.New(cfg)
			if err != nil {
				return fmt.Errorf("build magic tables: %w", err)
			}

			pos, err := resolvePosition(fenStr)
			if err != nil {
				return err
			}

			var siblings chesstype.MoveList
			if useSAN {
				gen.PseudolegalMoves(pos, &siblings)
			}

			entries, total := perft.Divide(pos, gen, depth)
			for _, e := range entries {
				if useSAN {
					fmt.Printf("%s %d\n", san.Format(e.Move, pos, siblings, false, false), e.Nodes)
				} else {
					fmt.Printf("%s %d\n", uci.FormatMove(e.Move), e.Nodes)
				}
			}
			fmt.Printf("\ntotal %d\n", total)
			return nil
		},
	}

	cmd.Flags().StringVar(&fenStr, "fen", "", "FEN string for the root position (defaults to the starting position)")
	cmd.Flags().IntVar(&depth, "depth", 1, "perft depth")
	cmd.Flags().BoolVar(&useSAN, "san", false, "format root moves in Standard Algebraic Notation instead of UCI")

	return cmd
}
