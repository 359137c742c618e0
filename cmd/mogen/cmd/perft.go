package cmd

import (
	"fmt"
	"time"

	"github.com/op/go-logging"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/LucDeCaf/mogen/board"
	"github.com/LucDeCaf/mogen/fen"
	"github.com/LucDeCaf/mogen/movegen"
	"github.com/LucDeCaf/mogen/perft"
	"github.com/LucDeCaf/mogen/zobrist"
)

var log = logging.MustGetLogger("mogen/cmd")

func perftCmd() *cobra.Command {
	var (
		fenStr     string
		depth      int
		verbose    bool
		cpuProfile bool
		useTT      bool
	)

	cmd := &cobra.Command{
		Use:   "perft",
		Short: "count pseudolegal leaf nodes reached from a position",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cpuProfile {
				defer profile.Start(profile.CPUProfile).Stop()
			}

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

			start := time.Now()
			switch {
			case verbose:
				r := perft.Verbose(pos, gen, depth)
				elapsed := time.Since(start)
				log.Infof("nodes=%d captures=%d ep=%d promotions=%d", r.Nodes, r.Captures, r.EPCaptures, r.Promotions)
				log.Infof("elapsed: %s", elapsed)
			case useTT:
				tt := perft.NewTranspositionTable(zobrist.New(cfg.Seed, cfg.Seed))
				nodes := tt.PerftTT(pos, gen, depth)
				elapsed := time.Since(start)
				log.Infof("nodes reached: %d", nodes)
				log.Infof("elapsed: %s", elapsed)
			default:
				nodes := perft.Perft(pos, gen, depth)
				elapsed := time.Since(start)
				log.Infof("nodes reached: %d", nodes)
				log.Infof("elapsed: %s", elapsed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fenStr, "fen", "", "FEN string for the root position (defaults to the starting position)")
	cmd.Flags().IntVar(&depth, "depth", 1, "perft depth")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "report the capture/en-passant/promotion breakdown")
	cmd.Flags().BoolVar(&cpuProfile, "cpuprofile", false, "write a pkg/profile CPU profile for this run")
	cmd.Flags().BoolVar(&useTT, "tt", false, "memoize transposed subtrees via a Zobrist-keyed transposition table")

	return cmd
}

func resolvePosition(fenStr string) (board.Position, error) {
	if fenStr == "" {
		return board.Starting(), nil
	}
	pos, err := fen.Parse(fenStr)
	if err != nil {
		return board.Position{}, fmt.Errorf("parse fen: %w", err)
	}
	return pos, nil
}
