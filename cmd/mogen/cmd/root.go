// Package cmd wires the mogen command-line tool's subcommands, built on
// spf13/cobra. The persistent --seed/--parallel/--config flags all feed
// the same config.MagicSearch that movegen.New consumes, so every
// subcommand pays the magic-table build cost in the same configurable
// way.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/LucDeCaf/mogen/config"
)

var (
	cfgPath  string
	seed     uint64
	parallel bool
)

// Root builds the mogen root command and attaches its subcommands.
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "mogen",
		Short: "mogen generates and counts pseudolegal chess moves",
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a TOML magic-search config file")
	root.PersistentFlags().Uint64Var(&seed, "seed", 0, "magic-search PRNG seed (0 = random)")
	root.PersistentFlags().BoolVar(&parallel, "parallel", true, "search magic numbers for all 64 squares concurrently")

	root.AddCommand(perftCmd(), divideCmd(), fenCmd())
	return root
}

// loadConfig resolves the effective config.MagicSearch from the
// persistent --config/--seed/--parallel flags: a config file supplies the
// base, the flags then override Seed and Parallel explicitly.
func loadConfig() (config.MagicSearch, error) {
	cfg := config.Default()
	if cfgPath != "" {
		fileCfg, err := config.Load(cfgPath)
		if err != nil {
			return config.MagicSearch{}, err
		}
		cfg = fileCfg
	}
	cfg.Seed = seed
	cfg.Parallel = parallel
	return cfg, nil
}
