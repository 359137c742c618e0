// Command mogen is a perft-driving front end for the movegen core: it
// loads a position from FEN, runs the generator to a requested depth, and
// reports node counts and timing, grounded on the teacher's
// internal/perft/perft.go main() (flag-driven depth/verbose/cpuprofile
// knobs), rebuilt as spf13/cobra subcommands instead of a single flag set
// so perft, divide, and fen can be invoked independently.
package main

import (
	"os"

	"github.com/op/go-logging"

	"github.com/LucDeCaf/mogen/cmd/mogen/cmd"
)

var log = logging.MustGetLogger("mogen")

func main() {
	if err := cmd.Root().Execute(); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}
