// match3 is a match-3 puzzle for the terminal.
//
// Usage:
//
//	match3 play              - Play a game
//	match3 scores            - Show the best runs
//	match3 serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/games/match3"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Match-3 - swap tiles, line up colours, chain cascades",
	Long: `Match-3 is a tile-swapping puzzle played in the terminal.

Swap two neighbouring tiles to line up three or more of the same colour.
Matched tiles disappear, the tiles above fall into the gaps and new ones
drop in from the top, which can set off further matches.

Available commands:
  play     - Play a game
  scores   - View the best runs
  serve    - Start SSH server for remote play

Examples:
  match3 play
  match3 play --difficulty hard
  match3 scores --mine
  match3 serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// gameTitle is the display name of the registered game.
func gameTitle() string {
	return match3.New().Title()
}
