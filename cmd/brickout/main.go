// brickout is a terminal brick-breaking game played locally or over SSH.
//
// Usage:
//
//	brickout play [mode]       - Play campaign (default) or endless mode
//	brickout menu              - Start the interactive mode picker
//	brickout list              - List available game modes
//	brickout levels            - List the levels in the active pack
//	brickout serve             - Start SSH server for remote play
//	brickout scores <mode>     - Show high scores and best runs
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.brickout/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its modes
	_ "github.com/vovakirdan/brickout/internal/games/bricks"
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
	Use:   "brickout",
	Short: "Brickout - Break bricks in your terminal",
	Long: `Brickout is a terminal brick-breaking game. Keep the ball in play,
clear every brick to advance, and dodge the hazards that fall from
destroyed bricks.

Available commands:
  play     - Play campaign or endless mode directly
  menu     - Interactive mode picker menu
  list     - Show all game modes
  levels   - Show the levels in the active pack
  serve    - Start SSH server for remote play
  scores   - View high scores and best runs

Examples:
  brickout play
  brickout play brickout_endless
  brickout menu
  brickout serve --ssh :2222
  brickout scores brickout`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.brickout/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
