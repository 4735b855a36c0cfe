package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickout/internal/levels"
)

var flagLevelsDir string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels in the active pack",
	Long: `Shows every level in the bundled pack, or in a custom pack directory
when --levels is given. The bricks column counts bricks that must be
cleared to finish the level; walls counts indestructible cells.

Examples:
  brickout levels
  brickout levels --levels ./my-pack`,
	Run: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Path to a custom level pack directory")
}

func runLevels(cmd *cobra.Command, args []string) {
	var (
		pack []*levels.Level
		err  error
	)
	if flagLevelsDir != "" {
		pack, err = levels.LoadDir(flagLevelsDir)
	} else {
		pack, err = levels.Builtin()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading level pack: %v\n", err)
		os.Exit(1)
	}
	if len(pack) == 0 {
		fmt.Println("No levels found.")
		return
	}

	fmt.Printf("Level pack: %d levels\n", len(pack))
	fmt.Println()
	fmt.Printf("  %-3s  %-20s  %-7s  %s\n", "No.", "Name", "Bricks", "Walls")
	fmt.Printf("  %-3s  %-20s  %-7s  %s\n", "---", "----", "------", "-----")

	for _, lvl := range pack {
		board, boardErr := lvl.Board()
		if boardErr != nil {
			fmt.Printf("  %-3d  %-20s  invalid: %v\n", lvl.Number, lvl.Name, boardErr)
			continue
		}
		fmt.Printf("  %-3d  %-20s  %-7d  %d\n",
			lvl.Number, lvl.Name, board.Required(), board.Alive()-board.Required())
	}
}
