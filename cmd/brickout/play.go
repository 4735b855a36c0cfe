package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickout/internal/config"
	"github.com/vovakirdan/brickout/internal/core"
	"github.com/vovakirdan/brickout/internal/games/bricks"
	"github.com/vovakirdan/brickout/internal/levels"
	"github.com/vovakirdan/brickout/internal/platform/tui"
	"github.com/vovakirdan/brickout/internal/registry"
	"github.com/vovakirdan/brickout/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevels     string
	flagLevel      string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play the game",
	Long: `Start playing. Campaign mode opens a setup screen for picking the
starting level and difficulty; endless mode starts right away.

Controls:
  A/D, Arrows - Move paddle
  Space       - Launch ball
  P/Esc       - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - More lives, slower ball, wider paddle
  normal - Default balance
  hard   - Fewer lives, faster ball, narrower paddle

Examples:
  brickout play
  brickout play brickout_endless
  brickout play --difficulty hard
  brickout play --level 3
  brickout play --config ./my-brickout.yaml
  brickout play --levels ./my-pack`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagLevels, "levels", "", "Path to a custom level pack directory")
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Starting level number (skips the setup screen)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "brickout"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if the mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'brickout list' to see available modes.")
		os.Exit(1)
	}

	// Get terminal size early for the setup screen
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Apply CLI overrides before creation
	bricks.SetConfigPath(flagConfig)
	bricks.SetDifficultyPreset(flagDifficulty)
	bricks.SetLevelsDir(flagLevels)

	// Campaign runs go through the setup screen unless --level picked one
	switch {
	case flagLevel != "":
		cfg.Level = flagLevel
	case gameID == "brickout":
		selection, updatedCfg, selErr := tui.RunCampaignSelector(
			cfg, loadLevelPack(), config.DifficultyPreset(flagDifficulty))
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return
		}

		// Apply selection
		bricks.SetDifficultyPreset(string(selection.Difficulty))
		cfg.Level = selection.Level
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// loadLevelPack loads the same pack the game itself will use, so the
// setup screen's level list matches what gets played.
func loadLevelPack() []*levels.Level {
	if flagLevels != "" {
		if pack, err := levels.LoadDir(flagLevels); err == nil && len(pack) > 0 {
			return pack
		}
	}
	if pack, err := levels.Builtin(); err == nil && len(pack) > 0 {
		return pack
	}
	return []*levels.Level{levels.Fallback()}
}
