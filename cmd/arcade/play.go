package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ball-arcade/internal/config"
	"github.com/vovakirdan/ball-arcade/internal/games/stardodge"
	"github.com/vovakirdan/ball-arcade/internal/platform/tui"
	"github.com/vovakirdan/ball-arcade/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD - Move (hold to keep moving)
  P           - Pause
  R           - Restart (after game over)
  M           - Toggle sound
  Esc         - Leave the game
  Ctrl+S      - Save a text screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Fewer enemies and slower enemy spawns
  normal - Config defaults
  hard   - More enemies, faster spawns, progression starts at 70%
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play stardodge
  arcade play stardodge --difficulty hard
  arcade play stardodge --config ./my-stardodge.yaml
  arcade play stardodge --config ./my-stardodge.toml --mute`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// validatePlayOptions rejects a bad --config or --difficulty before the
// terminal is taken over.
func validatePlayOptions(configPath, difficulty string) error {
	if configPath != "" {
		if _, err := config.LoadStarDodge(configPath); err != nil {
			return err
		}
	}
	if difficulty != "" {
		if _, ok := config.ParsePreset(difficulty); !ok {
			return fmt.Errorf("unknown difficulty %q, expected easy, normal, hard or fixed", difficulty)
		}
	}
	return nil
}

// configureGame passes CLI settings to games that read them at Reset.
func configureGame(gameID, difficulty string) {
	if gameID == stardodge.GameID {
		stardodge.SetConfigPath(flagConfig)
		stardodge.SetDifficultyPreset(difficulty)
	}
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}
	if err := validatePlayOptions(flagConfig, flagDifficulty); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, os.Stderr, "arcade")
	if err != nil {
		return err
	}
	defer closeLog()

	configureGame(gameID, flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	sink, closeAudio := newSoundSink(logger)
	defer closeAudio()

	_, err = tui.Run(game, runtimeConfig(), tui.Options{
		Store:  store,
		Audio:  sink,
		Logger: logger,
		Player: playerName(),
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
