package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ball-arcade/internal/platform/tui"
	"github.com/vovakirdan/ball-arcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game, then pick a
difficulty. Pressing Esc in a game returns you to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(flagLogFile, os.Stderr, "arcade")
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	sink, closeAudio := newSoundSink(logger)
	defer closeAudio()

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				logger.Error("scoreboard failed", "error", err)
			}
			if goBack {
				continue
			}
			return nil
		}

		gameID := menuResult.GameID
		preset, quit, err := tui.RunDifficultySelector(registry.Title(gameID), cfg)
		if err != nil {
			logger.Error("difficulty selector failed", "error", err)
			continue
		}
		if quit {
			return nil
		}
		if preset == "" {
			continue // Back to menu
		}
		configureGame(gameID, string(preset))

		game, err := registry.Create(gameID)
		if err != nil {
			logger.Error("cannot create game", "game", gameID, "error", err)
			continue
		}

		// Fresh seed for each game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		back, err := tui.Run(game, cfg, tui.Options{
			Store:      store,
			Audio:      sink,
			Logger:     logger,
			Player:     playerName(),
			ExitToMenu: true,
		})
		if err != nil {
			logger.Error("game failed", "game", gameID, "error", err)
			continue
		}
		if !back {
			return nil
		}
	}
}
