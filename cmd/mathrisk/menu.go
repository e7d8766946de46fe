package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/esmanurarslan/mathrisk/internal/core"
	"github.com/esmanurarslan/mathrisk/internal/games/mathrisk"
	"github.com/esmanurarslan/mathrisk/internal/platform/tui"
	"github.com/esmanurarslan/mathrisk/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start MathRisk with the interactive menu",
	Long: `Start MathRisk in interactive mode.

The flow asks for a nickname, an avatar and a difficulty, then starts a
session. After a session ends you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate
  Enter        - Select
  Tab          - High scores
  Q            - Quit

Examples:
  mathrisk menu
  mathrisk menu --fps 30
  mathrisk menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runMenu(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Menu loop
	for {
		result, err := tui.RunSetup(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = result.Config

		if result.Quit {
			break
		}

		if result.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		if !result.Play {
			break
		}

		game := mathrisk.New()
		game.SetConfigPath(flagConfig)
		game.SetDifficulty(result.Difficulty)
		game.SetAvatar(result.Avatar)
		game.SetNickname(result.Nickname)

		// Fresh seed for each session
		cfg.Seed = time.Now().UnixNano()

		if err := tui.Run(game, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	if store != nil {
		store.Close()
	}
}
