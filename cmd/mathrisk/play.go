package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/esmanurarslan/mathrisk/internal/config"
	"github.com/esmanurarslan/mathrisk/internal/core"
	"github.com/esmanurarslan/mathrisk/internal/games/mathrisk"
	"github.com/esmanurarslan/mathrisk/internal/platform/tui"
	"github.com/esmanurarslan/mathrisk/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagNickname   string
	flagAvatar     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a session directly",
	Long: `Start a MathRisk session, skipping the interactive menu.

Controls:
  A/D or Left/Right - Move the avatar
  P                 - Pause
  R                 - Restart (after session end)
  Esc               - Back to menu (while paused or after session end)
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Addition and subtraction with small numbers
  medium - Adds multiplication and exact division
  hard   - All operators including powers and square roots

Examples:
  mathrisk play
  mathrisk play --difficulty hard
  mathrisk play --nickname alice --avatar cat
  mathrisk play --config ./my-rules.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "easy", "Difficulty: easy, medium, hard")
	playCmd.Flags().StringVar(&flagNickname, "nickname", "", "Nickname for the scoreboard")
	playCmd.Flags().StringVar(&flagAvatar, "avatar", "", "Avatar: classic, robot, cat")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	nickname := flagNickname
	if nickname == "" && store != nil {
		if last, prefErr := store.GetPref("nickname"); prefErr == nil {
			nickname = last
		}
	}

	game := mathrisk.New()
	game.SetConfigPath(flagConfig)
	game.SetDifficulty(config.ParseDifficulty(flagDifficulty))
	game.SetAvatar(mathrisk.ParseAvatar(flagAvatar))
	game.SetNickname(nickname)

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
