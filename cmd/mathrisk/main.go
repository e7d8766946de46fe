// mathrisk is a terminal arcade game about catching falling math.
//
// Usage:
//
//	mathrisk menu            - Interactive flow: nickname, avatar, difficulty
//	mathrisk play            - Jump straight into a session
//	mathrisk serve           - Start SSH server for remote play
//	mathrisk scores          - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible sessions
//	--db <path>     - Set database path (default: ~/.mathrisk/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
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
	Use:   "mathrisk",
	Short: "MathRisk - Catch the math, keep your coins",
	Long: `MathRisk is a terminal arcade game. Tiles with arithmetic expressions
fall from the top of the screen; catch the good ones, dodge the bad ones,
and keep your Coin balance above the bankrupt line until time runs out.

Available commands:
  menu     - Interactive flow: nickname, avatar, difficulty
  play     - Start a session directly
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  mathrisk menu
  mathrisk play --difficulty hard --nickname alice
  mathrisk serve --ssh :2222
  mathrisk scores --difficulty medium`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mathrisk/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
