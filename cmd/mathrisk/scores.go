package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/esmanurarslan/mathrisk/internal/config"
	"github.com/esmanurarslan/mathrisk/internal/storage"
)

var (
	flagScoresDifficulty string
	flagScoresRecent     int
	flagScoresPlayer     string
	flagScoresStats      bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for a difficulty.

Examples:
  mathrisk scores
  mathrisk scores --difficulty hard
  mathrisk scores --recent 20
  mathrisk scores --player alice
  mathrisk scores --stats`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresDifficulty, "difficulty", "easy", "Difficulty: easy, medium, hard")
	scoresCmd.Flags().IntVar(&flagScoresRecent, "recent", 0, "Show the N most recent sessions instead of the leaderboard")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Show session history for one player")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show aggregated statistics per difficulty")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresStats:
		printStats(store)
	case flagScoresPlayer != "":
		printPlayerHistory(store, flagScoresPlayer)
	case flagScoresRecent > 0:
		printRecentSessions(store, flagScoresRecent)
	default:
		printLeaderboard(store, config.ParseDifficulty(flagScoresDifficulty))
	}
}

func printLeaderboard(store *storage.Store, difficulty config.Difficulty) {
	scores, err := store.TopScores(difficulty.String(), 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", difficulty.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'mathrisk play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-14s  %-8s  %s\n", "Rank", "Player", "Coins", "Date")
	fmt.Printf("  %-4s  %-14s  %-8s  %s\n", "----", "------", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-14s  %-8d  %s\n", i+1, entry.Nickname, entry.Score, dateStr)
	}

	fmt.Println()
	highScore, err := store.HighScore(difficulty.String())
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}

func printRecentSessions(store *storage.Store, limit int) {
	sessions, err := store.RecentSessions(limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent Sessions")
	fmt.Println()
	printSessions(sessions)
}

func printPlayerHistory(store *storage.Store, nickname string) {
	sessions, err := store.PlayerHistory(nickname, 20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving player history: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Sessions - %s\n", nickname)
	fmt.Println()
	printSessions(sessions)
}

func printSessions(sessions []storage.SessionResult) {
	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		return
	}

	fmt.Printf("  %-14s  %-8s  %-7s  %-9s  %-6s  %s\n", "Player", "Tier", "Coins", "Ended", "Played", "Date")
	fmt.Printf("  %-14s  %-8s  %-7s  %-9s  %-6s  %s\n", "------", "----", "-----", "-----", "------", "----")

	for _, s := range sessions {
		dateStr := s.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-14s  %-8s  %-7d  %-9s  %4ds   %s\n",
			s.Nickname, s.Difficulty, s.Score, s.EndReason, s.DurationSecs, dateStr)
	}
}

func printStats(store *storage.Store) {
	stats, err := store.GetDifficultyStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving statistics: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Statistics")
	fmt.Println()

	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Printf("  %-8s  %-7s  %-6s  %-8s  %s\n", "Tier", "Games", "Best", "Average", "Last Played")
	fmt.Printf("  %-8s  %-7s  %-6s  %-8s  %s\n", "----", "-----", "----", "-------", "-----------")

	for _, k := range keys {
		d := stats[k]
		fmt.Printf("  %-8s  %-7d  %-6d  %-8.1f  %s\n",
			d.Difficulty, d.GamesCount, d.HighScore, d.AvgScore,
			d.LastPlayed.Format("2006-01-02 15:04"))
	}
}
