package tui

import (
	"path/filepath"
	"testing"

	"github.com/esmanurarslan/mathrisk/internal/config"
	"github.com/esmanurarslan/mathrisk/internal/core"
	"github.com/esmanurarslan/mathrisk/internal/games/mathrisk"
	"github.com/esmanurarslan/mathrisk/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("cannot open test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func endEvent(score int) core.Event {
	return core.Event{Kind: core.EventSessionEnd, Reason: core.EndReasonTimeout, Score: score}
}

func TestSaveResultDetectsNewHighScore(t *testing.T) {
	store := openTestStore(t)

	game := mathrisk.New()
	game.SetConfig(config.DefaultConfig())
	game.SetDifficulty(config.DifficultyMedium)
	game.SetNickname("tester")

	m := &GameModel{game: game, store: store}

	m.saveResult(endEvent(40))
	if !game.NewHighScore() {
		t.Errorf("first recorded score should count as a new high score")
	}

	m.saveResult(endEvent(30))
	if game.NewHighScore() {
		t.Errorf("lower score flagged as a new high score")
	}

	m.saveResult(endEvent(40))
	if game.NewHighScore() {
		t.Errorf("matching the stored best is not a new high score")
	}

	m.saveResult(endEvent(55))
	if !game.NewHighScore() {
		t.Errorf("beating the stored best not flagged")
	}

	best, err := store.HighScore(config.DifficultyMedium.String())
	if err != nil || best != 55 {
		t.Errorf("stored best = %d (%v), want 55", best, err)
	}
}

func TestSaveResultWithoutStore(t *testing.T) {
	game := mathrisk.New()
	game.SetConfig(config.DefaultConfig())

	m := &GameModel{game: game}
	m.saveResult(endEvent(40))

	if game.NewHighScore() {
		t.Errorf("no store, no high-score banner")
	}
}
