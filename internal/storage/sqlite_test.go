package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "mathrisk.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open(%s) failed: %v", dbPath, err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	scores := []struct {
		nickname string
		score    int
	}{
		{"alice", 40},
		{"bob", 55},
		{"carol", 31},
	}
	for _, s := range scores {
		if _, err := store.SaveScore(s.nickname, "easy", s.score); err != nil {
			t.Fatalf("SaveScore(%s) failed: %v", s.nickname, err)
		}
	}
	if _, err := store.SaveScore("dave", "hard", 99); err != nil {
		t.Fatalf("SaveScore(dave) failed: %v", err)
	}

	top, err := store.TopScores("easy", 10)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("got %d easy entries, want 3", len(top))
	}
	if top[0].Nickname != "bob" || top[0].Score != 55 {
		t.Errorf("top entry = %s/%d, want bob/55", top[0].Nickname, top[0].Score)
	}
	for i := 1; i < len(top); i++ {
		if top[i].Score > top[i-1].Score {
			t.Errorf("scores not descending at %d: %d > %d", i, top[i].Score, top[i-1].Score)
		}
	}
}

func TestTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 15; i++ {
		if _, err := store.SaveScore("p", "medium", i); err != nil {
			t.Fatalf("SaveScore failed: %v", err)
		}
	}

	top, err := store.TopScores("medium", 5)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(top) != 5 {
		t.Errorf("got %d entries, want 5", len(top))
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	hs, err := store.HighScore("easy")
	if err != nil {
		t.Fatalf("HighScore on empty store failed: %v", err)
	}
	if hs != 0 {
		t.Errorf("empty high score = %d, want 0", hs)
	}

	store.SaveScore("alice", "easy", 12)
	store.SaveScore("bob", "easy", 47)

	hs, err = store.HighScore("easy")
	if err != nil {
		t.Fatalf("HighScore failed: %v", err)
	}
	if hs != 47 {
		t.Errorf("high score = %d, want 47", hs)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("alice", "easy", 10)
	store.SaveScore("bob", "hard", 20)

	if err := store.ClearScores("easy"); err != nil {
		t.Fatalf("ClearScores failed: %v", err)
	}

	easy, _ := store.TopScores("easy", 10)
	if len(easy) != 0 {
		t.Errorf("easy scores survived clear: %d", len(easy))
	}
	hard, _ := store.TopScores("hard", 10)
	if len(hard) != 1 {
		t.Errorf("hard scores affected by easy clear: %d", len(hard))
	}
}

func TestSessionResultRoundTrip(t *testing.T) {
	store := openTestStore(t)

	in := SessionResult{
		Nickname:     "alice",
		Difficulty:   "medium",
		Score:        9,
		EndReason:    "bankrupt",
		DurationSecs: 42,
	}
	if _, err := store.SaveSessionResult(in); err != nil {
		t.Fatalf("SaveSessionResult failed: %v", err)
	}

	recent, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions failed: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("got %d sessions, want 1", len(recent))
	}

	got := recent[0]
	if got.Nickname != in.Nickname || got.Difficulty != in.Difficulty ||
		got.Score != in.Score || got.EndReason != in.EndReason ||
		got.DurationSecs != in.DurationSecs {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestPlayerHistory(t *testing.T) {
	store := openTestStore(t)
	store.SaveSessionResult(SessionResult{Nickname: "alice", Difficulty: "easy", Score: 30, EndReason: "timeout"})
	store.SaveSessionResult(SessionResult{Nickname: "bob", Difficulty: "easy", Score: 8, EndReason: "bankrupt"})
	store.SaveSessionResult(SessionResult{Nickname: "alice", Difficulty: "hard", Score: 50, EndReason: "timeout"})

	history, err := store.PlayerHistory("alice", 10)
	if err != nil {
		t.Fatalf("PlayerHistory failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("got %d entries for alice, want 2", len(history))
	}
	for _, r := range history {
		if r.Nickname != "alice" {
			t.Errorf("foreign entry in history: %+v", r)
		}
	}
}

func TestDifficultyStats(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("alice", "easy", 10)
	store.SaveScore("bob", "easy", 30)
	store.SaveScore("carol", "hard", 60)

	stats, err := store.GetDifficultyStats()
	if err != nil {
		t.Fatalf("GetDifficultyStats failed: %v", err)
	}

	easy := stats["easy"]
	if easy == nil || easy.GamesCount != 2 || easy.HighScore != 30 || easy.AvgScore != 20 {
		t.Errorf("easy stats = %+v", easy)
	}
	hard := stats["hard"]
	if hard == nil || hard.GamesCount != 1 || hard.HighScore != 60 {
		t.Errorf("hard stats = %+v", hard)
	}
}

func TestPrefs(t *testing.T) {
	store := openTestStore(t)

	v, err := store.GetPref("nickname")
	if err != nil {
		t.Fatalf("GetPref on empty store failed: %v", err)
	}
	if v != "" {
		t.Errorf("unset pref = %q, want empty", v)
	}

	if err := store.SetPref("nickname", "alice"); err != nil {
		t.Fatalf("SetPref failed: %v", err)
	}
	if err := store.SetPref("nickname", "bob"); err != nil {
		t.Fatalf("SetPref overwrite failed: %v", err)
	}

	v, err = store.GetPref("nickname")
	if err != nil {
		t.Fatalf("GetPref failed: %v", err)
	}
	if v != "bob" {
		t.Errorf("pref = %q, want bob", v)
	}
}
