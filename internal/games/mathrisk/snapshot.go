package mathrisk

import (
	"github.com/esmanurarslan/mathrisk/internal/core"
)

// Snapshot is a value copy of every piece of mutable session state.
// Tests compare snapshots to verify determinism and that pausing freezes
// the simulation completely.
type Snapshot struct {
	Coins      int
	TimeLeft   float64
	Elapsed    float64
	Paused     bool
	GameOver   bool
	EndReason  core.EndReason
	PlayerX    float64
	BobPhase   float64
	SpawnTimer float64
	Tiles      []Tile
}

// Snapshot captures the current session state by value.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Coins:      g.coins,
		TimeLeft:   g.timeLeft,
		Elapsed:    g.elapsed,
		Paused:     g.paused,
		GameOver:   g.gameOver,
		EndReason:  g.endReason,
		PlayerX:    g.player.x,
		BobPhase:   g.player.bobPhase,
		SpawnTimer: g.tiles.spawnTimer,
		Tiles:      make([]Tile, 0, len(g.tiles.tiles)),
	}
	for _, t := range g.tiles.tiles {
		s.Tiles = append(s.Tiles, *t)
	}
	return s
}
