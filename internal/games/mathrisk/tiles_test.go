package mathrisk

import (
	"testing"

	"github.com/esmanurarslan/mathrisk/internal/config"
	"github.com/esmanurarslan/mathrisk/internal/core"
)

func newTestManager(seed int64) *TileManager {
	cfg := config.DefaultConfig()
	cfg.Ramp.Enabled = false
	return NewTileManager(cfg.Tiers.Easy, cfg.Tiles, config.NewRamp(cfg.Ramp), 80, seed)
}

func TestSpawnWaveUsesDistinctLanes(t *testing.T) {
	m := newTestManager(5)
	for i := 0; i < 200; i++ {
		m.Reset(int64(i))
		m.spawnWave()
		seen := make(map[int]bool)
		for _, tile := range m.Tiles() {
			if seen[tile.Lane] {
				t.Fatalf("seed %d: duplicate lane %d in one wave", i, tile.Lane)
			}
			seen[tile.Lane] = true
		}
	}
}

func TestSpawnWaveCountWithinLimit(t *testing.T) {
	cfg := config.DefaultConfig()
	m := newTestManager(11)
	for i := 0; i < 200; i++ {
		m.Reset(int64(i))
		m.spawnWave()
		n := m.Count()
		if n < 1 || n > cfg.Tiles.MaxPerSpawn {
			t.Fatalf("seed %d: wave of %d tiles, want 1..%d", i, n, cfg.Tiles.MaxPerSpawn)
		}
	}
}

func TestSpawnedTilesFitScreen(t *testing.T) {
	m := newTestManager(23)
	for i := 0; i < 50; i++ {
		m.spawnWave()
	}
	for _, tile := range m.Tiles() {
		b := tile.Bounds()
		if b.X < 0 || b.Right() > 80 {
			t.Errorf("tile %q outside screen: x=%d w=%d", tile.Expr.Text, b.X, b.W)
		}
		if tile.FallSpeed < m.tier.FallSpeedMin || tile.FallSpeed > m.tier.FallSpeedMax {
			t.Errorf("tile speed %v outside [%v, %v]", tile.FallSpeed, m.tier.FallSpeedMin, m.tier.FallSpeedMax)
		}
	}
}

func TestMaybeSpawnHonorsInterval(t *testing.T) {
	m := newTestManager(7)
	interval := m.tier.SpawnInterval

	m.MaybeSpawn(interval/2, 0)
	if m.Count() != 0 {
		t.Fatalf("spawned before the interval elapsed")
	}
	m.MaybeSpawn(interval/2, 0)
	if m.Count() == 0 {
		t.Fatalf("no spawn after a full interval")
	}
}

func TestCollectStopsApplyingOnFalse(t *testing.T) {
	m := newTestManager(1)
	avatar := core.NewRect(10, 10, 5, 2)
	for i := 0; i < 3; i++ {
		m.tiles = append(m.tiles, &Tile{X: 10, Y: 10})
	}

	applied := 0
	m.Collect(avatar, func(delta int) bool {
		applied++
		return false
	})
	if applied != 1 {
		t.Errorf("apply called %d times after returning false, want 1", applied)
	}
	if m.Count() != 0 {
		t.Errorf("overlapping tiles not all removed: %d live", m.Count())
	}
}

func TestAdvanceScalesWithDT(t *testing.T) {
	m := newTestManager(1)
	m.tiles = append(m.tiles, &Tile{Y: 0, FallSpeed: 6})

	m.Advance(0.5, 0)
	if got := m.Tiles()[0].Y; got != 3 {
		t.Errorf("after 0.5s at speed 6: y = %v, want 3", got)
	}
}
