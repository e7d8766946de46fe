package mathrisk

import (
	"math/rand"

	"github.com/esmanurarslan/mathrisk/internal/config"
	"github.com/esmanurarslan/mathrisk/internal/core"
	"github.com/esmanurarslan/mathrisk/internal/expr"
)

// Tile is one falling expression. X is fixed at spawn; Y is fractional so
// fall speed scales with dt. FallSpeed is the tile's base speed before the
// session ramp is applied.
type Tile struct {
	Expr      expr.Expression
	Lane      int
	X         int
	Y         float64
	FallSpeed float64
}

// Width returns the tile's on-screen width including the brackets.
func (t *Tile) Width() int {
	return len([]rune(t.Expr.Text)) + 2
}

// Bounds returns the tile's collision rectangle. Tiles are one row tall.
func (t *Tile) Bounds() core.Rect {
	return core.NewRect(t.X, int(t.Y), t.Width(), 1)
}

// TileManager owns the falling tiles: spawning on a timer, advancing them,
// and resolving collection and misses. All randomness flows through the
// seeded rng so a session replays identically for the same seed.
type TileManager struct {
	tiles      []*Tile
	gen        *expr.Generator
	rng        *rand.Rand
	tier       config.TierConfig
	tilesCfg   config.TilesConfig
	ramp       *config.Ramp
	screenW    int
	spawnTimer float64
}

// NewTileManager creates a tile manager for one session.
func NewTileManager(tier config.TierConfig, tilesCfg config.TilesConfig, ramp *config.Ramp, screenW int, seed int64) *TileManager {
	return &TileManager{
		tiles:    make([]*Tile, 0, 16),
		gen:      expr.NewGenerator(seed),
		rng:      rand.New(rand.NewSource(seed)),
		tier:     tier,
		tilesCfg: tilesCfg,
		ramp:     ramp,
		screenW:  screenW,
	}
}

// Reset clears all tiles and reseeds the random streams.
func (m *TileManager) Reset(seed int64) {
	m.tiles = m.tiles[:0]
	m.gen.Reseed(seed)
	m.rng = rand.New(rand.NewSource(seed))
	m.spawnTimer = 0
}

// Tiles returns the live tiles in spawn order.
func (m *TileManager) Tiles() []*Tile {
	return m.tiles
}

// Count returns the number of live tiles.
func (m *TileManager) Count() int {
	return len(m.tiles)
}

// Advance moves every tile down by its ramp-scaled speed.
func (m *TileManager) Advance(dt, elapsed float64) {
	for _, t := range m.tiles {
		t.Y += m.ramp.Speed(t.FallSpeed, elapsed) * dt
	}
}

// MaybeSpawn accumulates the spawn timer and creates a new wave when the
// ramp-scaled interval elapses. At most one wave spawns per tick.
func (m *TileManager) MaybeSpawn(dt, elapsed float64) {
	m.spawnTimer += dt
	interval := m.ramp.SpawnInterval(m.tier.SpawnInterval, elapsed)
	if m.spawnTimer < interval {
		return
	}
	m.spawnTimer -= interval
	m.spawnWave()
}

// spawnWave creates 1..MaxPerSpawn tiles at distinct random lanes,
// entering just above the visible screen.
func (m *TileManager) spawnWave() {
	lanes := m.tilesCfg.Lanes
	if lanes < 1 {
		lanes = 1
	}
	count := 1
	if m.tilesCfg.MaxPerSpawn > 1 {
		count = 1 + m.rng.Intn(m.tilesCfg.MaxPerSpawn)
	}
	if count > lanes {
		count = lanes
	}

	perm := m.rng.Perm(lanes)
	for i := 0; i < count; i++ {
		m.tiles = append(m.tiles, m.newTile(perm[i], lanes))
	}
}

// newTile builds a tile with a fresh expression, centered in its lane.
func (m *TileManager) newTile(lane, lanes int) *Tile {
	t := &Tile{
		Expr: m.gen.Generate(m.tier),
		Lane: lane,
		Y:    -1,
	}
	t.FallSpeed = m.tier.FallSpeedMin + m.rng.Float64()*(m.tier.FallSpeedMax-m.tier.FallSpeedMin)

	laneW := m.screenW / lanes
	x := lane*laneW + (laneW-t.Width())/2
	t.X = core.Clamp(x, 0, core.Max(0, m.screenW-t.Width()))
	return t
}

// Collect removes every tile intersecting the avatar and reports each one's
// delta through apply, in spawn order. When apply returns false the remaining
// overlapping tiles are still removed but their deltas are discarded.
func (m *TileManager) Collect(avatar core.Rect, apply func(delta int) bool) {
	applying := true
	kept := m.tiles[:0]
	for _, t := range m.tiles {
		if t.Bounds().Intersects(avatar) {
			if applying {
				applying = apply(t.Expr.Delta)
			}
			continue
		}
		kept = append(kept, t)
	}
	m.tiles = kept
}

// RemoveBelow removes tiles whose top has passed the given row and returns
// how many were dropped.
func (m *TileManager) RemoveBelow(row int) int {
	missed := 0
	kept := m.tiles[:0]
	for _, t := range m.tiles {
		if int(t.Y) > row {
			missed++
			continue
		}
		kept = append(kept, t)
	}
	m.tiles = kept
	return missed
}
