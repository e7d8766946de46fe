package mathrisk

import (
	"math"

	"github.com/esmanurarslan/mathrisk/internal/config"
	"github.com/esmanurarslan/mathrisk/internal/core"
)

// Player is the avatar at the bottom of the screen. It only moves
// horizontally; a small sine bob animates it while it moves.
type Player struct {
	x        float64 // Left edge, fractional for smooth dt-scaled movement
	baseY    int     // Top row when not bobbing
	bobPhase float64 // Seconds spent moving, drives the bob sine
	moving   bool    // Whether the avatar moved last step
	cfg      config.PlayerConfig
	screenW  int
}

// NewPlayer creates the avatar centered horizontally with its top at baseY.
func NewPlayer(cfg config.PlayerConfig, screenW, baseY int) *Player {
	return &Player{
		x:       float64(screenW-cfg.Width) / 2,
		baseY:   baseY,
		cfg:     cfg,
		screenW: screenW,
	}
}

// Step advances the avatar per the frame's input, clamped to screen bounds.
// The bob phase only advances while moving and resets when idle, so the
// avatar settles back onto its base row.
func (p *Player) Step(in core.InputFrame, dt float64) {
	moving := false
	if in.Has(core.ActionLeft) {
		p.x -= p.cfg.Speed * dt
		moving = true
	}
	if in.Has(core.ActionRight) {
		p.x += p.cfg.Speed * dt
		moving = true
	}

	p.x = core.ClampF(p.x, 0, float64(p.screenW-p.cfg.Width))

	if moving {
		p.bobPhase += dt
	} else {
		p.bobPhase = 0
	}
	p.moving = moving
}

// bobOffset returns the current vertical bob displacement in rows.
func (p *Player) bobOffset() int {
	if !p.moving {
		return 0
	}
	offset := p.cfg.BobAmplitude * math.Sin(p.bobPhase*p.cfg.BobFrequency*2*math.Pi)
	return int(math.Round(offset))
}

// Bounds returns the avatar's collision rectangle.
func (p *Player) Bounds() core.Rect {
	return core.NewRect(int(p.x), p.baseY+p.bobOffset(), p.cfg.Width, p.cfg.Height)
}

// X returns the avatar's fractional left edge.
func (p *Player) X() float64 {
	return p.x
}
