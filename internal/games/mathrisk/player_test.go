package mathrisk

import (
	"math"
	"testing"

	"github.com/esmanurarslan/mathrisk/internal/config"
	"github.com/esmanurarslan/mathrisk/internal/core"
)

func testPlayerConfig() config.PlayerConfig {
	return config.DefaultConfig().Player
}

func TestPlayerStaysInBounds(t *testing.T) {
	cfg := testPlayerConfig()
	p := NewPlayer(cfg, 80, 21)

	for i := 0; i < 600; i++ {
		p.Step(frame(core.ActionLeft), testDT)
	}
	if p.X() != 0 {
		t.Errorf("left clamp: x = %v, want 0", p.X())
	}

	for i := 0; i < 600; i++ {
		p.Step(frame(core.ActionRight), testDT)
	}
	if want := float64(80 - cfg.Width); p.X() != want {
		t.Errorf("right clamp: x = %v, want %v", p.X(), want)
	}
}

func TestPlayerBobOnlyWhileMoving(t *testing.T) {
	p := NewPlayer(testPlayerConfig(), 80, 21)

	bobbed := false
	for i := 0; i < 60; i++ {
		p.Step(frame(core.ActionRight), testDT)
		if p.Bounds().Y != 21 {
			bobbed = true
		}
	}
	if !bobbed {
		t.Errorf("avatar never bobbed while moving")
	}

	p.Step(frame(), testDT)
	if got := p.Bounds().Y; got != 21 {
		t.Errorf("idle avatar off base row: y = %d", got)
	}
	if p.bobPhase != 0 {
		t.Errorf("bob phase not reset when idle: %v", p.bobPhase)
	}
}

func TestPlayerIgnoresOpposingInputs(t *testing.T) {
	p := NewPlayer(testPlayerConfig(), 80, 21)
	start := p.X()
	p.Step(frame(core.ActionLeft, core.ActionRight), testDT)
	if math.Abs(p.X()-start) > 1e-9 {
		t.Errorf("opposing inputs moved the avatar: %v -> %v", start, p.X())
	}
}
