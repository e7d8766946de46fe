// Package mathrisk implements the falling-expression catch game.
// An avatar at the bottom of the screen catches tiles carrying arithmetic
// expressions; each caught tile adds its signed delta to the Coin score.
// The session ends when the clock runs out or the score drops below the
// bankrupt threshold.
package mathrisk

import (
	"fmt"

	"github.com/esmanurarslan/mathrisk/internal/config"
	"github.com/esmanurarslan/mathrisk/internal/core"
)

// Game holds the full session state. It implements core.Game and has no
// knowledge of terminals, keys or timing; the platform layer drives it.
type Game struct {
	cfg     core.RuntimeConfig
	gameCfg config.GameConfig
	tier    config.TierConfig
	ramp    *config.Ramp

	difficulty config.Difficulty
	avatar     Avatar
	nickname   string
	configPath string
	cfgLoaded  bool

	player *Player
	tiles  *TileManager

	coins        int
	timeLeft     float64
	elapsed      float64
	paused       bool
	gameOver     bool
	endReason    core.EndReason
	newHighScore bool
}

// New creates a game with default settings. Difficulty, avatar and nickname
// can be set before the first Reset.
func New() *Game {
	return &Game{difficulty: config.DifficultyEasy}
}

// ID returns the storage identifier for this game.
func (g *Game) ID() string { return "mathrisk" }

// Title returns the display name.
func (g *Game) Title() string { return "MathRisk" }

// SetConfigPath sets an explicit config file to load on the next Reset.
func (g *Game) SetConfigPath(path string) { g.configPath = path }

// SetConfig overrides the loaded configuration directly.
func (g *Game) SetConfig(cfg config.GameConfig) {
	g.gameCfg = cfg
	g.cfgLoaded = true
}

// SetDifficulty selects the tier used for expression generation and pacing.
func (g *Game) SetDifficulty(d config.Difficulty) { g.difficulty = d }

// Difficulty returns the session difficulty.
func (g *Game) Difficulty() config.Difficulty { return g.difficulty }

// SetAvatar selects the player sprite.
func (g *Game) SetAvatar(a Avatar) { g.avatar = a }

// SetNickname records the player's nickname for the session.
func (g *Game) SetNickname(n string) { g.nickname = n }

// Nickname returns the player's nickname.
func (g *Game) Nickname() string { return g.nickname }

// SetNewHighScore marks the finished session as a personal-best run.
// The platform layer sets it after comparing against stored scores; the
// game-over view shows a banner while it is set.
func (g *Game) SetNewHighScore(v bool) { g.newHighScore = v }

// NewHighScore reports whether the finished session beat the stored best.
func (g *Game) NewHighScore() bool { return g.newHighScore }

// Reset initializes a fresh session. Safe to call again for a restart;
// the same seed replays the same session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	if !g.cfgLoaded {
		loaded, err := config.Load(g.configPath)
		if err != nil {
			loaded = config.DefaultConfig()
		}
		g.gameCfg = loaded
		g.cfgLoaded = true
	}

	g.tier = g.gameCfg.TierFor(g.difficulty)
	g.ramp = config.NewRamp(g.gameCfg.Ramp)

	g.player = NewPlayer(g.gameCfg.Player, cfg.ScreenW, g.playerBaseY())
	g.tiles = NewTileManager(g.tier, g.gameCfg.Tiles, g.ramp, cfg.ScreenW, cfg.Seed)

	g.coins = g.gameCfg.Session.StartingCoins
	g.timeLeft = g.gameCfg.Session.TimeLimitSeconds
	g.elapsed = 0
	g.paused = false
	g.gameOver = false
	g.endReason = core.EndReasonNone
	g.newHighScore = false
}

// groundY is the row of the ground line the avatar stands on.
func (g *Game) groundY() int {
	return g.cfg.ScreenH - 1
}

func (g *Game) playerBaseY() int {
	return g.cfg.ScreenH - 1 - g.gameCfg.Player.Height
}

// Step advances the session by dt seconds. The per-tick order is fixed:
// pause handling, player movement, tile advance, collection, misses, clock,
// termination check, then spawning. Termination is checked before spawning
// so no tile appears on the final tick, and timeout wins when the clock and
// a bankrupting catch land on the same tick.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	var events []core.Event

	if g.gameOver {
		if in.Has(core.ActionRestart) {
			g.Reset(g.cfg)
		}
		return core.StepResult{State: g.State(), Events: events}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State(), Events: events}
	}

	g.player.Step(in, dt)
	g.tiles.Advance(dt, g.elapsed)

	threshold := g.gameCfg.Session.BankruptThreshold
	g.tiles.Collect(g.player.Bounds(), func(delta int) bool {
		g.coins += delta
		events = append(events, core.Event{Kind: core.EventCollect, Delta: delta})
		return g.coins >= threshold
	})

	for i := g.tiles.RemoveBelow(g.groundY()); i > 0; i-- {
		events = append(events, core.Event{Kind: core.EventMiss})
	}

	g.timeLeft -= dt
	g.elapsed += dt

	if g.timeLeft <= 0 {
		g.timeLeft = 0
		g.endSession(core.EndReasonTimeout, &events)
	} else if g.coins < threshold {
		g.endSession(core.EndReasonBankrupt, &events)
	}

	if !g.gameOver {
		g.tiles.MaybeSpawn(dt, g.elapsed)
	}

	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) endSession(reason core.EndReason, events *[]core.Event) {
	g.gameOver = true
	g.endReason = reason
	*events = append(*events, core.Event{
		Kind:   core.EventSessionEnd,
		Reason: reason,
		Score:  g.coins,
	})
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.coins,
		TimeLeft:  g.timeLeft,
		GameOver:  g.gameOver,
		EndReason: g.endReason,
		Paused:    g.paused,
	}
}

// Render draws the session into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)
	g.renderTiles(dst)
	g.renderGround(dst)
	g.renderPlayer(dst)

	if g.paused {
		g.renderPauseOverlay(dst)
	}
	if g.gameOver {
		g.renderGameOver(dst)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Coins: %d ", g.coins)
	color := core.ColorYellow
	if g.coins < g.gameCfg.Session.BankruptThreshold+5 {
		color = core.ColorRed
	}
	dst.DrawTextColored(1, 0, hud, color)

	timer := fmt.Sprintf(" Time: %02d ", int(g.timeLeft+0.999))
	dst.DrawTextColored(dst.Width()-len(timer)-1, 0, timer, core.ColorCyan)

	diff := " " + g.difficulty.Title() + " "
	dst.DrawTextColored((dst.Width()-len(diff))/2, 0, diff, core.ColorGray)
}

func (g *Game) renderTiles(dst *core.Screen) {
	for _, t := range g.tiles.Tiles() {
		y := int(t.Y)
		if y < 1 || y >= g.groundY() {
			continue
		}
		color := core.ColorGreen
		switch {
		case t.Expr.Delta < 0:
			color = core.ColorRed
		case t.Expr.Delta == 0:
			color = core.ColorYellow
		}
		dst.DrawTextColored(t.X, y, "["+t.Expr.Text+"]", color)
	}
}

func (g *Game) renderGround(dst *core.Screen) {
	dst.DrawHLine(0, g.groundY(), dst.Width(), '=')
}

func (g *Game) renderPlayer(dst *core.Screen) {
	bounds := g.player.Bounds()
	for i, row := range g.avatar.Sprite() {
		if i >= bounds.H {
			break
		}
		dst.DrawTextColored(bounds.X, bounds.Y+i, row, core.ColorBrightCyan)
	}
}

func (g *Game) renderPauseOverlay(dst *core.Screen) {
	w, h := 24, 5
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2
	dst.DrawBox(core.NewRect(x, y, w, h))
	dst.DrawTextCenteredColored(y+1, "PAUSED", core.ColorBrightYellow)
	dst.DrawTextCenteredColored(y+3, "p resume  esc menu", core.ColorGray)
}

func (g *Game) renderGameOver(dst *core.Screen) {
	w, h := 30, 7
	if g.newHighScore {
		h = 9
	}
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2
	dst.DrawBox(core.NewRect(x, y, w, h))

	title := "TIME'S UP!"
	if g.endReason == core.EndReasonBankrupt {
		title = "BANKRUPT!"
	}
	dst.DrawTextCenteredColored(y+1, title, core.ColorBrightRed)
	dst.DrawTextCenteredColored(y+3, fmt.Sprintf("Final coins: %d", g.coins), core.ColorYellow)

	hintY := y + 5
	if g.newHighScore {
		dst.DrawTextCenteredColored(hintY, "NEW HIGH SCORE!", core.ColorBrightGreen)
		hintY += 2
	}
	dst.DrawTextCenteredColored(hintY, "r restart  q quit", core.ColorGray)
}
