package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/esmanurarslan/mathrisk/internal/core"
	"github.com/esmanurarslan/mathrisk/internal/games/mathrisk"
	"github.com/esmanurarslan/mathrisk/internal/storage"
)

// GameModel is the Bubble Tea model for one MathRisk session.
// Simulation time is measured between ticks rather than assumed from the
// tick rate, so avatar speed and tile falls stay consistent when the
// terminal hiccups.
type GameModel struct {
	game        *mathrisk.Game
	screen      *core.Screen
	store       *storage.Store
	config      core.RuntimeConfig
	inputFrame  core.InputFrame
	gameState   core.GameState
	keyMapper   *KeyMapper
	lastTick    time.Time
	playSeconds float64
	quitting    bool
	backToMenu  bool
	resultSaved bool
}

// NewGameModel creates a model for the given session.
func NewGameModel(game *mathrisk.Game, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the session.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Esc while paused or on the game-over screen leaves to the menu.
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.Paused || m.gameState.GameOver) {
		m.backToMenu = true
		return m, nil
	}

	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Restart the session with the new playfield dimensions.
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.playSeconds = 0
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	now := time.Now()
	dt := 1.0 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
		if dt > maxFrameDT {
			dt = maxFrameDT
		}
		if dt < 0 {
			dt = 0
		}
	}
	m.lastTick = now

	// Restart with a fresh seed so each session is a new draw.
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.resultSaved = false
		m.playSeconds = 0
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	if !m.gameState.GameOver && !m.gameState.Paused {
		m.playSeconds += dt
	}

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State

	for _, ev := range result.Events {
		if ev.Kind == core.EventSessionEnd && !m.resultSaved {
			m.saveResult(ev)
			m.resultSaved = true
		}
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveResult persists the finished session. Best-effort: a storage failure
// never interrupts play.
func (m *GameModel) saveResult(ev core.Event) {
	if m.store == nil {
		return
	}
	nickname := m.game.Nickname()
	if nickname == "" {
		nickname = "anonymous"
	}
	difficulty := m.game.Difficulty().String()

	// Compare against the best stored before this run so the game-over
	// screen can announce a new record.
	prevBest, err := m.store.HighScore(difficulty)
	m.game.SetNewHighScore(err == nil && ev.Score > prevBest)

	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveScore(nickname, difficulty, ev.Score)
	//nolint:errcheck // Best-effort save
	m.store.SaveSessionResult(storage.SessionResult{
		Nickname:     nickname,
		Difficulty:   difficulty,
		Score:        ev.Score,
		EndReason:    string(ev.Reason),
		DurationSecs: int(m.playSeconds + 0.5),
	})
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for one session.
func Run(game *mathrisk.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
