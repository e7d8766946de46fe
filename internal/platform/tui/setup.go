package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/esmanurarslan/mathrisk/internal/config"
	"github.com/esmanurarslan/mathrisk/internal/core"
	"github.com/esmanurarslan/mathrisk/internal/games/mathrisk"
	"github.com/esmanurarslan/mathrisk/internal/storage"
)

// maxNicknameLen bounds nickname length for the scoreboard layout.
const maxNicknameLen = 12

// setupStage is the current screen of the pre-game flow.
type setupStage int

const (
	stageMenu setupStage = iota
	stageNickname
	stageAvatar
	stageDifficulty
	stageRules
)

// menuEntries are the main menu items in display order.
var menuEntries = []string{"Play", "How to Play", "High Scores", "Quit"}

// difficultyEntries are the selectable tiers in display order.
var difficultyEntries = []struct {
	value config.Difficulty
	blurb string
}{
	{config.DifficultyEasy, "addition and subtraction, small numbers"},
	{config.DifficultyMedium, "adds multiplication and division"},
	{config.DifficultyHard, "all operators including powers and roots"},
}

// SetupModel is the Bubble Tea model for the pre-game flow:
// main menu, nickname entry, avatar choice, difficulty choice.
type SetupModel struct {
	stage      setupStage
	cursor     int
	nickname   textinput.Model
	avatar     int
	difficulty int
	width      int
	height     int
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper

	quitting       bool
	done           bool
	openScoreboard bool
	inputErr       string
}

// NewSetupModel creates the setup flow model. The last used nickname and
// avatar are prefilled from stored preferences when available.
func NewSetupModel(store *storage.Store, cfg core.RuntimeConfig) SetupModel {
	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.CharLimit = maxNicknameLen
	ti.Width = maxNicknameLen + 2

	m := SetupModel{
		stage:     stageMenu,
		nickname:  ti,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}

	if store != nil {
		if last, err := store.GetPref("nickname"); err == nil && last != "" {
			m.nickname.SetValue(last)
		}
		if last, err := store.GetPref("avatar"); err == nil && last != "" {
			for i, a := range mathrisk.Avatars {
				if a.String() == last {
					m.avatar = i
				}
			}
		}
	}

	return m
}

// Init initializes the setup model.
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the setup flow.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	if m.stage == stageNickname {
		var cmd tea.Cmd
		m.nickname, cmd = m.nickname.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m SetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The nickname stage owns most keystrokes; only handle control keys here.
	if m.stage == stageNickname {
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "esc":
			m.stage = stageMenu
			m.inputErr = ""
			m.nickname.Blur()
			return m, nil
		case "enter":
			return m.confirmNickname()
		}
		var cmd tea.Cmd
		m.nickname, cmd = m.nickname.Update(msg)
		return m, cmd
	}

	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit

	case MenuActionBack:
		switch m.stage {
		case stageAvatar:
			m.stage = stageNickname
			return m, m.nickname.Focus()
		case stageDifficulty:
			m.stage = stageAvatar
		case stageRules:
			m.stage = stageMenu
		}
		return m, nil

	case MenuActionUp, MenuActionLeft:
		m.moveCursor(-1)

	case MenuActionDown, MenuActionRight:
		m.moveCursor(1)

	case MenuActionSelect:
		return m.confirmStage()
	}

	return m, nil
}

func (m *SetupModel) moveCursor(delta int) {
	switch m.stage {
	case stageMenu:
		m.cursor = clampCursor(m.cursor+delta, len(menuEntries))
	case stageAvatar:
		m.avatar = clampCursor(m.avatar+delta, len(mathrisk.Avatars))
	case stageDifficulty:
		m.difficulty = clampCursor(m.difficulty+delta, len(difficultyEntries))
	}
}

func clampCursor(v, n int) int {
	return core.Clamp(v, 0, n-1)
}

func (m SetupModel) confirmStage() (tea.Model, tea.Cmd) {
	switch m.stage {
	case stageMenu:
		switch menuEntries[m.cursor] {
		case "Play":
			m.stage = stageNickname
			return m, m.nickname.Focus()
		case "How to Play":
			m.stage = stageRules
		case "High Scores":
			m.openScoreboard = true
			return m, tea.Quit
		case "Quit":
			m.quitting = true
			return m, tea.Quit
		}

	case stageRules:
		m.stage = stageMenu

	case stageAvatar:
		m.stage = stageDifficulty

	case stageDifficulty:
		m.done = true
		m.savePrefs()
		return m, tea.Quit
	}
	return m, nil
}

func (m SetupModel) confirmNickname() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.nickname.Value())
	if name == "" {
		m.inputErr = "nickname cannot be empty"
		return m, nil
	}
	m.inputErr = ""
	m.nickname.SetValue(name)
	m.nickname.Blur()
	m.stage = stageAvatar
	return m, nil
}

func (m SetupModel) savePrefs() {
	if m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort; the session proceeds regardless
	m.store.SetPref("nickname", m.Nickname())
	//nolint:errcheck // Best-effort
	m.store.SetPref("avatar", m.Avatar().String())
}

// View renders the current setup stage.
func (m SetupModel) View() string {
	if m.quitting || m.done || m.openScoreboard {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText("M A T H R I S K", m.width))
	b.WriteString("\n\n")

	switch m.stage {
	case stageMenu:
		m.viewMenu(&b)
	case stageNickname:
		m.viewNickname(&b)
	case stageAvatar:
		m.viewAvatar(&b)
	case stageDifficulty:
		m.viewDifficulty(&b)
	case stageRules:
		m.viewRules(&b)
	}

	return b.String()
}

func (m SetupModel) viewMenu(b *strings.Builder) {
	b.WriteString(centerText("Catch the math, keep your coins", m.width))
	b.WriteString("\n\n")

	for i, entry := range menuEntries {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+entry, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit", m.width))
	b.WriteString("\n")
}

func (m SetupModel) viewNickname(b *strings.Builder) {
	b.WriteString(centerText("Who is playing?", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.nickname.View(), m.width))
	b.WriteString("\n")

	if m.inputErr != "" {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		b.WriteString(centerText(errStyle.Render(m.inputErr), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Confirm  |  Esc: Back", m.width))
	b.WriteString("\n")
}

func (m SetupModel) viewAvatar(b *strings.Builder) {
	b.WriteString(centerText("Pick your avatar", m.width))
	b.WriteString("\n\n")

	for i, a := range mathrisk.Avatars {
		marker := "   "
		if i == m.avatar {
			marker = " > "
		}
		for j, row := range a.Sprite() {
			prefix := "   "
			if j == 0 {
				prefix = marker
			}
			b.WriteString(centerText(prefix+row, m.width))
			b.WriteString("\n")
		}
		b.WriteString(centerText(a.Title(), m.width))
		b.WriteString("\n\n")
	}

	b.WriteString(centerText("Up/Down: Choose  |  Enter: Confirm  |  Esc: Back", m.width))
	b.WriteString("\n")
}

func (m SetupModel) viewDifficulty(b *strings.Builder) {
	b.WriteString(centerText("Choose a difficulty", m.width))
	b.WriteString("\n\n")

	for i, d := range difficultyEntries {
		cursor := "  "
		if i == m.difficulty {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-7s %s", cursor, d.value.Title(), d.blurb)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Choose  |  Enter: Play  |  Esc: Back", m.width))
	b.WriteString("\n")
}

func (m SetupModel) viewRules(b *strings.Builder) {
	b.WriteString(centerText("How to Play", m.width))
	b.WriteString("\n\n")

	lines := []string{
		"Tiles carrying math expressions fall from the top.",
		"Move under a tile to catch it; its value is added",
		"to your coins. Green tiles pay out, red ones cost.",
		"",
		"The session ends when the clock runs out, or when",
		"your coins drop below the bankrupt line.",
		"",
		"A/D or arrows   move",
		"P               pause",
		"R               restart after a session ends",
		"Esc             back to this menu",
	}
	for _, line := range lines {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter/Esc: Back", m.width))
	b.WriteString("\n")
}

// Nickname returns the confirmed nickname.
func (m SetupModel) Nickname() string {
	return strings.TrimSpace(m.nickname.Value())
}

// Avatar returns the chosen avatar.
func (m SetupModel) Avatar() mathrisk.Avatar {
	return mathrisk.Avatars[m.avatar]
}

// Difficulty returns the chosen difficulty.
func (m SetupModel) Difficulty() config.Difficulty {
	return difficultyEntries[m.difficulty].value
}

// IsDone returns true when the player finished the flow and wants to play.
func (m SetupModel) IsDone() bool {
	return m.done
}

// IsQuitting returns true if the user requested to quit.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if the user requested the scoreboard.
func (m SetupModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m SetupModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. Uses the rendered cell width
// so ANSI escapes and multi-byte runes do not skew the padding.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// SetupResult holds the outcome of running the setup flow.
type SetupResult struct {
	Play            bool
	Nickname        string
	Avatar          mathrisk.Avatar
	Difficulty      config.Difficulty
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunSetup runs the pre-game flow and returns the player's choices.
func RunSetup(store *storage.Store, cfg core.RuntimeConfig) (SetupResult, error) {
	model := NewSetupModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return SetupResult{Config: cfg}, err
	}

	m, ok := finalModel.(SetupModel)
	if !ok {
		return SetupResult{Config: cfg, Quit: true}, nil
	}

	result := SetupResult{Config: m.Config()}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsDone():
		result.Play = true
		result.Nickname = m.Nickname()
		result.Avatar = m.Avatar()
		result.Difficulty = m.Difficulty()
	default:
		result.Quit = true
	}

	return result, nil
}
