package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/esmanurarslan/mathrisk/internal/core"
)

func pressKey(t *testing.T, m SetupModel, key string) SetupModel {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	sm, ok := next.(SetupModel)
	if !ok {
		t.Fatalf("Update did not return a SetupModel")
	}
	return sm
}

func TestSetupRulesStage(t *testing.T) {
	m := NewSetupModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	// "How to Play" is the second menu entry.
	m = pressKey(t, m, "s")
	m = pressKey(t, m, "enter")
	if m.stage != stageRules {
		t.Fatalf("stage = %v, want rules", m.stage)
	}

	view := m.View()
	if !strings.Contains(view, "How to Play") {
		t.Errorf("rules view missing title:\n%s", view)
	}
	if !strings.Contains(view, "A/D or arrows") {
		t.Errorf("rules view missing movement keys:\n%s", view)
	}

	m = pressKey(t, m, "esc")
	if m.stage != stageMenu {
		t.Errorf("esc did not return to the menu")
	}
}

func TestSetupRulesConfirmReturnsToMenu(t *testing.T) {
	m := NewSetupModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	m = pressKey(t, m, "s")
	m = pressKey(t, m, "enter")
	m = pressKey(t, m, "enter")
	if m.stage != stageMenu {
		t.Errorf("enter on the rules screen should return to the menu")
	}
}

func leadingSpaces(s string) int {
	return len(s) - len(strings.TrimLeft(s, " "))
}

func TestCenterTextMultibyte(t *testing.T) {
	// 5 display cells in 7 bytes; byte-based centering would pad by 7.
	line := centerText("(=ω=)", 21)
	if pad := leadingSpaces(line); pad != 8 {
		t.Errorf("padding = %d, want 8", pad)
	}
}

func TestCenterTextIgnoresANSI(t *testing.T) {
	// Escape sequences contribute bytes but no cells.
	styled := "\x1b[31moops\x1b[0m"
	line := centerText(styled, 20)
	if pad := leadingSpaces(line); pad != 8 {
		t.Errorf("padding = %d, want 8", pad)
	}
}
