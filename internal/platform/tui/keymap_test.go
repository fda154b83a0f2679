package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/term2048/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"w is up", runeKey('w'), core.ActionUp},
		{"s is down", runeKey('s'), core.ActionDown},
		{"a is left", runeKey('a'), core.ActionLeft},
		{"d is right", runeKey('d'), core.ActionRight},
		{"k is up", runeKey('k'), core.ActionUp},
		{"j is down", runeKey('j'), core.ActionDown},
		{"h is left", runeKey('h'), core.ActionLeft},
		{"l is right", runeKey('l'), core.ActionRight},
		{"r restarts", runeKey('r'), core.ActionRestart},
		{"q quits", runeKey('q'), core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound key", runeKey('x'), core.ActionNone},
		{"enter is unbound", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.expected {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.expected)
			}
		})
	}
}

func TestKeyMapHelpSurface(t *testing.T) {
	keys := DefaultKeyMap()

	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp should list bindings")
	}
	if len(keys.FullHelp()) == 0 {
		t.Error("FullHelp should list binding groups")
	}
}
