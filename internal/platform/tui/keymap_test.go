package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-tui/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapIntent(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Intent
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.IntentUp},
		{"w", runeKey('w'), core.IntentUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.IntentDown},
		{"s", runeKey('s'), core.IntentDown},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.IntentLeft},
		{"a", runeKey('a'), core.IntentLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.IntentRight},
		{"d", runeKey('d'), core.IntentRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.IntentPause},
		{"p", runeKey('p'), core.IntentPause},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.IntentStart},
		{"r", runeKey('r'), core.IntentReset},
		{"q", runeKey('q'), core.IntentQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.IntentQuit},
		{"unbound key", runeKey('x'), core.IntentNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Intent(tc.msg); got != tc.expected {
				t.Errorf("Intent(%q) = %s, expected %s", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestKeyMapHelpCoverage(t *testing.T) {
	keys := DefaultKeyMap()

	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp should not be empty")
	}
	if len(keys.FullHelp()) == 0 {
		t.Error("FullHelp should not be empty")
	}
	for _, b := range keys.ShortHelp() {
		if len(b.Keys()) == 0 {
			t.Error("ShortHelp binding without keys")
		}
	}
}
