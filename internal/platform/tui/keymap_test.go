package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"w", runeKey('w'), core.ActionUp, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"s", runeKey('s'), core.ActionDown, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"k", runeKey('k'), core.ActionUp, false},
		{"h", runeKey('h'), core.ActionLeft, false},
		{"j", runeKey('j'), core.ActionDown, false},
		{"l", runeKey('l'), core.ActionRight, false},
		{"pause", runeKey('p'), core.ActionPause, false},
		{"escape pauses", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"restart", runeKey('r'), core.ActionRestart, false},
		{"quit", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)",
					tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestGameKeyMapFullHelpCoversBindings(t *testing.T) {
	keys := NewKeyMapper().Keys()

	var full []key.Binding
	for _, col := range keys.FullHelp() {
		full = append(full, col...)
	}
	if len(full) != 8 {
		t.Errorf("full help lists %d bindings, want 8", len(full))
	}

	for _, b := range full {
		h := b.Help()
		if h.Key == "" || h.Desc == "" {
			t.Errorf("binding without help text: %+v", h)
		}
		for _, k := range b.Keys() {
			arrow := k == "up" || k == "down" || k == "left" || k == "right"
			if !arrow && !strings.Contains(h.Key, k) {
				t.Errorf("help key %q does not mention bound key %q", h.Key, k)
			}
		}
	}
}

func TestGameKeyMapMoveSummarizesDirections(t *testing.T) {
	keys := NewKeyMapper().Keys()

	want := map[string]bool{}
	for _, b := range []key.Binding{keys.Up, keys.Down, keys.Left, keys.Right} {
		for _, k := range b.Keys() {
			want[k] = true
		}
	}

	got := map[string]bool{}
	for _, k := range keys.Move.Keys() {
		got[k] = true
	}

	if len(got) != len(want) {
		t.Fatalf("move help covers %d keys, directions bind %d", len(got), len(want))
	}
	for k := range want {
		if !got[k] {
			t.Errorf("move help is missing %q", k)
		}
	}

	if short := keys.ShortHelp(); len(short) == 0 || short[0].Help().Desc != "move" {
		t.Error("short help should start with the move summary")
	}
}
