package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/carrot-rush/internal/core"
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
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionConfirm, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey() = (%v, %v), expected (%v, %v)", action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionPrev},
		{runeKey('d'), MenuActionNext},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}

func TestHeldKeys(t *testing.T) {
	var h heldKeys
	t0 := time.Unix(1000, 0)

	frameAt := func(now time.Time) core.InputFrame {
		f := core.NewInputFrame()
		h.apply(&f, now)
		return f
	}

	h.press(core.ActionLeft, t0)
	if f := frameAt(t0.Add(100 * time.Millisecond)); !f.Has(core.ActionLeft) {
		t.Error("left should be held inside the hold window")
	}
	if f := frameAt(t0.Add(HoldWindow)); f.Has(core.ActionLeft) {
		t.Error("left should be released after the hold window")
	}

	h.press(core.ActionRight, t0.Add(50*time.Millisecond))
	f := frameAt(t0.Add(60 * time.Millisecond))
	if f.Has(core.ActionLeft) || !f.Has(core.ActionRight) {
		t.Errorf("pressing right should release left, got %v", f.Actions())
	}

	h.release()
	if f := frameAt(t0.Add(60 * time.Millisecond)); !f.IsEmpty() {
		t.Errorf("release() should clear held keys, got %v", f.Actions())
	}
}

func TestPointerFromMouse(t *testing.T) {
	press := tea.MouseMsg{X: 2, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	p, ok := pointerFromMouse(press, 10, 5)
	if !ok || !p.Down || p.Up {
		t.Fatalf("press = %+v, %v", p, ok)
	}
	if p.X != 0.25 || p.Y != 0.375 {
		t.Errorf("press position = (%v, %v), expected (0.25, 0.375)", p.X, p.Y)
	}

	release := tea.MouseMsg{X: 0, Y: 23, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
	p, ok = pointerFromMouse(release, 80, 24)
	if !ok || !p.Up || p.Down || p.Y != 1 {
		t.Errorf("release = %+v, %v", p, ok)
	}

	motion := tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
	if _, ok := pointerFromMouse(motion, 80, 24); ok {
		t.Error("motion should be ignored")
	}
	right := tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}
	if _, ok := pointerFromMouse(right, 80, 24); ok {
		t.Error("right button should be ignored")
	}
}

func TestMergePointer(t *testing.T) {
	var dst core.Pointer
	mergePointer(&dst, core.Pointer{Down: true, X: 0.2, Y: 0.3})
	mergePointer(&dst, core.Pointer{Up: true, X: 0.9, Y: 0.9})

	if !dst.Down || !dst.Up || dst.X != 0.2 || dst.Y != 0.3 {
		t.Errorf("merged pointer = %+v", dst)
	}
}
