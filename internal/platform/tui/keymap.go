package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/carrot-rush/internal/core"
)

// HoldWindow is how long a direction key counts as held after its last
// press. Terminals report repeats, not releases, so a key is released once
// its repeats stop arriving.
const HoldWindow = 220 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case "enter", " ":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
	MenuActionPrev // previous difficulty
	MenuActionNext // next difficulty
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	case "a", "left", "h":
		return MenuActionPrev
	case "d", "right", "l":
		return MenuActionNext
	}
	return MenuActionNone
}

// heldKeys tracks direction keys that are still held down.
type heldKeys struct {
	left, right time.Time
}

// press records a direction key press. Pressing one direction releases
// the other.
func (h *heldKeys) press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		h.left, h.right = now, time.Time{}
	case core.ActionRight:
		h.right, h.left = now, time.Time{}
	}
}

// apply sets the held directions on the frame.
func (h *heldKeys) apply(frame *core.InputFrame, now time.Time) {
	if !h.left.IsZero() && now.Sub(h.left) < HoldWindow {
		frame.Set(core.ActionLeft)
	}
	if !h.right.IsZero() && now.Sub(h.right) < HoldWindow {
		frame.Set(core.ActionRight)
	}
}

func (h *heldKeys) release() {
	*h = heldKeys{}
}

// pointerFromMouse converts a left-button mouse event into a normalized
// pointer. The last screen row holds the HUD and is not part of the field.
// Some terminals report releases without a button.
func pointerFromMouse(msg tea.MouseMsg, width, height int) (core.Pointer, bool) {
	if width <= 0 || height < 2 {
		return core.Pointer{}, false
	}

	p := core.Pointer{
		X: core.Clamp((float64(msg.X)+0.5)/float64(width), 0, 1),
		Y: core.Clamp((float64(msg.Y)+0.5)/float64(height-1), 0, 1),
	}
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		p.Down = true
	case msg.Action == tea.MouseActionRelease &&
		(msg.Button == tea.MouseButtonLeft || msg.Button == tea.MouseButtonNone):
		p.Up = true
	default:
		return core.Pointer{}, false
	}
	return p, true
}

// mergePointer folds a new pointer event into the pending frame pointer.
// A press and release inside one tick are both kept.
func mergePointer(dst *core.Pointer, p core.Pointer) {
	if p.Down {
		dst.Down = true
		dst.X, dst.Y = p.X, p.Y
	}
	if p.Up {
		dst.Up = true
		if !dst.Down {
			dst.X, dst.Y = p.X, p.Y
		}
	}
}
