package core

// Action is a semantic game action, abstracted from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - move left while held
	ActionRight          // Right arrow, D - move right while held
	ActionConfirm        // Enter, Space - start from the intro screen
	ActionRestart        // R - restart after game over
	ActionPause          // P - pause/unpause
	ActionBack           // B, Esc - back to menu
	ActionQuit           // Q, Ctrl+C - exit
	actionCount
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Pointer carries mouse/touch input for one frame.
// X and Y are normalized to [0, 1] across the screen so the game can map them
// into its own coordinate space independent of the terminal size.
type Pointer struct {
	Down bool    // pressed this frame
	Up   bool    // released this frame
	X, Y float64 // position of the press/release
}

// InputFrame is the input state of one simulation tick.
type InputFrame struct {
	mask    uint32
	Pointer Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a <= ActionNone || a >= actionCount {
		return
	}
	f.mask |= 1 << uint(a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if a <= ActionNone || a >= actionCount {
		return false
	}
	return f.mask&(1<<uint(a)) != 0
}

// Actions returns the triggered actions in declaration order.
func (f InputFrame) Actions() []Action {
	var out []Action
	for a := ActionNone + 1; a < actionCount; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// Mask returns the compact bit representation of the triggered actions.
func (f InputFrame) Mask() uint32 {
	return f.mask
}

// FrameFromMask rebuilds a frame from Mask output and a pointer state.
// Unknown bits are dropped.
func FrameFromMask(mask uint32, p Pointer) InputFrame {
	valid := uint32(0)
	for a := ActionNone + 1; a < actionCount; a++ {
		valid |= 1 << uint(a)
	}
	return InputFrame{mask: mask & valid, Pointer: p}
}

// IsEmpty reports whether nothing happened in this frame.
func (f InputFrame) IsEmpty() bool {
	return f.mask == 0 && f.Pointer == (Pointer{})
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.mask = 0
	f.Pointer = Pointer{}
}
