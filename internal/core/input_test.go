package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()
	if !f.IsEmpty() {
		t.Fatal("New frame should be empty")
	}

	f.Set(ActionLeft)
	f.Set(ActionRestart)

	if !f.Has(ActionLeft) || !f.Has(ActionRestart) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("Unset action should not be reported")
	}
	if f.Has(ActionNone) {
		t.Error("ActionNone is never set")
	}

	actions := f.Actions()
	if len(actions) != 2 || actions[0] != ActionLeft || actions[1] != ActionRestart {
		t.Errorf("Actions() = %v, expected [Left Restart]", actions)
	}

	f.Clear()
	if !f.IsEmpty() {
		t.Error("Clear should empty the frame")
	}
}

func TestInputFrameMaskRoundTrip(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	f.Set(ActionPause)
	f.Pointer = Pointer{Down: true, X: 0.25, Y: 0.5}

	g := FrameFromMask(f.Mask(), f.Pointer)
	if g != f {
		t.Errorf("FrameFromMask() = %+v, expected %+v", g, f)
	}

	// Unknown bits are dropped
	h := FrameFromMask(1<<30|f.Mask(), Pointer{})
	if h.Mask() != f.Mask() {
		t.Errorf("Unknown bits should be dropped, mask = %b", h.Mask())
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" || ActionQuit.String() != "Quit" {
		t.Error("Unexpected action names")
	}
	if Action(99).String() != "Unknown" {
		t.Error("Out of range action should be Unknown")
	}
}
