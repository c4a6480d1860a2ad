package rush

import "time"

// Event is one input to the state machine. Every state change goes through
// Game.Dispatch, one event at a time.
type Event interface {
	isEvent()
}

// TickEvent advances the simulation by Delta.
type TickEvent struct {
	Delta time.Duration
}

// MoveEvent reports the held horizontal direction: -1 left, 1 right, 0 none.
type MoveEvent struct {
	Dir int
}

// PointerDownEvent is a press at field coordinates (X, Y).
type PointerDownEvent struct {
	X, Y float64
}

// PointerUpEvent is a pointer release.
type PointerUpEvent struct{}

// OverlapEvent reports the player overlapping a collectible or bonus.
type OverlapEvent struct {
	Kind Kind
	Slot int
}

// CollideEvent reports the player hitting an obstacle.
type CollideEvent struct {
	Slot int
}

// StartEvent leaves the intro screen.
type StartEvent struct{}

// RestartEvent starts a fresh run after game over.
type RestartEvent struct{}

// PauseEvent toggles pause while playing.
type PauseEvent struct{}

func (TickEvent) isEvent()        {}
func (MoveEvent) isEvent()        {}
func (PointerDownEvent) isEvent() {}
func (PointerUpEvent) isEvent()   {}
func (OverlapEvent) isEvent()     {}
func (CollideEvent) isEvent()     {}
func (StartEvent) isEvent()       {}
func (RestartEvent) isEvent()     {}
func (PauseEvent) isEvent()       {}
