package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the externally visible status of a game.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Spare lives
	GameOver bool // Whether the run has ended
	Victory  bool // Whether the run ended above the victory threshold
	Paused   bool // Whether the game is paused
}

// NoticeKind identifies a state change pushed to the presentation layer.
type NoticeKind int

const (
	NoticeScore        NoticeKind = iota // score changed, Value = new score
	NoticeLives                          // lives changed, Value = new lives
	NoticeStart                          // intro left, run started
	NoticeTint                           // player marked as hit
	NoticeVictory                        // victory text requested
	NoticeRestartShown                   // restart control requested
	NoticeGameOver                       // run ended, Value = final score
	NoticeRestart                        // new run started after game over
)

// String returns a short name for the notice kind.
func (k NoticeKind) String() string {
	switch k {
	case NoticeScore:
		return "score"
	case NoticeLives:
		return "lives"
	case NoticeStart:
		return "start"
	case NoticeTint:
		return "tint"
	case NoticeVictory:
		return "victory"
	case NoticeRestartShown:
		return "restart_shown"
	case NoticeGameOver:
		return "game_over"
	case NoticeRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Notice is one state change emitted during a tick.
type Notice struct {
	Kind  NoticeKind
	Value int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Notices are in the order they occurred.
type StepResult struct {
	State   GameState
	Notices []Notice
}

// Has reports whether a notice of the given kind was emitted this tick.
func (r StepResult) Has(kind NoticeKind) bool {
	for _, n := range r.Notices {
		if n.Kind == kind {
			return true
		}
	}
	return false
}
