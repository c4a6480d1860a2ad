package rush

import "time"

// Mode is the top-level screen of the game.
type Mode int

const (
	ModeIntro Mode = iota
	ModePlaying
	ModeGameOver
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeIntro:
		return "intro"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

type trigger int

const (
	triggerStart trigger = iota
	triggerDeath
	triggerRestart
)

// transition returns the mode reached from m by t.
// ok is false when t is not valid in m, and m is returned unchanged.
func transition(m Mode, t trigger) (next Mode, ok bool) {
	switch {
	case m == ModeIntro && t == triggerStart:
		return ModePlaying, true
	case m == ModePlaying && t == triggerDeath:
		return ModeGameOver, true
	case m == ModeGameOver && t == triggerRestart:
		return ModePlaying, true
	default:
		return m, false
	}
}

// runState holds the counters of one run. A new value is built for every run.
type runState struct {
	score          int
	lives          int
	victory        bool
	tinted         bool
	poopSpawnCount int

	survival   *intervalTimer
	spawnTimer *intervalTimer // nil unless bonuses use the timer policy
}

func (s *runState) addScore(n int) {
	if n > 0 {
		s.score += n
	}
}

func (s *runState) gainLife(n int) {
	if n > 0 {
		s.lives += n
	}
}

// loseLife spends a spare life. It returns false when none is left.
func (s *runState) loseLife() bool {
	if s.lives == 0 {
		return false
	}
	s.lives--
	return true
}

// elapsedSpawnTimer is the time accumulated toward the next timed spawn.
func (s *runState) elapsedSpawnTimer() time.Duration {
	if s.spawnTimer == nil {
		return 0
	}
	return s.spawnTimer.elapsed
}
