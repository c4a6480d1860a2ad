// Package rush implements Carrot Rush: a rabbit dodges falling poop while
// catching carrots for points and cookies for spare lives.
//
// The game is a deterministic state machine. Every change goes through
// Dispatch; Step translates one frame of input into events and a tick.
package rush

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/carrot-rush/internal/config"
	"github.com/vovakirdan/carrot-rush/internal/core"
)

// Game implements the Carrot Rush run loop and scoring.
type Game struct {
	variant    Variant
	custom     *config.RushConfig // set by NewWithConfig; skips file loading
	preset     *config.DifficultyPreset
	cfg        config.RushConfig
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager

	seed int64 // seed of the current run
	rng  *rand.Rand

	mode   Mode
	paused bool
	run    runState
	pools  [kindCount]*Pool
	player player
	tick   int     // ticks simulated in the current run
	scroll float64 // background offset in px

	keyDir     int // held key direction
	pointerDir int // direction chosen by the held pointer

	pending []core.Notice
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
// Unknown names fall back to the loaded config.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates the default Carrot Rush game.
func New() *Game {
	return &Game{variant: Variants[0]}
}

// NewWithConfig creates a game that uses cfg as is, without loading files
// or applying presets. cfg must pass Validate.
func NewWithConfig(cfg config.RushConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("rush: invalid config: %w", err)
	}
	return &Game{variant: Variants[0], custom: &cfg}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.variant.Title
}

// Config returns the configuration of the current run.
func (g *Game) Config() config.RushConfig {
	return g.cfg
}

// Seed returns the RNG seed the current run started from.
func (g *Game) Seed() int64 {
	return g.seed
}

// Mode returns the current screen.
func (g *Game) Mode() Mode {
	return g.mode
}

// Reset initializes the game from scratch and shows the intro screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime
	g.cfg = g.loadConfig()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.seed = runtime.Seed
	g.rng = rand.New(rand.NewSource(g.seed))
	g.mode = ModeIntro
	g.pending = nil
	g.newRun()
}

func (g *Game) loadConfig() config.RushConfig {
	if g.custom != nil {
		return *g.custom
	}

	cfg, err := config.LoadRush(configPath)
	if err != nil {
		cfg = config.DefaultRushConfig()
	}
	if g.variant.tune != nil {
		g.variant.tune(&cfg)
	}
	preset := difficultyPreset
	if g.preset != nil {
		preset = *g.preset
	}
	config.ApplyRushPreset(&cfg, preset)
	return cfg
}

// SetDifficulty overrides the package preset for this game only.
// It takes effect on the next Reset.
func (g *Game) SetDifficulty(name string) {
	p := config.ParsePreset(name)
	g.preset = &p
}

// newRun builds fresh counters, pools and timers for a run.
func (g *Game) newRun() {
	cfg := g.cfg

	g.run = runState{
		lives:    cfg.Scoring.StartLives,
		survival: newFixedTimer(time.Duration(cfg.Scoring.SurvivalEveryMS) * time.Millisecond),
	}
	if cfg.Bonuses.Policy == config.PolicyTimer {
		g.run.spawnTimer = newRandomTimer(seconds(cfg.Bonuses.MinDelay), seconds(cfg.Bonuses.MaxDelay), g.rng)
	}

	g.pools[KindObstacle] = NewPool(KindObstacle, cfg.Obstacles.Cap)
	g.pools[KindCollectible] = NewPool(KindCollectible, cfg.Collectibles.Cap)
	g.pools[KindBonus] = NewPool(KindBonus, cfg.Bonuses.Cap)
	for k := range kindCount {
		g.seedInitial(k)
	}

	g.player = player{X: cfg.Player.StartX, Y: cfg.Player.Y}
	g.paused = false
	g.tick = 0
	g.scroll = 0
	g.keyDir = 0
	g.pointerDir = 0
}

// Start leaves the intro screen. It returns the notices emitted.
func (g *Game) Start() []core.Notice {
	return g.Dispatch(StartEvent{})
}

// Restart begins a fresh run after game over. It does nothing in other modes.
func (g *Game) Restart() []core.Notice {
	return g.Dispatch(RestartEvent{})
}

// Step advances the game by one frame of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.mode {
	case ModeIntro:
		if in.Has(core.ActionConfirm) || in.Pointer.Down {
			g.dispatch(StartEvent{})
		}

	case ModeGameOver:
		if in.Has(core.ActionRestart) {
			g.dispatch(RestartEvent{})
		} else if in.Pointer.Down {
			g.dispatch(g.pointerDownAt(in.Pointer))
		}

	case ModePlaying:
		if in.Has(core.ActionPause) {
			g.dispatch(PauseEvent{})
		}
		if g.paused {
			if in.Pointer.Up {
				g.dispatch(PointerUpEvent{})
			}
			break
		}

		dir := 0
		if in.Has(core.ActionLeft) {
			dir--
		}
		if in.Has(core.ActionRight) {
			dir++
		}
		g.dispatch(MoveEvent{Dir: dir})

		if in.Pointer.Down {
			g.dispatch(g.pointerDownAt(in.Pointer))
		}
		if in.Pointer.Up {
			g.dispatch(PointerUpEvent{})
		}
		g.dispatch(TickEvent{Delta: g.tickDelta()})
	}

	return core.StepResult{State: g.State(), Notices: g.drain()}
}

// pointerDownAt converts a normalized pointer into field coordinates.
func (g *Game) pointerDownAt(p core.Pointer) PointerDownEvent {
	return PointerDownEvent{X: p.X * g.cfg.Field.Width, Y: p.Y * g.cfg.Field.Height}
}

// tickDelta returns the duration of the next tick. Whole seconds of ticks
// add up to exactly one second.
func (g *Game) tickDelta() time.Duration {
	rate := time.Duration(g.runtime.TickRate)
	n := time.Duration(g.tick)
	return (n+1)*time.Second/rate - n*time.Second/rate
}

// Dispatch applies one event and returns the notices it produced.
func (g *Game) Dispatch(ev Event) []core.Notice {
	g.dispatch(ev)
	return g.drain()
}

func (g *Game) dispatch(ev Event) {
	switch ev := ev.(type) {
	case StartEvent:
		g.start()
	case RestartEvent:
		g.restart()
	case PauseEvent:
		if g.mode == ModePlaying {
			g.paused = !g.paused
		}
	case MoveEvent:
		if g.mode == ModePlaying {
			g.keyDir = sign(float64(ev.Dir))
		}
	case PointerDownEvent:
		g.pointerDown(ev.X, ev.Y)
	case PointerUpEvent:
		g.pointerDir = 0
	case TickEvent:
		if g.mode == ModePlaying && !g.paused {
			g.advance(ev.Delta)
		}
	case OverlapEvent:
		if g.mode != ModePlaying {
			return
		}
		switch ev.Kind {
		case KindCollectible:
			g.collect(ev.Slot)
		case KindBonus:
			g.collectBonus(ev.Slot)
		case KindObstacle:
			g.hitObstacle(ev.Slot)
		}
	case CollideEvent:
		if g.mode == ModePlaying {
			g.hitObstacle(ev.Slot)
		}
	}
}

func (g *Game) start() {
	next, ok := transition(g.mode, triggerStart)
	if !ok {
		return
	}
	g.mode = next
	g.emit(core.NoticeStart, 0)
	g.emit(core.NoticeScore, g.run.score)
	g.emit(core.NoticeLives, g.run.lives)
}

// restart reseeds from the current RNG and rebuilds the run.
func (g *Game) restart() {
	next, ok := transition(g.mode, triggerRestart)
	if !ok {
		return
	}
	g.seed = g.rng.Int63()
	g.rng = rand.New(rand.NewSource(g.seed))
	g.newRun()
	g.mode = next

	g.emit(core.NoticeRestart, 0)
	g.emit(core.NoticeScore, g.run.score)
	g.emit(core.NoticeLives, g.run.lives)
}

func (g *Game) pointerDown(x, y float64) {
	switch g.mode {
	case ModeIntro:
		g.start()
	case ModeGameOver:
		if restartButton(g.cfg.Field).Contains(x, y) {
			g.restart()
		}
	case ModePlaying:
		g.pointerDir = sign(x - g.player.X)
	}
}

// advance simulates d of play: movement, off-screen policy, contacts,
// spawning and timers, in that order.
func (g *Game) advance(d time.Duration) {
	g.tick++
	g.scroll += g.cfg.Field.ScrollSpeed

	g.movePlayer(d)
	g.moveEntities(d)
	g.sweepOffscreen()

	for _, ev := range g.contacts() {
		if g.mode != ModePlaying {
			return
		}
		g.dispatch(ev)
	}
	if g.mode != ModePlaying {
		return
	}

	g.spawn()
	g.run.survival.advance(d, g.survivalPoint)
	if g.run.spawnTimer != nil {
		g.run.spawnTimer.advance(d, g.spawnTimedBonus)
	}
}

func (g *Game) survivalPoint() {
	if g.mode != ModePlaying {
		return
	}
	g.run.addScore(g.cfg.Scoring.SurvivalPoints)
	g.emit(core.NoticeScore, g.run.score)
}

func (g *Game) collect(slot int) {
	if !g.pools[KindCollectible].Deactivate(slot) {
		return
	}
	g.run.addScore(g.cfg.Scoring.CollectiblePoints)
	g.emit(core.NoticeScore, g.run.score)
}

func (g *Game) collectBonus(slot int) {
	if !g.pools[KindBonus].Deactivate(slot) {
		return
	}
	g.run.gainLife(g.cfg.Scoring.BonusLives)
	g.emit(core.NoticeLives, g.run.lives)
}

// hitObstacle spends a spare life on the obstacle, or ends the run.
func (g *Game) hitObstacle(slot int) {
	obstacles := g.pools[KindObstacle]
	if !obstacles.Get(slot).Active {
		return
	}

	if g.run.loseLife() {
		obstacles.Deactivate(slot)
		g.emit(core.NoticeLives, g.run.lives)
		return
	}
	g.endRun()
}

func (g *Game) endRun() {
	next, ok := transition(g.mode, triggerDeath)
	if !ok {
		return
	}
	g.mode = next
	g.run.tinted = true
	g.emit(core.NoticeTint, 0)

	if g.run.score >= g.cfg.Scoring.VictoryScore {
		g.run.victory = true
		g.emit(core.NoticeVictory, g.run.score)
	}
	g.emit(core.NoticeRestartShown, 0)
	g.emit(core.NoticeGameOver, g.run.score)
}

func (g *Game) emit(kind core.NoticeKind, value int) {
	g.pending = append(g.pending, core.Notice{Kind: kind, Value: value})
}

func (g *Game) drain() []core.Notice {
	out := g.pending
	g.pending = nil
	return out
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.run.score,
		Lives:    g.run.lives,
		GameOver: g.mode == ModeGameOver,
		Victory:  g.run.victory,
		Paused:   g.paused,
	}
}
