package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/carrot-rush/internal/core"
	"github.com/vovakirdan/carrot-rush/internal/registry"
	"github.com/vovakirdan/carrot-rush/internal/replay"
	"github.com/vovakirdan/carrot-rush/internal/storage"
)

// Options configures a game session.
type Options struct {
	Store      *storage.Store // nil disables saving runs
	Logger     *log.Logger
	Difficulty string // preset name, stored with each run
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}

// seeded is implemented by games that reseed themselves on restart.
type seeded interface {
	Seed() int64
}

type tunable interface {
	SetDifficulty(name string)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	logger     *log.Logger
	recorder   *replay.Recorder
	keyMapper  *KeyMapper
	config     core.RuntimeConfig
	held       heldKeys
	inputFrame core.InputFrame
	gameState  core.GameState
	lastRunID  string
	now        func() time.Time
	quitting   bool
	back       bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	logger := opts.logger().With("game", game.ID())
	if t, ok := game.(tunable); ok && opts.Difficulty != "" {
		t.SetDifficulty(opts.Difficulty)
	}
	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		logger:     logger,
		recorder:   replay.NewRecorder(game.ID(), opts.Difficulty, cfg.TickRate),
		keyMapper:  NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		now:        time.Now,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if p, ok := pointerFromMouse(msg, m.screen.Width(), m.screen.Height()); ok {
			mergePointer(&m.inputFrame.Pointer, p)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		m = m.step(time.Time(msg))
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("Screenshot failed", "error", err)
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.back = true
		return m, tea.Quit
	case action == core.ActionLeft, action == core.ActionRight:
		m.held.press(action, m.now())
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// step runs one simulation tick with the input gathered since the last one.
func (m Model) step(now time.Time) Model {
	frame := m.inputFrame
	m.held.apply(&frame, now)
	m.inputFrame.Clear()

	result := m.game.Step(frame)
	m.gameState = result.State

	for _, n := range result.Notices {
		m.logger.Debug("Notice", "kind", n.Kind, "value", n.Value)
	}
	if result.Has(core.NoticeRestart) || result.Has(core.NoticeGameOver) {
		m.held.release()
	}

	if rec, done := m.recorder.Observe(frame, result, m.seed()); done {
		m.lastRunID = m.saveRun(rec)
	}
	return m
}

func (m Model) seed() int64 {
	if s, ok := m.game.(seeded); ok {
		return s.Seed()
	}
	return m.config.Seed
}

// saveRun stores a finished run and its replay. Saving is best effort and
// empty runs are skipped.
func (m Model) saveRun(rec replay.Recording) string {
	if m.opts.Store == nil || rec.Score <= 0 {
		return ""
	}

	id, err := m.opts.Store.SaveRun(storage.Run{
		GameID:     rec.GameID,
		Score:      rec.Score,
		Victory:    rec.Victory,
		Ticks:      rec.Ticks,
		Seed:       rec.Seed,
		Difficulty: rec.Difficulty,
	})
	if err != nil {
		m.logger.Error("Failed to save run", "error", err)
		return ""
	}

	data, err := replay.Encode(rec)
	if err == nil {
		err = m.opts.Store.SaveReplay(id, data)
	}
	if err != nil {
		m.logger.Warn("Failed to save replay", "run", id, "error", err)
	}

	m.logger.Info("Run saved", "run", id, "score", rec.Score, "victory", rec.Victory, "ticks", rec.Ticks)
	return id
}

// saveScreenshot writes the current screen as plain text.
func (m Model) saveScreenshot() error {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(home, ".carrotrush", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return err
	}
	m.logger.Info("Screenshot saved", "path", path)
	return nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// LastRunID returns the ID of the most recently saved run, if any.
func (m Model) LastRunID() string {
	return m.lastRunID
}

// WantsMenu reports whether the player asked to go back to the menu.
func (m Model) WantsMenu() bool {
	return m.back
}

// Run plays the game until the player quits. It reports whether the player
// asked to return to the menu instead.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	return ok && m.WantsMenu(), nil
}
