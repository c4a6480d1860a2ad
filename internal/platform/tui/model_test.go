package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/carrot-rush/internal/core"
	"github.com/vovakirdan/carrot-rush/internal/games/rush"
	"github.com/vovakirdan/carrot-rush/internal/replay"
	"github.com/vovakirdan/carrot-rush/internal/storage"
)

// scriptedGame starts on Confirm, scores 10 per tick and ends on Pause.
type scriptedGame struct {
	started, over bool
	score         int
	seen          []core.InputFrame
}

func (g *scriptedGame) ID() string { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) { *g = scriptedGame{} }
func (g *scriptedGame) Render(dst *core.Screen) { dst.Clear() }
func (g *scriptedGame) State() core.GameState { return core.GameState{Score: g.score, GameOver: g.over} }
func (g *scriptedGame) Seed() int64 { return 77 }

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.seen = append(g.seen, in)
	var notices []core.Notice
	switch {
	case !g.started && in.Has(core.ActionConfirm):
		g.started = true
		notices = append(notices, core.Notice{Kind: core.NoticeStart})
	case g.started && !g.over && in.Has(core.ActionPause):
		g.over = true
		notices = append(notices, core.Notice{Kind: core.NoticeGameOver, Value: g.score})
	case g.started && !g.over:
		g.score += 10
		notices = append(notices, core.Notice{Kind: core.NoticeScore, Value: g.score})
	}
	return core.StepResult{State: g.State(), Notices: notices}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return model
}

func TestModelSavesFinishedRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	g := &scriptedGame{}
	m := NewModel(g, core.DefaultConfig(), Options{Store: store, Difficulty: "easy"})
	t0 := time.Unix(500, 0)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg(t0))
	for range 3 {
		m = update(t, m, TickMsg(t0))
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m = update(t, m, TickMsg(t0))

	if !m.State().GameOver || m.State().Score != 30 {
		t.Fatalf("state = %+v", m.State())
	}
	if m.LastRunID() == "" {
		t.Fatal("finished run was not saved")
	}

	run, err := store.Run(m.LastRunID())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if run.GameID != "scripted" || run.Score != 30 || run.Seed != 77 || run.Ticks != 4 || run.Difficulty != "easy" || !run.HasReplay {
		t.Errorf("saved run = %+v", run)
	}

	data, err := store.Replay(run.ID)
	if err != nil {
		t.Fatal(err)
	}
	rec, err := replay.Decode(data)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if inputs := rec.Inputs(); len(inputs) != 4 || !inputs[3].Has(core.ActionPause) {
		t.Errorf("replay inputs = %+v", inputs)
	}
}

func TestModelHeldKeysAndPointer(t *testing.T) {
	g := &scriptedGame{}
	m := NewModel(g, core.DefaultConfig(), Options{})
	t0 := time.Unix(500, 0)
	m.now = func() time.Time { return t0 }

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, tea.MouseMsg{X: 40, Y: 12, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, TickMsg(t0.Add(50*time.Millisecond)))
	m = update(t, m, TickMsg(t0.Add(HoldWindow+time.Millisecond)))

	if len(g.seen) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(g.seen))
	}
	first, second := g.seen[0], g.seen[1]
	if !first.Has(core.ActionLeft) || !first.Pointer.Down {
		t.Errorf("first frame = %+v", first)
	}
	if second.Has(core.ActionLeft) || second.Pointer.Down {
		t.Errorf("second frame should be empty, got %+v", second)
	}
}

func TestModelBackAndQuit(t *testing.T) {
	m := NewModel(&scriptedGame{}, core.DefaultConfig(), Options{})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(Model).WantsMenu() || cmd == nil {
		t.Error("esc should leave for the menu")
	}

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if next.(Model).WantsMenu() || cmd == nil || next.(Model).View() != "" {
		t.Error("q should quit without asking for the menu")
	}
}

func TestModelRendersRush(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Seed = 3
	m := NewModel(rush.New(), cfg, Options{})

	if !strings.Contains(m.View(), "Carrot Rush") {
		t.Error("intro screen should show the title")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg(time.Now()))
	if m.State().GameOver {
		t.Fatal("run should be in progress")
	}
	if !strings.Contains(m.View(), "Score: 0") {
		t.Error("HUD should show the score")
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})
	if lines := strings.Split(m.View(), "\n"); len(lines) != 12 {
		t.Errorf("resized view has %d rows, expected 12", len(lines))
	}
}
