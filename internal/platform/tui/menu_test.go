package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/carrot-rush/internal/core"
	"github.com/vovakirdan/carrot-rush/internal/registry"
	"github.com/vovakirdan/carrot-rush/internal/storage"
)

func menuKey(t *testing.T, m MenuModel, msg tea.KeyMsg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func TestMenuSelectVariant(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), "")
	games := registry.List()
	if len(games) < 2 {
		t.Fatalf("expected the rush variants to be registered, got %d games", len(games))
	}

	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	res := m.Result()
	if res.Quit || res.WantsScoreboard || res.GameID != games[1].ID {
		t.Errorf("Result() = %+v, expected %s", res, games[1].ID)
	}
}

func TestMenuDifficultyCycle(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), "hard")
	if m.Difficulty() != "hard" {
		t.Fatalf("initial difficulty = %q", m.Difficulty())
	}

	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Difficulty() != "fixed" {
		t.Errorf("next difficulty = %q", m.Difficulty())
	}
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Difficulty() != "" || !strings.Contains(m.View(), "Difficulty: config") {
		t.Errorf("difficulty should wrap to the config preset, got %q", m.Difficulty())
	}
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Difficulty() != "fixed" {
		t.Errorf("previous difficulty = %q", m.Difficulty())
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), "")
	if res := menuKey(t, m, tea.KeyMsg{Type: tea.KeyTab}).Result(); !res.WantsScoreboard {
		t.Errorf("tab should open the scoreboard, got %+v", res)
	}
	if res := menuKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}).Result(); !res.Quit {
		t.Errorf("q should quit, got %+v", res)
	}
}

func TestMenuShowsHighScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "menu.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	if _, err := store.SaveRun(storage.Run{GameID: registry.List()[0].ID, Score: 4242}); err != nil {
		t.Fatal(err)
	}

	m := NewMenuModel(store, core.DefaultConfig(), "")
	if !strings.Contains(m.View(), "best 4242") {
		t.Error("menu should show the best score of a played variant")
	}
}
