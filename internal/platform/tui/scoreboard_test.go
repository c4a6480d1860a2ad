package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/carrot-rush/internal/registry"
	"github.com/vovakirdan/carrot-rush/internal/storage"
)

func TestScoreRows(t *testing.T) {
	created := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)
	rows := scoreRows([]storage.Run{
		{Score: 1700, Victory: true, Ticks: 5430, Difficulty: "hard", CreatedAt: created},
		{Score: 12, Ticks: 59},
	})

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	expected := []string{"1", "1700", "won", "1m30s", "hard", "Mar 05 14:30"}
	for i, v := range expected {
		if rows[0][i] != v {
			t.Errorf("row 0 column %d = %q, expected %q", i, rows[0][i], v)
		}
	}
	if rows[1][2] != "-" || rows[1][3] != "0s" || rows[1][4] != "config" {
		t.Errorf("row 1 = %v", rows[1])
	}
}

func TestScoreboardCyclesVariants(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "board.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	games := registry.List()
	if len(games) < 2 {
		t.Fatalf("expected several variants, got %d", len(games))
	}
	store.SaveRun(storage.Run{GameID: games[1].ID, Score: 999})

	m := NewScoreboardModel(store, 100, 30)
	if len(m.runs) != 0 || !strings.Contains(m.View(), "No runs recorded yet") {
		t.Errorf("first variant should have no runs, got %+v", m.runs)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if len(m.runs) != 1 || m.runs[0].Score != 999 {
		t.Errorf("second variant runs = %+v", m.runs)
	}
	if !strings.Contains(m.View(), games[1].Title) {
		t.Error("title should name the selected variant")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.gameCursor != 0 {
		t.Errorf("shift+tab should go back, cursor = %d", m.gameCursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back to the menu")
	}
}
