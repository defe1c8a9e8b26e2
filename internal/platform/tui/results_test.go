package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tileblast/internal/storage"
)

type fakeSource struct {
	results []storage.Result
	best    *storage.Result
	err     error
}

func (f fakeSource) Results(levelNumber int, limit int) ([]storage.Result, error) {
	return f.results, f.err
}

func (f fakeSource) BestResult(levelNumber int) (*storage.Result, error) {
	return f.best, f.err
}

func TestResultRows(t *testing.T) {
	at := time.Date(2025, time.March, 4, 10, 30, 0, 0, time.UTC)
	rows := ResultRows([]storage.Result{
		{ID: 3, Outcome: "won", MovesUsed: 7, MoveBudget: 12, Player: "ann", CreatedAt: at},
		{ID: 4, Outcome: "lost", MovesUsed: 12, MoveBudget: 12, CreatedAt: at},
	})

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	want := []string{"3", "won", "7/12", "ann", "Mar 04 10:30"}
	for i, cell := range rows[0] {
		if cell != want[i] {
			t.Errorf("row 0 col %d = %q, want %q", i, cell, want[i])
		}
	}
	if rows[1][3] != "-" {
		t.Errorf("missing player should show -, got %q", rows[1][3])
	}
}

func TestResultsModelView(t *testing.T) {
	best := &storage.Result{ID: 1, Outcome: "won", MovesUsed: 5, MoveBudget: 9, Player: "bob"}

	tests := []struct {
		name string
		src  ResultSource
		want string
	}{
		{"empty", fakeSource{}, "No results recorded yet."},
		{"error", fakeSource{err: errors.New("boom")}, "Could not load results: boom"},
		{"best", fakeSource{results: []storage.Result{*best}, best: best}, "Best: 5 moves by bob"},
		{"no store", nil, "No results recorded yet."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewResultsModel(tt.src, 2, 80, 24)
			view := m.View()
			if !strings.Contains(view, "RESULTS - LEVEL 2") {
				t.Errorf("view missing title: %q", view)
			}
			if !strings.Contains(view, tt.want) {
				t.Errorf("view missing %q: %q", tt.want, view)
			}
		})
	}
}

func TestResultsModelQuit(t *testing.T) {
	m := NewResultsModel(fakeSource{}, 1, 80, 24)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.(ResultsModel).View() != "" {
		t.Error("quitting model should render nothing")
	}
}
