package session

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tileblast/internal/level"
	"github.com/vovakirdan/tileblast/internal/obstacle"
)

func noRefill() Options {
	opts := DefaultOptions()
	opts.Refill = false
	return opts
}

func mustNew(t *testing.T, rec *level.Record, opts Options) *Session {
	t.Helper()
	s, err := New(rec, opts)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s
}

func TestNewNilRecord(t *testing.T) {
	if _, err := New(nil, DefaultOptions()); !errors.Is(err, ErrNoLevel) {
		t.Errorf("expected ErrNoLevel, got %v", err)
	}
}

func TestNewSeedsLedger(t *testing.T) {
	rec := level.NewRecord(1, 3, 2, 10, []string{
		"r", "r", "bo",
		"s", "v", "g",
	})
	s := mustNew(t, rec, noRefill())
	l := s.Ledger()

	for _, k := range []obstacle.Kind{obstacle.KindBox, obstacle.KindStone, obstacle.KindVase} {
		if l.Remaining(k) != 1 || l.Status(k) != obstacle.StatusInProgress {
			t.Errorf("%v: expected 1 in progress, got %d %v", k, l.Remaining(k), l.Status(k))
		}
	}
	if l.Status(obstacle.KindUnknown) != obstacle.StatusAbsent {
		t.Error("unknown should be absent")
	}
	if s.Outcome() != OutcomePlaying {
		t.Errorf("expected playing, got %v", s.Outcome())
	}
	if s.MovesLeft() != 10 {
		t.Errorf("expected 10 moves, got %d", s.MovesLeft())
	}
}

func TestTapBlastsGroupAndDamagesNeighbours(t *testing.T) {
	rec := level.NewRecord(1, 3, 2, 10, []string{
		"r", "r", "bo",
		"s", "v", "g",
	})
	s := mustNew(t, rec, noRefill())

	res := s.Tap(level.C(0, 0))
	if !res.Valid {
		t.Fatal("tap should be valid")
	}
	if res.Blasted != 2 {
		t.Errorf("expected 2 blasted, got %d", res.Blasted)
	}

	wantDamaged := []level.Coord{level.C(2, 0), level.C(1, 1)}
	if len(res.Damaged) != len(wantDamaged) {
		t.Fatalf("expected damaged %v, got %v", wantDamaged, res.Damaged)
	}
	for i, c := range wantDamaged {
		if res.Damaged[i] != c {
			t.Errorf("damaged[%d] = %v, expected %v", i, res.Damaged[i], c)
		}
	}

	if len(res.Destroyed) != 1 || res.Destroyed[0].Kind() != obstacle.KindBox {
		t.Errorf("expected only the box destroyed, got %v", res.Destroyed)
	}

	l := s.Ledger()
	if l.Status(obstacle.KindBox) != obstacle.StatusCleared {
		t.Errorf("box should be cleared, got %v", l.Status(obstacle.KindBox))
	}
	if l.Remaining(obstacle.KindStone) != 1 {
		t.Error("stone is immune to cube blasts")
	}
	if l.Remaining(obstacle.KindVase) != 1 {
		t.Error("vase should survive one hit")
	}

	// Vase and green fall; the stone holds its place.
	b := s.Board()
	expect := map[level.Coord]string{
		level.C(0, 0): level.EmptyLabel,
		level.C(1, 0): level.LabelVase,
		level.C(2, 0): level.LabelGreen,
		level.C(0, 1): level.LabelStone,
		level.C(1, 1): level.EmptyLabel,
		level.C(2, 1): level.EmptyLabel,
	}
	for c, want := range expect {
		if got := b.Label(c); got != want {
			t.Errorf("board at %v = %q, expected %q", c, got, want)
		}
	}

	vase, ok := s.PieceAt(level.C(1, 0))
	if !ok || vase.HP != 1 || vase.At != level.C(1, 0) {
		t.Errorf("expected damaged vase at (1,0), got %+v ok=%v", vase, ok)
	}
	if s.MovesUsed() != 1 || s.MovesLeft() != 9 {
		t.Errorf("expected 1 move used, got %d (left %d)", s.MovesUsed(), s.MovesLeft())
	}
}

func TestTapRejected(t *testing.T) {
	rec := level.NewRecord(1, 3, 2, 10, []string{
		"r", "r", "bo",
		"s", "v", "g",
	})
	s := mustNew(t, rec, noRefill())

	tests := []struct {
		name string
		at   level.Coord
	}{
		{"lone cube", level.C(2, 1)},
		{"obstacle", level.C(2, 0)},
		{"off board", level.C(5, 5)},
		{"negative", level.C(-1, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if res := s.Tap(tc.at); res.Valid {
				t.Errorf("tap at %v should be rejected", tc.at)
			}
		})
	}
	if s.MovesUsed() != 0 {
		t.Errorf("rejected taps should not cost moves, used %d", s.MovesUsed())
	}
}

func TestTNTChainBreaksStone(t *testing.T) {
	rec := level.NewRecord(1, 6, 1, 5, []string{"t", "s", "t", "r", "g", "bo"})
	s := mustNew(t, rec, noRefill())

	res := s.Tap(level.C(0, 0))
	if !res.Valid {
		t.Fatal("TNT tap should be valid")
	}
	if res.Blasted != 4 {
		t.Errorf("expected 2 TNTs and 2 cubes blasted, got %d", res.Blasted)
	}
	if len(res.Destroyed) != 1 || res.Destroyed[0].Kind() != obstacle.KindStone {
		t.Errorf("expected stone destroyed, got %v", res.Destroyed)
	}

	l := s.Ledger()
	if l.Status(obstacle.KindStone) != obstacle.StatusCleared {
		t.Error("stone should be cleared")
	}
	if l.Status(obstacle.KindBox) != obstacle.StatusInProgress {
		t.Error("box is out of range and should remain")
	}
	if countLabel(s.Board(), level.LabelTNT) != 0 {
		t.Error("both TNTs should have exploded")
	}
}

func TestLargeGroupLeavesTNT(t *testing.T) {
	rec := level.NewRecord(1, 6, 1, 5, []string{"y", "y", "y", "y", "y", "s"})
	s := mustNew(t, rec, noRefill())

	res := s.Tap(level.C(2, 0))
	if !res.CreatedTNT {
		t.Fatal("group of 5 should create a TNT")
	}
	if got := s.Board().Label(level.C(2, 0)); got != level.LabelTNT {
		t.Errorf("expected TNT at tap, got %q", got)
	}
	if s.Outcome() != OutcomePlaying {
		t.Errorf("stone remains, expected playing, got %v", s.Outcome())
	}
}

func TestVaseNeedsTwoHits(t *testing.T) {
	rec := level.NewRecord(1, 3, 1, 5, []string{"r", "r", "v"})
	opts := noRefill()
	s := mustNew(t, rec, opts)

	s.Tap(level.C(0, 0))
	if s.Ledger().Remaining(obstacle.KindVase) != 1 {
		t.Fatal("vase should survive the first hit")
	}

	// Put a new pair next to the vase and hit it again.
	s.Board().Set(level.C(0, 0), level.LabelBlue)
	s.Board().Set(level.C(1, 0), level.LabelBlue)
	s.Tap(level.C(1, 0))

	if s.Ledger().Status(obstacle.KindVase) != obstacle.StatusCleared {
		t.Errorf("vase should be cleared after two hits, got %v", s.Ledger().Status(obstacle.KindVase))
	}
	if s.Outcome() != OutcomeWon {
		t.Errorf("expected won, got %v", s.Outcome())
	}
}

func TestWinStopsPlay(t *testing.T) {
	rec := level.NewRecord(1, 3, 1, 1, []string{"r", "r", "bo"})
	s := mustNew(t, rec, noRefill())

	s.Tap(level.C(0, 0))
	if s.Outcome() != OutcomeWon {
		t.Fatalf("expected won, got %v", s.Outcome())
	}
	if res := s.Tap(level.C(0, 0)); res.Valid {
		t.Error("taps after the session ends should be rejected")
	}
}

func TestLoseWhenMovesRunOut(t *testing.T) {
	rec := level.NewRecord(1, 4, 1, 1, []string{"r", "r", "b", "s"})
	s := mustNew(t, rec, noRefill())

	s.Tap(level.C(0, 0))
	if s.Outcome() != OutcomeLost {
		t.Errorf("expected lost, got %v", s.Outcome())
	}
	if s.MovesLeft() != 0 {
		t.Errorf("expected 0 moves left, got %d", s.MovesLeft())
	}
}

func TestZeroBudgetIsLostImmediately(t *testing.T) {
	rec := level.NewRecord(1, 1, 1, 0, []string{"bo"})
	s := mustNew(t, rec, noRefill())
	if s.Outcome() != OutcomeLost {
		t.Errorf("expected lost, got %v", s.Outcome())
	}
}

func TestNoObstaclesIsWon(t *testing.T) {
	rec := level.NewRecord(1, 2, 1, 3, []string{"r", "g"})
	s := mustNew(t, rec, noRefill())
	if s.Outcome() != OutcomeWon {
		t.Errorf("expected won, got %v", s.Outcome())
	}
}

func TestRefillFillsColumns(t *testing.T) {
	rec := level.NewRecord(1, 3, 2, 5, []string{
		"r", "r", "s",
		"g", "g", "b",
	})
	opts := DefaultOptions()
	opts.Seed = 7
	s := mustNew(t, rec, opts)

	if res := s.Tap(level.C(0, 0)); !res.Valid {
		t.Fatal("tap should be valid")
	}
	if n := countLabel(s.Board(), level.EmptyLabel); n != 0 {
		t.Errorf("expected no empty cells after refill, got %d", n)
	}
	if got := s.Board().Label(level.C(0, 0)); got != level.LabelGreen {
		t.Errorf("green should fall to row 0, got %q", got)
	}
	if got := s.Board().Label(level.C(2, 0)); got != level.LabelStone {
		t.Errorf("stone should not move, got %q", got)
	}
}

func TestRandomCellsResolveDeterministically(t *testing.T) {
	rec := level.NewRecord(1, 4, 4, 5, []string{
		"rand", "rand", "rand", "rand",
		"rand", "rand", "rand", "rand",
		"rand", "rand", "rand", "rand",
		"rand", "rand", "rand", "bo",
	})
	opts := DefaultOptions()
	opts.Seed = 42

	a := mustNew(t, rec, opts)
	b := mustNew(t, rec, opts)

	ac, bc := a.Board().cells, b.Board().cells
	for i := range ac {
		if ac[i] == level.LabelRandom {
			t.Fatalf("cell %d still random", i)
		}
		if ac[i] != bc[i] {
			t.Errorf("cell %d differs between sessions with the same seed", i)
		}
	}

	// The record itself is untouched.
	if rec.CellLabelAt(0, 0) != level.LabelRandom {
		t.Error("session must not mutate the level record")
	}
}

func TestSessionsDoNotShareLedgers(t *testing.T) {
	rec := level.NewRecord(1, 3, 1, 5, []string{"r", "r", "bo"})
	a := mustNew(t, rec, noRefill())
	b := mustNew(t, rec, noRefill())

	a.Tap(level.C(0, 0))
	if b.Ledger().Remaining(obstacle.KindBox) != 1 {
		t.Error("second session should keep its own ledger")
	}
}

func countLabel(b *Board, label string) int {
	n := 0
	for _, l := range b.cells {
		if l == label {
			n++
		}
	}
	return n
}

func TestNewBoardOversizedRecord(t *testing.T) {
	rec := level.NewRecord(1, 1<<31, 1<<31, 3, []string{"bo"})

	b := NewBoard(rec)
	if b.W != 0 || b.H != 0 || len(b.cells) != 0 {
		t.Fatalf("oversized record should give an empty board, got %dx%d", b.W, b.H)
	}

	s := mustNew(t, rec, DefaultOptions())
	if s.Ledger().IsPresent(obstacle.KindBox) {
		t.Error("no obstacles should be counted off an empty board")
	}
}
