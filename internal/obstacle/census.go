package obstacle

import "github.com/vovakirdan/tileblast/internal/level"

// Census returns the obstacles placed in rec, bottom row first.
func Census(rec *level.Record) []Obstacle {
	if rec == nil {
		return nil
	}

	var out []Obstacle
	for _, c := range rec.AllCoords() {
		if k, ok := KindFromLabel(rec.Label(c)); ok {
			out = append(out, Piece{K: k, At: c, HP: 1})
		}
	}
	return out
}

// LedgerFor returns a ledger seeded with the obstacles of rec.
func LedgerFor(rec *level.Record) *Ledger {
	l := NewLedger()
	l.Initialize(Census(rec))
	return l
}
