package session

import "github.com/vovakirdan/tileblast/internal/level"

// Board is the mutable per-session copy of a level grid. It uses the same
// bottom-left, row-major addressing as level.Record.
type Board struct {
	W     int
	H     int
	cells []string
}

// NewBoard copies the declared area of rec. Missing labels become empty.
// A record whose size fails level.CheckSize gives an empty board.
func NewBoard(rec *level.Record) *Board {
	w, h := 0, 0
	if rec != nil && level.CheckSize(rec.Width, rec.Height) == nil {
		w, h = rec.Width, rec.Height
	}
	b := &Board{W: w, H: h, cells: make([]string, w*h)}
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			b.cells[row*w+col] = rec.CellLabelAt(col, row)
		}
	}
	return b
}

// InBounds returns true if the coordinate is on the board.
func (b *Board) InBounds(c level.Coord) bool {
	return c.Col >= 0 && c.Col < b.W && c.Row >= 0 && c.Row < b.H
}

// Label returns the label at c, or level.EmptyLabel off the board.
func (b *Board) Label(c level.Coord) string {
	if !b.InBounds(c) {
		return level.EmptyLabel
	}
	return b.cells[c.Row*b.W+c.Col]
}

// Set replaces the label at c. Off-board writes are ignored.
func (b *Board) Set(c level.Coord, label string) {
	if b.InBounds(c) {
		b.cells[c.Row*b.W+c.Col] = label
	}
}

// Clear empties the cell at c.
func (b *Board) Clear(c level.Coord) {
	b.Set(c, level.EmptyLabel)
}

// IsEmpty reports whether c holds no piece.
func (b *Board) IsEmpty(c level.Coord) bool {
	return b.Label(c) == level.EmptyLabel
}
