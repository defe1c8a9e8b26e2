// Package level provides the static level layout model and asset loading.
// Grids are stored row-major with the origin at the bottom-left corner:
// index = row*Width + col, row 0 is the bottom row.
package level

import "fmt"

// EmptyLabel is the cell label returned for any coordinate outside the grid.
const EmptyLabel = "empty"

// Coord addresses a cell by column and row. Row grows upward.
type Coord struct {
	Col int
	Row int
}

// C is a convenience constructor for Coord.
func C(col, row int) Coord {
	return Coord{Col: col, Row: row}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Add returns a new Coord offset by (dc, dr).
func (c Coord) Add(dc, dr int) Coord {
	return Coord{Col: c.Col + dc, Row: c.Row + dr}
}

// Neighbors returns the four orthogonal neighbours in a fixed order
// (left, right, down, up). Some may be out of bounds.
func (c Coord) Neighbors() [4]Coord {
	return [4]Coord{c.Add(-1, 0), c.Add(1, 0), c.Add(0, -1), c.Add(0, 1)}
}

// Record describes one level's static layout.
// It is built once by the loader and must not be mutated afterwards.
type Record struct {
	Number     int
	Width      int
	Height     int
	MoveBudget int
	cells      []string
}

// NewRecord creates a record. The cells slice is copied.
func NewRecord(number, width, height, moves int, cells []string) *Record {
	cp := make([]string, len(cells))
	copy(cp, cells)
	return &Record{
		Number:     number,
		Width:      width,
		Height:     height,
		MoveBudget: moves,
		cells:      cp,
	}
}

// Len returns the number of stored cell labels.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.cells)
}

// Cells returns a copy of the flat label sequence.
func (r *Record) Cells() []string {
	if r == nil {
		return nil
	}
	cp := make([]string, len(r.cells))
	copy(cp, r.cells)
	return cp
}

// InBounds returns true if the coordinate is inside the declared dimensions.
func (r *Record) InBounds(c Coord) bool {
	if r == nil {
		return false
	}
	return c.Col >= 0 && c.Col < r.Width && c.Row >= 0 && c.Row < r.Height
}

// CellLabelAt returns the label stored at (col, row).
// Coordinates outside the grid, or indexes past the end of a short cell
// list, resolve to EmptyLabel. It never panics.
func (r *Record) CellLabelAt(col, row int) string {
	if !r.InBounds(C(col, row)) {
		return EmptyLabel
	}
	// Keeps row*Width+col from wrapping on oversized declared widths.
	if row > (len(r.cells)-1-col)/r.Width {
		return EmptyLabel
	}
	idx := row*r.Width + col
	if idx < 0 || idx >= len(r.cells) {
		return EmptyLabel
	}
	return r.cells[idx]
}

// Label is CellLabelAt for a Coord.
func (r *Record) Label(c Coord) string {
	return r.CellLabelAt(c.Col, c.Row)
}

// AllCoords returns every coordinate of the grid, bottom row first.
// Grids that fail CheckSize have no coordinates.
func (r *Record) AllCoords() []Coord {
	if r == nil || CheckSize(r.Width, r.Height) != nil {
		return nil
	}
	coords := make([]Coord, 0, r.Width*r.Height)
	for row := 0; row < r.Height; row++ {
		for col := 0; col < r.Width; col++ {
			coords = append(coords, C(col, row))
		}
	}
	return coords
}

// CountLabels tallies labels over the declared grid area.
func (r *Record) CountLabels() map[string]int {
	counts := make(map[string]int)
	for _, c := range r.AllCoords() {
		counts[r.Label(c)]++
	}
	return counts
}
