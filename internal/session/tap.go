package session

import (
	"sort"

	"github.com/vovakirdan/tileblast/internal/level"
	"github.com/vovakirdan/tileblast/internal/obstacle"
)

// TapResult describes what a tap did to the board.
type TapResult struct {
	Valid      bool
	Blasted    int              // Cubes and TNTs removed
	Damaged    []level.Coord    // Obstacles hit, sorted
	Destroyed  []obstacle.Piece // Obstacles removed
	CreatedTNT bool
}

// Tap plays a move at c. Taps on empty cells, lone cubes, obstacles or
// off-board coordinates are rejected without spending a move.
func (s *Session) Tap(c level.Coord) TapResult {
	if s.outcome != OutcomePlaying || !s.board.InBounds(c) {
		return TapResult{}
	}

	label := s.board.Label(c)
	hit := make(map[level.Coord]bool)
	var res TapResult

	switch {
	case level.IsCube(label):
		group := s.group(c)
		if len(group) < 2 {
			return TapResult{}
		}
		for _, g := range group {
			s.board.Clear(g)
			for _, n := range g.Neighbors() {
				if s.crackable(n) {
					hit[n] = true
				}
			}
		}
		res.Blasted = len(group)
		if len(group) >= s.opts.TNTThreshold {
			s.board.Set(c, level.LabelTNT)
			res.CreatedTNT = true
		}

	case label == level.LabelTNT:
		res.Blasted = s.explode(c, hit)

	default:
		return TapResult{}
	}

	res.Valid = true
	res.Damaged = sortedCoords(hit)
	for _, h := range res.Damaged {
		if p, destroyed := s.damage(h); destroyed {
			res.Destroyed = append(res.Destroyed, p)
		}
	}

	s.movesUsed++
	s.settle()
	s.evaluate()
	return res
}

// group returns the 4-connected cubes sharing the colour at start.
func (s *Session) group(start level.Coord) []level.Coord {
	color := s.board.Label(start)
	seen := map[level.Coord]bool{start: true}
	queue := []level.Coord{start}
	var out []level.Coord

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		out = append(out, c)
		for _, n := range c.Neighbors() {
			if seen[n] || s.board.Label(n) != color {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return out
}

// crackable reports whether a cube blast next to c damages it.
// Stones only break under TNT.
func (s *Session) crackable(c level.Coord) bool {
	p, ok := s.pieces[c]
	return ok && p.K != obstacle.KindStone
}

// explode detonates the TNT at c and any TNT caught in its radius.
// Every obstacle in range is added to hit. Returns the cells blasted.
func (s *Session) explode(c level.Coord, hit map[level.Coord]bool) int {
	r := s.opts.TNTRadius
	queued := map[level.Coord]bool{c: true}
	queue := []level.Coord{c}
	blasted := 0

	for len(queue) > 0 {
		center := queue[0]
		queue = queue[1:]
		s.board.Clear(center)
		blasted++

		for dr := -r; dr <= r; dr++ {
			for dc := -r; dc <= r; dc++ {
				n := center.Add(dc, dr)
				if !s.board.InBounds(n) || n == center {
					continue
				}
				switch label := s.board.Label(n); {
				case label == level.LabelTNT:
					if !queued[n] {
						queued[n] = true
						queue = append(queue, n)
					}
				case level.IsCube(label):
					s.board.Clear(n)
					blasted++
				default:
					if _, ok := s.pieces[n]; ok {
						hit[n] = true
					}
				}
			}
		}
	}
	return blasted
}

// damage removes one hit point from the obstacle at c and reports it to the
// ledger once it is destroyed.
func (s *Session) damage(c level.Coord) (obstacle.Piece, bool) {
	p, ok := s.pieces[c]
	if !ok {
		return obstacle.Piece{}, false
	}
	p.HP--
	if p.HP > 0 {
		return *p, false
	}
	delete(s.pieces, c)
	s.board.Clear(c)
	s.ledger.RecordDestroyed(*p)
	return *p, true
}

// fixed reports whether the piece at c ignores gravity.
func (s *Session) fixed(c level.Coord) bool {
	p, ok := s.pieces[c]
	return ok && (p.K == obstacle.KindBox || p.K == obstacle.KindStone)
}

// settle drops loose pieces toward row 0 and refills open columns.
// Boxes and stones stay put and hold up whatever is above them.
func (s *Session) settle() {
	b := s.board
	for col := 0; col < b.W; col++ {
		target := 0
		for row := 0; row < b.H; row++ {
			c := level.C(col, row)
			switch {
			case s.fixed(c):
				target = row + 1
			case b.IsEmpty(c):
			default:
				if row != target {
					s.move(c, level.C(col, target))
				}
				target++
			}
		}
	}

	if !s.opts.Refill {
		return
	}
	for col := 0; col < b.W; col++ {
		for row := b.H - 1; row >= 0; row-- {
			c := level.C(col, row)
			if !b.IsEmpty(c) {
				break
			}
			b.Set(c, s.randomCube())
		}
	}
}

func (s *Session) move(from, to level.Coord) {
	s.board.Set(to, s.board.Label(from))
	s.board.Clear(from)
	if p, ok := s.pieces[from]; ok {
		delete(s.pieces, from)
		p.At = to
		s.pieces[to] = p
	}
}

func sortedCoords(set map[level.Coord]bool) []level.Coord {
	out := make([]level.Coord, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}
