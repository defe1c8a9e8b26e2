// Package session owns the state of one level play-through: the mutable
// board, the obstacle ledger and the move budget. A new level means a new
// Session; nothing is shared between sessions.
package session

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tileblast/internal/level"
	"github.com/vovakirdan/tileblast/internal/obstacle"
)

// ErrNoLevel is returned by New when no level record is supplied.
var ErrNoLevel = errors.New("session: no level")

// Outcome is the result state of a session.
type Outcome uint8

const (
	OutcomePlaying Outcome = iota
	OutcomeWon
	OutcomeLost
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "playing"
	}
}

// Options tune gameplay rules.
type Options struct {
	Seed         int64
	TNTThreshold int  // Group size that leaves a TNT behind
	TNTRadius    int  // Chebyshev radius of a TNT blast
	VaseHits     int  // Hits a vase absorbs
	Refill       bool // Drop new cubes into emptied columns
}

// DefaultOptions returns the standard rule set.
func DefaultOptions() Options {
	return Options{
		TNTThreshold: 5,
		TNTRadius:    2,
		VaseHits:     2,
		Refill:       true,
	}
}

func (o Options) normalized() Options {
	d := DefaultOptions()
	if o.TNTThreshold < 2 {
		o.TNTThreshold = d.TNTThreshold
	}
	if o.TNTRadius < 1 {
		o.TNTRadius = d.TNTRadius
	}
	if o.VaseHits < 1 {
		o.VaseHits = d.VaseHits
	}
	return o
}

// Session is one play-through of a level.
type Session struct {
	rec       *level.Record
	board     *Board
	ledger    *obstacle.Ledger
	pieces    map[level.Coord]*obstacle.Piece
	rng       *rand.Rand
	opts      Options
	movesUsed int
	outcome   Outcome
}

// New starts a session on rec. Random cells are resolved with opts.Seed and
// the ledger is seeded from the obstacles on the board.
func New(rec *level.Record, opts Options) (*Session, error) {
	if rec == nil {
		return nil, ErrNoLevel
	}
	opts = opts.normalized()

	s := &Session{
		rec:    rec,
		board:  NewBoard(rec),
		ledger: obstacle.NewLedger(),
		pieces: make(map[level.Coord]*obstacle.Piece),
		rng:    rand.New(rand.NewSource(opts.Seed)),
		opts:   opts,
	}

	var population []obstacle.Obstacle
	for _, c := range rec.AllCoords() {
		label := s.board.Label(c)
		if label == level.LabelRandom {
			s.board.Set(c, s.randomCube())
			continue
		}
		k, ok := obstacle.KindFromLabel(label)
		if !ok {
			continue
		}
		p := &obstacle.Piece{K: k, At: c, HP: obstacle.DefaultHP(k, opts.VaseHits)}
		s.pieces[c] = p
		population = append(population, *p)
	}
	s.ledger.Initialize(population)
	s.evaluate()

	return s, nil
}

// Options returns the normalised rule set in effect.
func (s *Session) Options() Options {
	return s.opts
}

// Record returns the static level the session was created from.
func (s *Session) Record() *level.Record {
	return s.rec
}

// Board returns the live board.
func (s *Session) Board() *Board {
	return s.board
}

// Ledger returns the session's obstacle ledger.
func (s *Session) Ledger() *obstacle.Ledger {
	return s.ledger
}

// Outcome returns the current result state.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// MovesUsed returns the number of moves spent.
func (s *Session) MovesUsed() int {
	return s.movesUsed
}

// MovesLeft returns the remaining move budget.
func (s *Session) MovesLeft() int {
	left := s.rec.MoveBudget - s.movesUsed
	if left < 0 {
		return 0
	}
	return left
}

// PieceAt returns the obstacle at c, if any.
func (s *Session) PieceAt(c level.Coord) (obstacle.Piece, bool) {
	p, ok := s.pieces[c]
	if !ok {
		return obstacle.Piece{}, false
	}
	return *p, true
}

func (s *Session) randomCube() string {
	return level.CubeLabels[s.rng.Intn(len(level.CubeLabels))]
}

func (s *Session) evaluate() {
	switch {
	case s.ledger.AllCleared():
		s.outcome = OutcomeWon
	case s.MovesLeft() <= 0:
		s.outcome = OutcomeLost
	default:
		s.outcome = OutcomePlaying
	}
}
