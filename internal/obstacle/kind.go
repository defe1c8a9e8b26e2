// Package obstacle tracks destructible level elements: their closed set of
// kinds and the per-session progress ledger.
package obstacle

import "github.com/vovakirdan/tileblast/internal/level"

// Kind classifies an obstacle. The set is closed; anything else is
// normalised to KindUnknown.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindBox
	KindStone
	KindVase
)

// String returns the type tag of the kind.
func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindStone:
		return "stone"
	case KindVase:
		return "vase"
	default:
		return "unknown"
	}
}

// Known reports whether k is one of the named kinds.
func (k Kind) Known() bool {
	return k == KindBox || k == KindStone || k == KindVase
}

// Kinds returns the catalog in display order.
func Kinds() []Kind {
	return []Kind{KindBox, KindStone, KindVase, KindUnknown}
}

// KindFromLabel maps a grid cell label to an obstacle kind.
// Returns false for labels that are not obstacles.
func KindFromLabel(label string) (Kind, bool) {
	switch label {
	case level.LabelBox, "box":
		return KindBox, true
	case level.LabelStone, "stone":
		return KindStone, true
	case level.LabelVase, "vase":
		return KindVase, true
	default:
		return KindUnknown, false
	}
}

// Obstacle is implemented by anything the ledger can count.
type Obstacle interface {
	Kind() Kind
}

// Classify returns the catalog kind of o. Nil obstacles and kinds outside
// the closed set classify as KindUnknown.
func Classify(o Obstacle) Kind {
	if o == nil {
		return KindUnknown
	}
	if k := o.Kind(); k.Known() {
		return k
	}
	return KindUnknown
}

// Piece is an obstacle placed on a board.
type Piece struct {
	K  Kind
	At level.Coord
	HP int
}

// Kind implements Obstacle.
func (p Piece) Kind() Kind {
	return p.K
}

// DefaultHP returns the number of hits a fresh obstacle of kind k absorbs.
func DefaultHP(k Kind, vaseHits int) int {
	if k == KindVase && vaseHits > 0 {
		return vaseHits
	}
	return 1
}
