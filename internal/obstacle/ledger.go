package obstacle

// Status is the three-way presentation state of a kind.
type Status uint8

const (
	// StatusAbsent means the kind never appeared in the level.
	StatusAbsent Status = iota
	// StatusInProgress means some obstacles of the kind remain.
	StatusInProgress
	// StatusCleared means the kind appeared and every instance is gone.
	StatusCleared
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in-progress"
	case StatusCleared:
		return "cleared"
	default:
		return "absent"
	}
}

// Entry is one catalog line of a ledger snapshot.
type Entry struct {
	Kind      Kind
	Remaining int
	Present   bool
	Status    Status
}

// Ledger counts the obstacles left per kind during one level session.
// Counts only ever go down after Initialize. Queries made before
// Initialize return zero / not present / not cleared.
type Ledger struct {
	initialized bool
	present     map[Kind]bool
	remaining   map[Kind]int
}

// NewLedger returns an uninitialized ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Initialize seeds the ledger from the initial obstacle population,
// replacing any previous state. A nil or empty population is valid.
func (l *Ledger) Initialize(obstacles []Obstacle) {
	l.present = make(map[Kind]bool)
	l.remaining = make(map[Kind]int)
	for _, o := range obstacles {
		k := Classify(o)
		l.present[k] = true
		l.remaining[k]++
	}
	l.initialized = true
}

// RecordDestroyed decrements the count for the obstacle's kind.
// It does nothing before Initialize or when the count is already zero.
func (l *Ledger) RecordDestroyed(o Obstacle) {
	if !l.initialized {
		return
	}
	k := Classify(o)
	if l.remaining[k] > 0 {
		l.remaining[k]--
	}
}

// Initialized reports whether Initialize has been called.
func (l *Ledger) Initialized() bool {
	return l.initialized
}

// Remaining returns how many obstacles of kind k are left.
func (l *Ledger) Remaining(k Kind) int {
	if !l.initialized {
		return 0
	}
	return l.remaining[k]
}

// IsPresent reports whether kind k existed when the ledger was seeded.
func (l *Ledger) IsPresent(k Kind) bool {
	if !l.initialized {
		return false
	}
	return l.present[k]
}

// IsCleared reports whether kind k was present and has no obstacles left.
func (l *Ledger) IsCleared(k Kind) bool {
	return l.IsPresent(k) && l.Remaining(k) == 0
}

// Status classifies kind k as absent, in progress or cleared.
func (l *Ledger) Status(k Kind) Status {
	switch {
	case !l.IsPresent(k):
		return StatusAbsent
	case l.Remaining(k) > 0:
		return StatusInProgress
	default:
		return StatusCleared
	}
}

// TotalRemaining returns the number of obstacles left across all kinds.
func (l *Ledger) TotalRemaining() int {
	if !l.initialized {
		return 0
	}
	total := 0
	for _, n := range l.remaining {
		total += n
	}
	return total
}

// AllCleared reports whether every present kind is cleared. A seeded
// ledger with no obstacles counts as cleared.
func (l *Ledger) AllCleared() bool {
	return l.initialized && l.TotalRemaining() == 0
}

// Snapshot returns an entry for every catalog kind in display order.
func (l *Ledger) Snapshot() []Entry {
	kinds := Kinds()
	entries := make([]Entry, 0, len(kinds))
	for _, k := range kinds {
		entries = append(entries, Entry{
			Kind:      k,
			Remaining: l.Remaining(k),
			Present:   l.IsPresent(k),
			Status:    l.Status(k),
		})
	}
	return entries
}
