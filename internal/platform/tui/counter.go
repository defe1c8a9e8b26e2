package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tileblast/internal/obstacle"
)

// CheckMark is shown in place of a count once a kind is cleared.
const CheckMark = "✓"

// CounterItem is one visible slot of the obstacle counter.
type CounterItem struct {
	Kind    obstacle.Kind
	Text    string // Live count or CheckMark
	Cleared bool
}

// ObstacleCounter turns a ledger into the HUD obstacle goal line.
// Kinds that never appeared in the level are hidden.
type ObstacleCounter struct {
	ledger *obstacle.Ledger
}

// NewObstacleCounter creates a counter reading from the given ledger.
func NewObstacleCounter(ledger *obstacle.Ledger) ObstacleCounter {
	return ObstacleCounter{ledger: ledger}
}

// Items returns the visible counter slots in catalog order.
func (c ObstacleCounter) Items() []CounterItem {
	if c.ledger == nil {
		return nil
	}

	var items []CounterItem
	for _, e := range c.ledger.Snapshot() {
		switch e.Status {
		case obstacle.StatusInProgress:
			items = append(items, CounterItem{Kind: e.Kind, Text: fmt.Sprintf("%d", e.Remaining)})
		case obstacle.StatusCleared:
			items = append(items, CounterItem{Kind: e.Kind, Text: CheckMark, Cleared: true})
		}
	}
	return items
}

// Render draws the counter with the theme's counter styles.
func (c ObstacleCounter) Render(theme Theme) string {
	items := c.Items()
	if len(items) == 0 {
		return ""
	}

	parts := make([]string, 0, len(items))
	for _, it := range items {
		value := it.Text
		if it.Cleared {
			value = theme.CounterCleared.Render(value)
		}
		parts = append(parts, theme.CounterLabel.Render(it.Kind.String()+" ")+value)
	}
	return strings.Join(parts, theme.HUDSeparator.Render("  "))
}
