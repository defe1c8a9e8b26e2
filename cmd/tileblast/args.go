package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vovakirdan/tileblast/internal/level"
)

// parseLevelNumber parses a positive level number argument.
func parseLevelNumber(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid level number %q", arg)
	}
	return n, nil
}

// parseCoord parses a "col,row" pair. Negative values are accepted and
// resolve to the empty label on lookup.
func parseCoord(s string) (level.Coord, error) {
	colStr, rowStr, ok := strings.Cut(s, ",")
	if !ok {
		return level.Coord{}, fmt.Errorf("invalid coordinate %q, want col,row", s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colStr))
	if err != nil {
		return level.Coord{}, fmt.Errorf("invalid column in %q: %w", s, err)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowStr))
	if err != nil {
		return level.Coord{}, fmt.Errorf("invalid row in %q: %w", s, err)
	}
	return level.C(col, row), nil
}

// availableLevels lists the loadable level numbers for error hints.
func availableLevels(loader *level.Loader) string {
	nums, err := loader.Numbers()
	if err != nil || len(nums) == 0 {
		return "none"
	}
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}

// labelSummary renders the label tally of a record, e.g. "bo=2 r=1".
func labelSummary(rec *level.Record) string {
	counts := rec.CountLabels()
	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	parts := make([]string, len(labels))
	for i, label := range labels {
		parts[i] = fmt.Sprintf("%s=%d", label, counts[label])
	}
	return strings.Join(parts, " ")
}
