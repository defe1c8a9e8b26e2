// Package formats provides pluggable level file format parsers.
// Parsers register themselves by file extension in init() functions.
package formats

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Level represents a parsed level asset before it becomes a level.Record.
type Level struct {
	Number int
	Width  int
	Height int
	Moves  int
	Grid   []string
}

// ParseFunc decodes raw asset bytes.
type ParseFunc func(data []byte) (Level, error)

var (
	parsers = make(map[string]ParseFunc)
	mu      sync.RWMutex
)

// Register adds a parser for a file extension (including the dot).
// Panics if the extension is already registered.
func Register(ext string, f ParseFunc) {
	mu.Lock()
	defer mu.Unlock()

	ext = strings.ToLower(ext)
	if _, exists := parsers[ext]; exists {
		panic(fmt.Sprintf("formats: extension %q already registered", ext))
	}
	parsers[ext] = f
}

// Lookup returns the parser for an extension.
func Lookup(ext string) (ParseFunc, bool) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := parsers[strings.ToLower(ext)]
	return f, ok
}

// Extensions returns all registered extensions, sorted.
func Extensions() []string {
	mu.RLock()
	defer mu.RUnlock()

	exts := make([]string, 0, len(parsers))
	for ext := range parsers {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Parse routes data to the parser registered for ext.
func Parse(data []byte, ext string) (Level, error) {
	f, ok := Lookup(ext)
	if !ok {
		return Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
	return f(data)
}
