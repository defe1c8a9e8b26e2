package level

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tileblast/internal/level/formats"
)

// AssetKey returns the file stem for a level number, e.g. "level_07".
func AssetKey(number int) string {
	return fmt.Sprintf("level_%02d", number)
}

// Loader handles loading level assets from a directory.
type Loader struct {
	Root string
	// Strict runs Record.Validate on every loaded asset.
	Strict bool
	Logger *log.Logger
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

func (l *Loader) logger() *log.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return log.Default()
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("level: reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	parsed, err := formats.Parse(data, ext)
	if err != nil {
		return nil, fmt.Errorf("level: parsing file %s: %w", path, err)
	}

	// Size is checked in permissive mode too: every consumer walks the
	// declared area.
	if err := CheckSize(parsed.Width, parsed.Height); err != nil {
		return nil, fmt.Errorf("level: validating file %s: %w", path, err)
	}

	rec := NewRecord(parsed.Number, parsed.Width, parsed.Height, parsed.Moves, parsed.Grid)
	if l.Strict {
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("level: validating file %s: %w", path, err)
		}
	}
	return rec, nil
}

// LoadByNumber loads the asset named AssetKey(number) with any supported
// extension. Returns an error wrapping ErrNotFound if none exists.
// An asset whose level_number differs from its file name is served as the
// requested level with a warning, or rejected in strict mode.
func (l *Loader) LoadByNumber(number int) (*Record, error) {
	key := AssetKey(number)
	for _, ext := range formats.Extensions() {
		path := filepath.Join(l.Root, key+ext)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		rec, err := l.LoadFile(path)
		if err != nil {
			return nil, err
		}
		if rec.Number != number {
			if l.Strict {
				return nil, fmt.Errorf("level: validating file %s: %w", path, ValidationError{
					Code:    "NUMBER_MISMATCH",
					Message: fmt.Sprintf("asset declares level %d, expected %d", rec.Number, number),
				})
			}
			l.logger().Warn("level number mismatch", "path", path, "declared", rec.Number, "level", number)
			rec.Number = number
		}
		return rec, nil
	}
	return nil, fmt.Errorf("%w: %s in %s", ErrNotFound, key, l.Root)
}

// TryLoad loads a level and reports failures as a diagnostic instead of an
// error. A nil result means the level is unavailable.
func (l *Loader) TryLoad(number int) *Record {
	rec, err := l.LoadByNumber(number)
	if err != nil {
		l.logger().Warn("level unavailable", "level", number, "root", l.Root, "error", err)
		return nil
	}
	return rec
}

// AssetPaths recursively lists the level files under the root.
func (l *Loader) AssetPaths() ([]string, error) {
	var paths []string

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && IsAssetPath(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("level: walking directory %s: %w", l.Root, err)
	}
	return paths, nil
}

// LoadAll recursively scans and loads all level files.
// Invalid files are logged and skipped. Returns levels sorted by number.
func (l *Loader) LoadAll() ([]*Record, error) {
	paths, err := l.AssetPaths()
	if err != nil {
		return nil, err
	}

	records := make([]*Record, 0, len(paths))
	for _, path := range paths {
		rec, err := l.LoadFile(path)
		if err != nil {
			l.logger().Warn("skipping level asset", "path", path, "error", err)
			continue
		}
		records = append(records, rec)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Number < records[j].Number
	})
	return records, nil
}

// Numbers returns the level numbers of all loadable assets in order.
func (l *Loader) Numbers() ([]int, error) {
	records, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	nums := make([]int, len(records))
	for i, rec := range records {
		nums[i] = rec.Number
	}
	return nums, nil
}

// IsAssetPath reports whether path has a registered level extension.
func IsAssetPath(path string) bool {
	_, ok := formats.Lookup(strings.ToLower(filepath.Ext(path)))
	return ok
}
