package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tileblast/internal/level"
	"github.com/vovakirdan/tileblast/internal/level/formats"
)

var flagWatch bool

var validateCmd = &cobra.Command{
	Use:   "validate [level...]",
	Short: "Check level assets",
	Long: `Strictly validate level assets: the cell count must equal width*height,
dimensions and level numbers must be positive, and every label must be known.

With no arguments every asset in the level directory is checked.
With --watch, assets are rechecked whenever they change on disk.

Examples:
  tileblast validate
  tileblast validate 1 3
  tileblast validate --watch`,
	Run: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&flagWatch, "watch", false, "Revalidate assets when they change")
}

func runValidate(_ *cobra.Command, args []string) {
	loader := newLoader()
	loader.Strict = true

	paths, err := validationTargets(loader, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	failed := 0
	for _, path := range paths {
		if !report(loader, path) {
			failed++
		}
	}
	fmt.Printf("\n%d checked, %d failed\n", len(paths), failed)

	if flagWatch {
		if err := watch(loader); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if failed > 0 {
		os.Exit(1)
	}
}

// validationTargets resolves level number arguments to asset paths.
func validationTargets(loader *level.Loader, args []string) ([]string, error) {
	if len(args) == 0 {
		return loader.AssetPaths()
	}

	paths := make([]string, 0, len(args))
	for _, arg := range args {
		number, err := parseLevelNumber(arg)
		if err != nil {
			return nil, err
		}
		path, ok := findAsset(loader.Root, number)
		if !ok {
			return nil, fmt.Errorf("%w: %s in %s", level.ErrNotFound, level.AssetKey(number), loader.Root)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// findAsset returns the first existing asset file for a level number.
func findAsset(root string, number int) (string, bool) {
	for _, ext := range formats.Extensions() {
		path := filepath.Join(root, level.AssetKey(number)+ext)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// report validates one asset and prints the verdict.
func report(loader *level.Loader, path string) bool {
	rec, err := loader.LoadFile(path)
	if err != nil {
		var verr level.ValidationError
		if errors.As(err, &verr) {
			fmt.Printf("FAIL  %s  %s\n", path, verr)
		} else {
			fmt.Printf("FAIL  %s  %v\n", path, err)
		}
		return false
	}
	fmt.Printf("ok    %s  level %d (%dx%d)\n", path, rec.Number, rec.Width, rec.Height)
	return true
}

// watch rechecks assets as they change until interrupted.
func watch(loader *level.Loader) error {
	w, err := level.NewWatcher(loader.Root, logger)
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Watching %s for changes (Ctrl+C to stop)\n", loader.Root)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ch, ok := <-w.Changes():
			if !ok {
				return nil
			}
			if ch.Removed {
				fmt.Printf("gone  %s\n", ch.Path)
				continue
			}
			report(loader, ch.Path)
		}
	}
}
