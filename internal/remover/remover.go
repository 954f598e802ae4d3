// Package remover moves found entries to the trash directory.
package remover

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/appsweep/appsweep/internal/progress"
	"github.com/appsweep/appsweep/internal/scanner"
)

// Result represents the outcome of a removal operation.
type Result struct {
	Removed    []string
	FreedBytes int64
	Skipped    []string
	Errors     []*RemovalError
	DryRun     bool
}

// Remover moves selected entries into the trash directory. Entries are
// never deleted in place; undoing a removal is dragging them back out of
// the trash.
type Remover struct {
	trashDir string
	dryRun   bool
	logger   *zap.Logger
	reporter *progress.Reporter
}

// New creates a Remover that moves entries into trashDir.
func New(trashDir string, dryRun bool, logger *zap.Logger) *Remover {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Remover{
		trashDir: trashDir,
		dryRun:   dryRun,
		logger:   logger,
		reporter: progress.NewReporter(),
	}
}

// SetReporter sets a custom progress reporter.
func (r *Remover) SetReporter(reporter *progress.Reporter) {
	r.reporter = reporter
}

// Reporter returns the remover's progress reporter.
func (r *Remover) Reporter() *progress.Reporter {
	return r.reporter
}

// Remove moves every selected entry to the trash. Unselected entries and
// entries nested under an already-removed directory are skipped. Errors
// on individual entries are collected; the operation never aborts early.
func (r *Remover) Remove(entries []scanner.Entry) (*Result, error) {
	result := &Result{DryRun: r.dryRun}

	selected := make([]scanner.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Selected {
			selected = append(selected, e)
		} else {
			result.Skipped = append(result.Skipped, e.Path)
		}
	}
	// Parents sort before their children, so a removed directory shadows
	// everything nested under it.
	sort.Slice(selected, func(i, j int) bool { return selected[i].Path < selected[j].Path })

	if !r.dryRun {
		if err := os.MkdirAll(r.trashDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create trash directory: %w", err)
		}
	}

	startTime := time.Now()
	var removedDirs []string
	underRemoved := func(path string) bool {
		for _, dir := range removedDirs {
			if strings.HasPrefix(path, dir+string(filepath.Separator)) {
				return true
			}
		}
		return false
	}
	for i, entry := range selected {
		if underRemoved(entry.Path) {
			result.Skipped = append(result.Skipped, entry.Path)
			continue
		}

		r.publish(progress.RemoveUpdate{
			Phase:       progress.PhaseRemoving,
			CurrentPath: entry.Path,
			Done:        i,
			Total:       len(selected),
			FreedBytes:  result.FreedBytes,
			StartTime:   startTime,
		})

		if r.dryRun {
			result.Removed = append(result.Removed, entry.Path)
			result.FreedBytes += entry.Size
			if entry.IsDir {
				removedDirs = append(removedDirs, entry.Path)
			}
			continue
		}

		if err := r.trash(entry.Path); err != nil {
			r.logger.Warn("failed to move entry to trash",
				zap.String("path", entry.Path), zap.Error(err))
			result.Errors = append(result.Errors, &RemovalError{
				Path:   entry.Path,
				Reason: classify(err),
				Err:    err,
			})
			continue
		}

		r.logger.Info("moved to trash", zap.String("path", entry.Path))
		result.Removed = append(result.Removed, entry.Path)
		result.FreedBytes += entry.Size
		if entry.IsDir {
			removedDirs = append(removedDirs, entry.Path)
		}
	}

	r.publish(progress.RemoveUpdate{
		Phase:      progress.PhaseComplete,
		Done:       len(selected),
		Total:      len(selected),
		FreedBytes: result.FreedBytes,
		StartTime:  startTime,
	})
	return result, nil
}

// trash moves path into the trash directory, avoiding name collisions
// the way Finder does, with a numbered suffix.
func (r *Remover) trash(path string) error {
	base := filepath.Base(path)
	dest := filepath.Join(r.trashDir, base)

	for n := 2; ; n++ {
		if _, err := os.Lstat(dest); os.IsNotExist(err) {
			break
		}
		ext := filepath.Ext(base)
		stem := strings.TrimSuffix(base, ext)
		dest = filepath.Join(r.trashDir, fmt.Sprintf("%s %d%s", stem, n, ext))
	}

	return os.Rename(path, dest)
}

func (r *Remover) publish(update progress.RemoveUpdate) {
	if r.reporter == nil {
		return
	}
	r.reporter.Publish(update)
}
