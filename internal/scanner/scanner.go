// Package scanner walks the configured search roots concurrently and
// collects every filesystem entry attributed to a target application.
package scanner

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/appsweep/appsweep/internal/config"
	"github.com/appsweep/appsweep/internal/match"
	"github.com/appsweep/appsweep/internal/progress"
)

// currentPathInterval controls how often a worker publishes the path it
// is examining; every entry would swamp the reporter.
const currentPathInterval = 256

// ErrNoBundleID is returned when the target application's bundle
// identifier could not be resolved. This is a precondition failure: no
// partial scan is attempted.
var ErrNoBundleID = errors.New("application bundle identifier could not be resolved")

// App describes the application whose leftovers are being located.
type App struct {
	Name        string
	BundleID    string
	InstallPath string
}

// Entry represents one filesystem path judged to belong to the target
// application. Identity is by Path alone; two entries with the same path
// are the same entry.
type Entry struct {
	Path     string `json:"path" yaml:"path"`
	Name     string `json:"name" yaml:"name"`
	Parent   string `json:"parent" yaml:"parent"`
	Size     int64  `json:"size" yaml:"size"`
	IsDir    bool   `json:"is_dir" yaml:"is_dir"`
	Selected bool   `json:"-" yaml:"-"`
}

// Outcome is the aggregate result of a scan. The target's own install
// path is always present in Entries, unconditionally.
type Outcome struct {
	Entries []Entry
	// PermissionIssues is set when at least one search root could not be
	// enumerated due to access restriction.
	PermissionIssues bool
}

// TotalSize returns the summed size of all entries.
func (o *Outcome) TotalSize() int64 {
	var total int64
	for _, e := range o.Entries {
		total += e.Size
	}
	return total
}

// Scanner locates application leftovers across the configured search
// roots. It is safe to reuse for multiple scans.
type Scanner struct {
	roots    []string
	appDirs  []string
	hostName string
	logger   *zap.Logger
	reporter *progress.Reporter
}

// New creates a Scanner. hostName is the machine's display name, used to
// strip host-derived noise from candidate filenames; pass "" when
// unknown.
func New(cfg *config.Config, hostName string, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{
		roots:    cfg.Roots(),
		appDirs:  cfg.ApplicationDirs,
		hostName: hostName,
		logger:   logger,
		reporter: progress.NewReporter(),
	}
}

// SetReporter sets a custom progress reporter.
func (s *Scanner) SetReporter(r *progress.Reporter) {
	s.reporter = r
}

// Reporter returns the scanner's progress reporter.
func (s *Scanner) Reporter() *progress.Reporter {
	return s.reporter
}

// rootResult is one worker's partial result. Workers never share state;
// partial results are merged once all workers have returned.
type rootResult struct {
	entries         []Entry
	permissionIssue bool
}

// Scan walks every search root concurrently, one worker per root, and
// returns the deduplicated set of entries attributed to app. Individual
// unreadable entries are logged and skipped; a root that cannot be
// opened at all sets Outcome.PermissionIssues without aborting sibling
// roots. The scan aborts only on context cancellation.
func (s *Scanner) Scan(ctx context.Context, app App) (*Outcome, error) {
	if strings.TrimSpace(app.BundleID) == "" {
		return nil, ErrNoBundleID
	}

	exclusions := BuildExclusions(s.appDirs, app.BundleID)
	matcher, err := match.NewMatcher(app.Name, app.BundleID, app.InstallPath, match.NewStripper(s.hostName))
	if err != nil {
		return nil, err
	}

	roots := expandRoots(s.roots, app.BundleID)
	startTime := time.Now()

	var rootsDone atomic.Int32
	var entriesFound atomic.Int64

	s.publishScan(progress.ScanUpdate{
		Phase:      progress.PhaseScanning,
		RootsTotal: len(roots),
		StartTime:  startTime,
	})

	results := make([]rootResult, len(roots))
	g, gctx := errgroup.WithContext(ctx)
	for i, root := range roots {
		i, root := i, root
		g.Go(func() error {
			res, err := s.scanRoot(gctx, root, matcher, exclusions, &entriesFound)
			if err != nil {
				return err
			}
			results[i] = res
			s.publishScan(progress.ScanUpdate{
				Phase:        progress.PhaseScanning,
				RootsTotal:   len(roots),
				RootsDone:    int(rootsDone.Add(1)),
				EntriesFound: int(entriesFound.Load()),
				StartTime:    startTime,
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	outcome := s.merge(app, results)

	s.publishScan(progress.ScanUpdate{
		Phase:        progress.PhaseComplete,
		RootsTotal:   len(roots),
		RootsDone:    len(roots),
		EntriesFound: len(outcome.Entries),
		StartTime:    startTime,
	})
	return outcome, nil
}

// merge combines the workers' partial results into one outcome, seeded
// with the application's own install path and deduplicated by path.
func (s *Scanner) merge(app App, results []rootResult) *Outcome {
	outcome := &Outcome{}
	byPath := make(map[string]struct{})

	seed := statEntry(app.InstallPath)
	byPath[seed.Path] = struct{}{}
	outcome.Entries = append(outcome.Entries, seed)

	for _, res := range results {
		outcome.PermissionIssues = outcome.PermissionIssues || res.permissionIssue
		for _, entry := range res.entries {
			if _, dup := byPath[entry.Path]; dup {
				continue
			}
			byPath[entry.Path] = struct{}{}
			outcome.Entries = append(outcome.Entries, entry)
		}
	}

	sort.Slice(outcome.Entries, func(i, j int) bool {
		return outcome.Entries[i].Path < outcome.Entries[j].Path
	})
	return outcome
}

// scanRoot walks one search root. A missing or non-directory root is
// skipped silently; a root whose enumeration cannot start reports a
// permission issue and zero entries. Returns an error only when the
// context is cancelled.
func (s *Scanner) scanRoot(ctx context.Context, root string, matcher *match.Matcher, exclusions Exclusions, entriesFound *atomic.Int64) (rootResult, error) {
	var res rootResult

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return res, nil
	}

	visited := 0
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			if path == root {
				// The root itself cannot be enumerated.
				res.permissionIssue = true
				s.logger.Warn("search root not accessible",
					zap.String("root", root), zap.Error(err))
				return fs.SkipAll
			}
			// Noise, not a systemic access problem.
			s.logger.Debug("skipping unreadable entry",
				zap.String("path", path), zap.Error(err))
			return nil
		}
		if path == root {
			return nil
		}

		name := d.Name()
		if d.IsDir() {
			if exclusions.MatchesDir(name) {
				return fs.SkipDir
			}
			if isRuntimeDir(name) {
				return fs.SkipDir
			}
		} else if !d.Type().IsRegular() {
			// Symlinks, sockets and devices are never surfaced.
			return nil
		}

		visited++
		if visited%currentPathInterval == 0 {
			s.publishScan(progress.ScanUpdate{
				Phase:        progress.PhaseScanning,
				CurrentPath:  path,
				EntriesFound: int(entriesFound.Load()),
			})
		}

		if !matcher.IsAppRelated(path) {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			s.logger.Debug("skipping entry with unreadable metadata",
				zap.String("path", path), zap.Error(err))
			return nil
		}

		res.entries = append(res.entries, Entry{
			Path:     path,
			Name:     name,
			Parent:   filepath.Dir(path),
			Size:     fi.Size(),
			IsDir:    d.IsDir(),
			Selected: true,
		})
		entriesFound.Add(1)

		// A matched directory claims its whole subtree; descending would
		// only produce redundant nested matches.
		if d.IsDir() {
			return fs.SkipDir
		}
		return nil
	})
	if walkErr != nil {
		return res, walkErr
	}
	return res, nil
}

// expandRoots appends, for bundle identifiers with an organization
// component, a company-named subdirectory under each root. Vendors often
// nest their products one level down (e.g. "Application Support/Microsoft").
func expandRoots(roots []string, bundleID string) []string {
	comps := strings.Split(bundleID, ".")
	if len(comps) <= 2 {
		return roots
	}
	company := comps[1]
	if company == "" {
		return roots
	}

	expanded := make([]string, 0, len(roots)*2)
	expanded = append(expanded, roots...)
	for _, root := range roots {
		expanded = append(expanded, filepath.Join(root, company))
		// Vendor directories are typically capitalized; nonexistent
		// variants are skipped silently by the workers.
		if title := strings.ToUpper(company[:1]) + company[1:]; title != company {
			expanded = append(expanded, filepath.Join(root, title))
		}
	}
	return expanded
}

// statEntry builds an Entry for path, best-effort. The entry is included
// even when the path cannot be stat'ed.
func statEntry(path string) Entry {
	entry := Entry{
		Path:     path,
		Name:     filepath.Base(path),
		Parent:   filepath.Dir(path),
		Selected: true,
	}
	if fi, err := os.Stat(path); err == nil {
		entry.Size = fi.Size()
		entry.IsDir = fi.IsDir()
	}
	return entry
}

func (s *Scanner) publishScan(update progress.ScanUpdate) {
	if s.reporter == nil {
		return
	}
	s.reporter.Publish(update)
}
