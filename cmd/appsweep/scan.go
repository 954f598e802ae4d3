package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/appsweep/appsweep/internal/apps"
	"github.com/appsweep/appsweep/internal/config"
	"github.com/appsweep/appsweep/internal/progress"
	"github.com/appsweep/appsweep/internal/report"
	"github.com/appsweep/appsweep/internal/scanner"
	"github.com/appsweep/appsweep/internal/ui"
)

var (
	bundleIDFlag string
	appPathFlag  string
	outputFmt    string
	outputFile   string
	showProgress bool
	extraRoots   []string
)

var scanCmd = &cobra.Command{
	Use:   "scan [app name]",
	Short: "Scan for an application's leftovers",
	Long: `Scans the well-known support locations and reports every file or
directory attributed to the given application, without changing anything.
The application is resolved by display name or bundle identifier from the
installed apps, or described explicitly with --path and --bundle-id.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg.ExtraRoots = append(cfg.ExtraRoots, extraRoots...)

		app, err := resolveTarget(cfg, args)
		if err != nil {
			return err
		}

		logger := newLogger(cfg)
		defer logger.Sync()

		outcome, err := runScan(cmd.Context(), cfg, app, logger)
		if err != nil {
			return err
		}

		return writeReport(app, outcome)
	},
}

func init() {
	scanCmd.Flags().StringVar(&bundleIDFlag, "bundle-id", "", "bundle identifier override")
	scanCmd.Flags().StringVar(&appPathFlag, "path", "", "path to the .app bundle")
	scanCmd.Flags().StringVar(&outputFmt, "output", "summary", "output format (summary, table, json, yaml)")
	scanCmd.Flags().StringVar(&outputFile, "file", "", "save report to file")
	scanCmd.Flags().BoolVar(&showProgress, "progress", false, "show live scan progress")
	scanCmd.Flags().StringSliceVar(&extraRoots, "root", nil, "additional search root (repeatable)")
}

// resolveTarget builds the scan target from the positional app name and
// the --path/--bundle-id flags.
func resolveTarget(cfg *config.Config, args []string) (scanner.App, error) {
	if appPathFlag != "" {
		dirName := filepath.Base(appPathFlag)
		app := scanner.App{
			Name:        strings.TrimSuffix(dirName, ".app"),
			BundleID:    bundleIDFlag,
			InstallPath: appPathFlag,
		}
		if len(args) > 0 {
			app.Name = args[0]
		}
		if app.BundleID == "" {
			id, err := apps.ReadBundleID(appPathFlag)
			if err != nil {
				id = apps.FallbackBundleID(dirName)
			}
			app.BundleID = id
		}
		return app, nil
	}

	if len(args) == 0 {
		return scanner.App{}, errors.New("application name required (or use --path)")
	}
	info, err := apps.Resolve(cfg.ApplicationDirs, args[0])
	if err != nil {
		return scanner.App{}, err
	}
	app := scanner.App{Name: info.Name, BundleID: info.BundleID, InstallPath: info.Path}
	if bundleIDFlag != "" {
		app.BundleID = bundleIDFlag
	}
	return app, nil
}

// runScan executes the scan, optionally rendering live progress.
func runScan(ctx context.Context, cfg *config.Config, app scanner.App, logger *zap.Logger) (*scanner.Outcome, error) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	hostName, _ := os.Hostname()
	scnr := scanner.New(cfg, hostName, logger)

	if !showProgress {
		fmt.Printf("Scanning for %s (%s)...\n", app.Name, app.BundleID)
		return scnr.Scan(ctx, app)
	}

	// The view owns the scan's lifetime: quitting it (ctrl+c included)
	// cancels the walk, and the scan goroutine is always joined before
	// the outcome is read.
	scanCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := tea.NewProgram(ui.NewScanModel(app))
	updates := scnr.Reporter().Subscribe()
	defer scnr.Reporter().Unsubscribe(updates)

	go func() {
		for update := range updates {
			if scan, ok := update.(progress.ScanUpdate); ok {
				program.Send(scan)
			}
		}
	}()

	var outcome *scanner.Outcome
	var scanErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		outcome, scanErr = scnr.Scan(scanCtx, app)
		program.Send(ui.ScanDoneMsg{Err: scanErr})
	}()

	final, err := program.Run()
	cancel()
	<-done
	if err != nil {
		return nil, fmt.Errorf("error running progress view: %w", err)
	}
	if scanErr != nil {
		return nil, scanErr
	}
	if m, ok := final.(*ui.ScanModel); ok && m.Err() != nil {
		return nil, m.Err()
	}
	return outcome, nil
}

// writeReport renders the outcome to stdout or --file.
func writeReport(app scanner.App, outcome *scanner.Outcome) error {
	format := report.Format(outputFmt)
	switch format {
	case report.FormatSummary, report.FormatTable, report.FormatJSON, report.FormatYAML:
	default:
		return fmt.Errorf("unsupported format: %s", outputFmt)
	}

	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer f.Close()
		if err := report.New(f, format).Report(app, outcome); err != nil {
			return err
		}
		fmt.Printf("Report saved to: %s\n", outputFile)
		return nil
	}
	return report.New(os.Stdout, format).Report(app, outcome)
}
