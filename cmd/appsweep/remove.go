package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/appsweep/appsweep/internal/history"
	"github.com/appsweep/appsweep/internal/remover"
	"github.com/appsweep/appsweep/internal/ui"
	"github.com/appsweep/appsweep/pkg/bytefmt"
)

var (
	dryRun    bool
	force     bool
	selectAll bool
)

var removeCmd = &cobra.Command{
	Use:   "remove [app name]",
	Short: "Find an application's leftovers and move them to the trash",
	Long: `Scans for the application's leftovers, lets you pick which entries to
remove, and moves them to the trash directory. Nothing is deleted in
place; undoing a removal is dragging entries back out of the trash.`,
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
		if len(outcome.Entries) == 0 {
			fmt.Printf("No leftovers found for %s.\n", app.Name)
			return nil
		}

		entries := outcome.Entries
		if selectAll {
			for i := range entries {
				entries[i].Selected = true
			}
		} else {
			selected, confirmed, err := ui.SelectEntries(app, entries)
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Println("Removal cancelled.")
				return nil
			}
			entries = selected
		}

		var count int
		var size int64
		for _, entry := range entries {
			if entry.Selected {
				count++
				size += entry.Size
			}
		}
		if count == 0 {
			fmt.Println("Nothing selected.")
			return nil
		}

		if !force && !dryRun {
			fmt.Printf("\nMove %s to the trash? (y/N): ", bytefmt.FormatEntries(count, size))
			var response string
			fmt.Scanln(&response)
			if response != "y" && response != "Y" {
				fmt.Println("Removal cancelled.")
				return nil
			}
		}

		rmvr := remover.New(cfg.TrashDir, dryRun, logger)
		result, err := rmvr.Remove(entries)
		if err != nil {
			return fmt.Errorf("removal failed: %w", err)
		}

		printRemoveResult(result)
		if !dryRun {
			recordHistory(app.Name, app.BundleID, result)
		}
		if outcome.PermissionIssues {
			fmt.Println("\nSome locations were inaccessible; leftovers there may remain.")
		}
		return nil
	},
}

func init() {
	removeCmd.Flags().StringVar(&bundleIDFlag, "bundle-id", "", "bundle identifier override")
	removeCmd.Flags().StringVar(&appPathFlag, "path", "", "path to the .app bundle")
	removeCmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be removed without touching anything")
	removeCmd.Flags().BoolVarP(&force, "yes", "y", false, "skip the confirmation prompt")
	removeCmd.Flags().BoolVar(&selectAll, "all", false, "remove every found entry without the selection view")
	removeCmd.Flags().StringSliceVar(&extraRoots, "root", nil, "additional search root (repeatable)")
}

func printRemoveResult(result *remover.Result) {
	if result.DryRun {
		fmt.Println("\n[DRY RUN] No files were moved.")
	}
	fmt.Printf("Moved %s to the trash.\n",
		bytefmt.FormatEntries(len(result.Removed), result.FreedBytes))
	if len(result.Skipped) > 0 {
		fmt.Printf("Skipped %d entries.\n", len(result.Skipped))
	}
	for _, remErr := range result.Errors {
		fmt.Fprintf(os.Stderr, "failed: %v\n", remErr)
	}
}

func recordHistory(appName, bundleID string, result *remover.Result) {
	store, err := history.NewStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history unavailable: %v\n", err)
		return
	}
	rec := &history.Record{
		AppName:    appName,
		BundleID:   bundleID,
		Removed:    result.Removed,
		FreedBytes: result.FreedBytes,
		DryRun:     result.DryRun,
	}
	if err := store.Save(rec); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record history: %v\n", err)
	}
}
