package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/appsweep/appsweep/internal/apps"
)

var appsCmd = &cobra.Command{
	Use:   "apps",
	Short: "List installed applications",
	Long:  `Lists the application bundles found in the configured application directories.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		installed, err := apps.List(cfg.ApplicationDirs)
		if err != nil {
			return err
		}
		if len(installed) == 0 {
			fmt.Println("No applications found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tBUNDLE ID\tPATH")
		for _, app := range installed {
			fmt.Fprintf(w, "%s\t%s\t%s\n", app.Name, app.BundleID, app.Path)
		}
		return w.Flush()
	},
}
