package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/appsweep/appsweep/internal/history"
	"github.com/appsweep/appsweep/pkg/bytefmt"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past removals",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.NewStore()
		if err != nil {
			return err
		}
		records, err := store.List()
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No removals recorded.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "WHEN\tAPP\tENTRIES\tFREED")
		for _, rec := range records {
			fmt.Fprintf(w, "%s\t%s (%s)\t%d\t%s\n",
				rec.Timestamp.Format("2006-01-02 15:04"),
				rec.AppName, rec.BundleID,
				len(rec.Removed),
				bytefmt.Format(rec.FreedBytes))
		}
		return w.Flush()
	},
}
