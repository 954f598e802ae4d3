package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/appsweep/appsweep/internal/match"
)

var stripHostName string

var stripCmd = &cobra.Command{
	Use:   "strip <name>...",
	Short: "Show how filenames look after noise stripping",
	Long: `Strips version numbers, UUIDs, dates, known extensions and the host name
from each given filename and prints the resulting match pattern. Useful
for understanding why a file was or was not attributed to an app.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		host := stripHostName
		if host == "" {
			host, _ = os.Hostname()
		}
		stripper := match.NewStripper(host)
		for _, name := range args {
			fmt.Printf("%s -> %s\n", name, stripper.Strip(name))
		}
		return nil
	},
}

var signaturesCmd = &cobra.Command{
	Use:   "signatures <app name> <bundle id>",
	Short: "Show the match signatures derived for an app",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, sig := range match.Signatures(args[0], args[1]) {
			fmt.Println(sig)
		}
		return nil
	},
}

func init() {
	stripCmd.Flags().StringVar(&stripHostName, "host", "", "host name to strip (defaults to this machine's)")
}
