package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/appsweep/appsweep/internal/config"
	"github.com/appsweep/appsweep/internal/logging"
)

var (
	Version   = "0.2.0"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

var (
	configPath string
	verbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "appsweep",
	Short: "Find and remove macOS application leftovers",
	Long: `AppSweep locates the files and directories an application left behind in
the well-known macOS support locations (caches, preferences, logs,
containers and the like) and moves the ones you pick to the trash.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configFilePath()
		if err != nil {
			return err
		}
		fmt.Printf("Config file: %s\n", path)

		if _, err := os.Stat(path); os.IsNotExist(err) {
			if !writeDefault {
				fmt.Println("Config file does not exist. Using default configuration.")
				fmt.Println("Run with --init to write the defaults.")
				return nil
			}
			cfg, err := config.Default()
			if err != nil {
				return err
			}
			if err := cfg.Save(path); err != nil {
				return err
			}
			fmt.Println("Wrote default configuration.")
		}
		return nil
	},
}

var writeDefault bool

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "verbose output")

	configCmd.Flags().BoolVar(&writeDefault, "init", false, "write the default config file if missing")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(appsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(stripCmd)
	rootCmd.AddCommand(signaturesCmd)
	rootCmd.AddCommand(configCmd)
}

func configFilePath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.DefaultPath()
}

func loadConfig() (*config.Config, error) {
	return config.LoadOrDefault(configPath)
}

func newLogger(cfg *config.Config) *zap.Logger {
	logger, err := logging.New(cfg.Log, verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
		return zap.NewNop()
	}
	return logger
}
