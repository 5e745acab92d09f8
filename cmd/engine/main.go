package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagDebug   bool
)

func main() {
	root := &cobra.Command{
		Use:           "leadscout",
		Short:         "Profile scouting engine and control panel API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagDataDir, "data-dir", defaultDataDir(),
		"directory for config, database, and output files")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"verbose human-readable logging")

	root.AddCommand(newServeCmd(), newRunCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func defaultDataDir() string {
	if v := os.Getenv("LEADSCOUT_DATA_DIR"); v != "" {
		return v
	}
	return "."
}
