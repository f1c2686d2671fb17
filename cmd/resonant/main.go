package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "resonant",
		Short: "Resonant - an adaptive decision engine over an amplitude/frequency transform",
		Long: `resonant runs an adaptive decision engine whose per-call effort is steered
by a pure amplitude/frequency transform.

Each stimulus is analyzed, matched against long-term memory, dispatched
with a derived generation strategy, and recorded back into memory. The
engine's experience level only ever grows.`,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "Path to config.yaml (default: ~/.resonant/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "SQLite database path (overrides config)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newSessionCmd(),
		newAnalyzeCmd(),
		newInspectCmd(),
		newReplayCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("resonant version %s\n", version)
		},
	}
}
