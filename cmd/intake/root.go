package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "intake",
	Short: "Intake is a scripted conversational form",
	Long: `Intake walks a user through a fixed script of prompts, one step at a time,
collects their answers and saves them to a configurable sink.

Without a subcommand it runs the conversation (see 'intake run --help').`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Config file (default: ./intake.yaml when present)")
}
