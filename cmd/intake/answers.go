package main

import (
	"fmt"
	"os"

	"github.com/aretw0/intake/internal/cli"
	"github.com/aretw0/intake/pkg/ports"
	"github.com/spf13/cobra"
)

var answersCmd = &cobra.Command{
	Use:   "answers",
	Short: "Inspect saved answers",
	Long:  `List, show, and remove the answers saved by finished conversations.`,
}

var answersLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the keys with saved answers",
	Run: func(cmd *cobra.Command, args []string) {
		withStore(cmd, func(store ports.AnswerStore) error {
			return cli.ListAnswers(cmd.Context(), store, os.Stdout)
		})
	},
}

var answersShowCmd = &cobra.Command{
	Use:   "show <key>",
	Short: "Print the answers saved under a key",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		asJSON, _ := cmd.Flags().GetBool("json")
		withStore(cmd, func(store ports.AnswerStore) error {
			return cli.ShowAnswers(cmd.Context(), store, args[0], os.Stdout, asJSON)
		})
	},
}

var answersRmCmd = &cobra.Command{
	Use:   "rm <key>",
	Short: "Remove the answers saved under a key",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withStore(cmd, func(store ports.AnswerStore) error {
			return cli.DeleteAnswers(cmd.Context(), store, args[0], os.Stdout)
		})
	},
}

func init() {
	rootCmd.AddCommand(answersCmd)
	answersCmd.AddCommand(answersLsCmd, answersShowCmd, answersRmCmd)

	addStoreFlags(answersCmd.PersistentFlags())
	answersShowCmd.Flags().Bool("json", false, "Print as JSON")
}

// withStore opens the store selected by flags and config, runs fn and exits on error.
func withStore(cmd *cobra.Command, fn func(ports.AnswerStore) error) {
	opts := cli.RunOptions{Store: readStoreFlags(cmd.Flags())}
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cfg != nil {
		cfg.Apply(&opts, cmd.Flags().Changed)
	}

	store, closeStore, err := cli.OpenStore(cmd.Context(), opts.Store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	err = fn(store)
	if cerr := closeStore(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
