package main

import (
	"fmt"
	"os"

	"github.com/aretw0/intake/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [script]",
	Short: "Check a script for consistency",
	Long: `Loads the script and reports empty scripts, input steps without a field and
duplicated fields. With --print, the normalized script is printed as YAML.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var path string
		if len(args) > 0 {
			path = args[0]
		}
		printYAML, _ := cmd.Flags().GetBool("print")

		if err := cli.Validate(cmd.Context(), path, os.Stdout, printYAML); err != nil {
			fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
			os.Exit(1)
		}
		if !printYAML {
			fmt.Println("Script is valid! ✅")
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Bool("print", false, "Print the normalized script as YAML")
}
