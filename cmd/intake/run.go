package main

import (
	"fmt"
	"os"

	"github.com/aretw0/intake/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [script]",
	Short: "Run the conversation",
	Long: `Starts a conversation in the terminal. The script is a YAML/JSON file or a
directory of markdown steps; without one, script.yaml, script.yml, script.json
or a steps/ directory in the current directory is used, and failing that the
built-in printer request script.

Type 'exit' or 'quit' to leave. With --restart, type 'restart' to start over.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts, err := buildRunOptions(cmd, args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := cli.RunSession(cmd.Context(), opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	f := runCmd.Flags()
	f.String(cli.FlagScript, "", "Script file (YAML/JSON) or directory of markdown steps")
	f.String(cli.FlagKey, "", "Key the answers are saved under (default: the script's key or printerRequest)")
	addStoreFlags(f)
	f.Bool(cli.FlagJSON, false, "Run in JSON mode (NDJSON input/output)")
	f.Bool(cli.FlagInstant, false, "Show agent messages at once instead of typing them")
	f.Duration(cli.FlagQuantum, cli.DefaultQuantum, "Delay between typed characters")
	f.Bool(cli.FlagRestart, false, "Offer to start over after the summary")
	f.String(cli.FlagMetricsFile, "", "Write Prometheus metrics to this file on exit")
	f.Bool(cli.FlagDebug, false, "Log engine events to stderr")

	// Make 'run' the default if no command is provided
	rootCmd.Flags().AddFlagSet(f)
	rootCmd.Args = runCmd.Args
	rootCmd.Run = runCmd.Run
}

func buildRunOptions(cmd *cobra.Command, args []string) (cli.RunOptions, error) {
	f := cmd.Flags()

	var opts cli.RunOptions
	opts.ScriptPath, _ = f.GetString(cli.FlagScript)
	if !f.Changed(cli.FlagScript) && len(args) > 0 {
		opts.ScriptPath = args[0]
	}
	opts.Key, _ = f.GetString(cli.FlagKey)
	opts.Store = readStoreFlags(f)
	opts.JSON, _ = f.GetBool(cli.FlagJSON)
	opts.Instant, _ = f.GetBool(cli.FlagInstant)
	opts.Quantum, _ = f.GetDuration(cli.FlagQuantum)
	opts.Restart, _ = f.GetBool(cli.FlagRestart)
	opts.MetricsFile, _ = f.GetString(cli.FlagMetricsFile)
	opts.Debug, _ = f.GetBool(cli.FlagDebug)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return opts, err
	}
	if cfg != nil {
		cfg.Apply(&opts, func(flag string) bool {
			return f.Changed(flag) || (flag == cli.FlagScript && len(args) > 0)
		})
	}
	return opts, nil
}
