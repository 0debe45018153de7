package main

import (
	"errors"
	"os"

	"github.com/aretw0/intake/internal/cli"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func addStoreFlags(f *pflag.FlagSet) {
	f.String(cli.FlagSink, cli.SinkFile, "Where answers are saved: memory, file, redis or blob")
	f.String(cli.FlagSinkPath, "", "Directory of the file sink (default: .intake/answers)")
	f.String(cli.FlagRedisURL, "", "Redis URL for the redis sink (redis://host:port/db)")
	f.Duration(cli.FlagRedisTTL, 0, "Expire answers in the redis sink after this long (0 keeps them)")
	f.String(cli.FlagBlobURL, "", "Bucket URL for the blob sink (file:///path, mem://)")
	f.Bool(cli.FlagMask, false, "Mask fields that look like personal data before saving")
}

func readStoreFlags(f *pflag.FlagSet) cli.StoreOptions {
	var opts cli.StoreOptions
	opts.Type, _ = f.GetString(cli.FlagSink)
	opts.Path, _ = f.GetString(cli.FlagSinkPath)
	opts.RedisURL, _ = f.GetString(cli.FlagRedisURL)
	opts.RedisTTL, _ = f.GetDuration(cli.FlagRedisTTL)
	opts.BlobURL, _ = f.GetString(cli.FlagBlobURL)
	opts.Mask, _ = f.GetBool(cli.FlagMask)
	return opts
}

// loadConfig reads the file named by --config, or intake.yaml when it exists.
// It returns nil when there is nothing to load.
func loadConfig(cmd *cobra.Command) (*cli.FileConfig, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		if _, err := os.Stat(cli.DefaultConfigFile); errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		path = cli.DefaultConfigFile
	}
	return cli.LoadConfig(path)
}
