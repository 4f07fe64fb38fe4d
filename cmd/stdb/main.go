package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AlexanderVinarsky/stDBMS/internal"
	"github.com/AlexanderVinarsky/stDBMS/internal/store"
)

var (
	flagConfig  string
	flagWorkdir string
)

var rootCmd = &cobra.Command{
	Use:           "stdb",
	Short:         "Flat-file page/directory storage for the stDBMS toy database",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// openStore resolves the working directory with flag > config file >
// defaults precedence and opens a store over it.
func openStore() (*store.Store, error) {
	cfg := internal.DefaultConfig()
	if flagConfig != "" {
		loaded, err := internal.LoadConfig(flagConfig)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if flagWorkdir != "" {
		cfg.Storage.Workdir = flagWorkdir
	}
	return store.Open(cfg.Storage.Workdir, cfg.Storage.PageExt, cfg.Storage.DirExt)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (yaml)")
	rootCmd.PersistentFlags().StringVar(&flagWorkdir, "workdir", "", "working directory for record files")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
