// Copyright (c) Kitware, Inc.
// Licensed under the BSD 3-Clause License.

// Command vitalcfg reads, edits and rewrites vital config files.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Kitware/kwiver/go/vital/config"
)

type rootOptions struct {
	verbose   bool
	blockName string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "vitalcfg",
		Short:         "Work with vital config files",
		Long:          "Read, query, edit and rewrite vital config files.",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !opts.verbose {
				config.SetLogger(zap.NewNop())
				return nil
			}
			l, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			config.SetLogger(l)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log file operations to stderr")
	cmd.PersistentFlags().StringVar(&opts.blockName, "block", "", "name of the config block read from the file")

	cmd.AddCommand(
		newFmtCmd(opts),
		newGetCmd(opts),
		newKeysCmd(opts),
		newSetCmd(opts),
		newDumpCmd(opts),
	)
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
