// Copyright (c) Kitware, Inc.
// Licensed under the BSD 3-Clause License.

package main

import (
	"github.com/spf13/cobra"

	"github.com/Kitware/kwiver/go/vital/config"
)

func newFmtCmd(root *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "fmt FILE",
		Short: "Rewrite a config file in normalized form",
		Long: `Read a config file, resolving blocks and includes, and write it back with
sorted keys and wrapped descriptions.

The output is flat: every key is fully qualified, included files are merged in,
and relativepath values are written as the absolute paths they resolved to.
Read-only keys keep their [ro] attribute.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := config.ReadFile(args[0], root.blockName)
			if err != nil {
				return err
			}
			return writeBlock(cmd, b, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	return cmd
}

// writeBlock writes b to output, or to the command's stdout if output is empty.
func writeBlock(cmd *cobra.Command, b *config.Block, output string) error {
	if output == "" {
		return config.WriteConfig(cmd.OutOrStdout(), b)
	}
	return config.WriteFile(b, output)
}
