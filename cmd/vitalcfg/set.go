// Copyright (c) Kitware, Inc.
// Licensed under the BSD 3-Clause License.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Kitware/kwiver/go/vital/config"
)

func newSetCmd(root *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "set FILE KEY=VALUE...",
		Short: "Set values and write the result",
		Long: `Set one or more values in a config file. The result goes to stdout unless
--output is given; use --output FILE to update in place.

The result is written the way fmt writes it, so updating in place flattens
blocks and includes and makes relativepath values absolute.`,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := config.ReadFile(args[0], root.blockName)
			if err != nil {
				return err
			}
			for _, arg := range args[1:] {
				key, value, ok := strings.Cut(arg, "=")
				key = strings.TrimSpace(key)
				if !ok || key == "" {
					return fmt.Errorf("expected KEY=VALUE, got %q", arg)
				}
				if err := b.Set(key, strings.TrimSpace(value)); err != nil {
					return err
				}
			}
			return writeBlock(cmd, b, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	return cmd
}
