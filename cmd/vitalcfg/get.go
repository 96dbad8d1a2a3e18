// Copyright (c) Kitware, Inc.
// Licensed under the BSD 3-Clause License.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kitware/kwiver/go/vital/config"
)

func newGetCmd(root *rootOptions) *cobra.Command {
	var describe bool

	cmd := &cobra.Command{
		Use:   "get FILE KEY",
		Short: "Print the value of a key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := config.ReadFile(args[0], root.blockName)
			if err != nil {
				return err
			}
			v, err := b.Get(args[1])
			if err != nil {
				return err
			}
			if describe {
				if d := b.Description(args[1]); d != "" {
					fmt.Fprintln(cmd.OutOrStdout(), d)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&describe, "describe", "d", false, "print the description before the value")
	return cmd
}

func newKeysCmd(root *rootOptions) *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "keys FILE",
		Short: "List the keys of a config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := config.ReadFile(args[0], root.blockName)
			if err != nil {
				return err
			}
			if prefix != "" {
				b = b.Subblock(prefix)
			}
			for _, k := range b.Keys() {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "only list keys of this subblock, with the prefix removed")
	return cmd
}
