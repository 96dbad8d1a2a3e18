// Copyright (c) Kitware, Inc.
// Licensed under the BSD 3-Clause License.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Kitware/kwiver/go/vital/config"
)

// ownValueKey holds the value of a key that also has nested keys.
const ownValueKey = "_value"

func newDumpCmd(root *rootOptions) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Print every key and value",
		Long:  "Print every resolved key and value. With --yaml, keys are nested on the \":\" separator.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := config.ReadFile(args[0], root.blockName)
			if err != nil {
				return err
			}
			if !asYAML {
				for _, k := range b.Keys() {
					fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", k, b.GetDefault(k, ""))
				}
				return nil
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(blockToYAML(b)); err != nil {
				return err
			}
			return enc.Close()
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print as nested YAML")
	return cmd
}

type yamlTree struct {
	value    *string
	comment  string
	order    []string
	children map[string]*yamlTree
}

func (t *yamlTree) child(name string) *yamlTree {
	if c, ok := t.children[name]; ok {
		return c
	}
	c := &yamlTree{children: make(map[string]*yamlTree)}
	t.children[name] = c
	t.order = append(t.order, name)
	return c
}

// blockToYAML nests the keys of b on BlockSep. Descriptions become head comments.
func blockToYAML(b *config.Block) *yaml.Node {
	root := &yamlTree{children: make(map[string]*yamlTree)}
	for _, k := range b.Keys() {
		node := root
		for _, part := range strings.Split(k, config.BlockSep) {
			node = node.child(part)
		}
		v := b.GetDefault(k, "")
		node.value = &v
		node.comment = b.Description(k)
	}
	return root.node()
}

func (t *yamlTree) node() *yaml.Node {
	if len(t.order) == 0 {
		v := ""
		if t.value != nil {
			v = *t.value
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
	}

	m := &yaml.Node{Kind: yaml.MappingNode}
	if t.value != nil {
		m.Content = append(m.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: ownValueKey},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: *t.value},
		)
	}
	for _, name := range t.order {
		c := t.children[name]
		key := &yaml.Node{Kind: yaml.ScalarNode, Value: name}
		if c.comment != "" {
			key.HeadComment = c.comment
		}
		m.Content = append(m.Content, key, c.node())
	}
	return m
}
