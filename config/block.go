// Copyright (c) Kitware, Inc.
// Licensed under the BSD 3-Clause License.

// Package config holds vital configuration blocks and reads and writes them
// as config files.
package config

import (
	"sort"
	"strconv"
	"strings"
)

// BlockSep separates the components of a nested key, as in "algo:detector:threshold".
const BlockSep = ":"

type entry struct {
	value       string
	description string
	readOnly    bool
}

// Block is a named set of key/value entries, each with an optional
// description. Blocks are not safe for concurrent mutation.
type Block struct {
	name    string
	entries map[string]*entry
}

// NewBlock creates an empty block.
func NewBlock(name string) *Block {
	return &Block{
		name:    name,
		entries: make(map[string]*entry),
	}
}

func (b *Block) Name() string {
	return b.name
}

// Len returns the number of keys with a value.
func (b *Block) Len() int {
	return len(b.entries)
}

// Set sets the value of key, creating it if needed.
// Returns ErrReadOnly if the key has been marked read-only.
func (b *Block) Set(key, value string) error {
	e, ok := b.entries[key]
	if !ok {
		b.entries[key] = &entry{value: value}
		return nil
	}
	if e.readOnly {
		return readOnly(key)
	}
	e.value = value
	return nil
}

// SetDescription sets the description of key, creating an empty value if
// the key does not exist yet.
func (b *Block) SetDescription(key, description string) {
	e, ok := b.entries[key]
	if !ok {
		e = &entry{}
		b.entries[key] = e
	}
	e.description = description
}

// Get returns the value of key or ErrNoSuchValue.
func (b *Block) Get(key string) (string, error) {
	e, ok := b.entries[key]
	if !ok {
		return "", noSuchValue(key)
	}
	return e.value, nil
}

// GetDefault returns the value of key, or def if it is not set.
func (b *Block) GetDefault(key, def string) string {
	if e, ok := b.entries[key]; ok {
		return e.value
	}
	return def
}

// GetBool parses the value of key as a boolean. Accepted, case-insensitive:
// true, yes, on, 1 and false, no, off, 0.
func (b *Block) GetBool(key string) (bool, error) {
	v, err := b.Get(key)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	default:
		return false, badConversion(key, v, "bool", nil)
	}
}

func (b *Block) GetInt(key string) (int64, error) {
	v, err := b.Get(key)
	if err != nil {
		return 0, err
	}
	i, err := strconv.ParseInt(strings.TrimSpace(v), 0, 64)
	if err != nil {
		return 0, badConversion(key, v, "int", err)
	}
	return i, nil
}

func (b *Block) GetFloat(key string) (float64, error) {
	v, err := b.Get(key)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, badConversion(key, v, "float", err)
	}
	return f, nil
}

// Description returns the description of key, or "" if there is none.
func (b *Block) Description(key string) string {
	if e, ok := b.entries[key]; ok {
		return e.description
	}
	return ""
}

func (b *Block) Has(key string) bool {
	_, ok := b.entries[key]
	return ok
}

// Unset removes key. Read-only keys cannot be removed.
func (b *Block) Unset(key string) error {
	e, ok := b.entries[key]
	if !ok {
		return noSuchValue(key)
	}
	if e.readOnly {
		return readOnly(key)
	}
	delete(b.entries, key)
	return nil
}

// MarkReadOnly prevents further changes to key. Unknown keys are ignored.
func (b *Block) MarkReadOnly(key string) {
	if e, ok := b.entries[key]; ok {
		e.readOnly = true
	}
}

func (b *Block) IsReadOnly(key string) bool {
	e, ok := b.entries[key]
	return ok && e.readOnly
}

// Keys returns all keys with a value, sorted.
func (b *Block) Keys() []string {
	keys := make([]string, 0, len(b.entries))
	for k := range b.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Subblock returns a copy of the entries under prefix, with "prefix:"
// stripped from their keys. The new block is named prefix.
func (b *Block) Subblock(prefix string) *Block {
	sub := NewBlock(prefix)
	lead := prefix + BlockSep
	for k, e := range b.entries {
		if rest, ok := strings.CutPrefix(k, lead); ok && rest != "" {
			cp := *e
			sub.entries[rest] = &cp
		}
	}
	return sub
}

// Merge copies every entry of other into b, overwriting values and
// descriptions. Stops at the first read-only conflict.
func (b *Block) Merge(other *Block) error {
	for _, k := range other.Keys() {
		e := other.entries[k]
		if err := b.Set(k, e.value); err != nil {
			return err
		}
		if e.description != "" {
			b.SetDescription(k, e.description)
		}
		if e.readOnly {
			b.MarkReadOnly(k)
		}
	}
	return nil
}
