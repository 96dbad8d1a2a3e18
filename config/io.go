// Copyright (c) Kitware, Inc.
// Licensed under the BSD 3-Clause License.

package config

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

const (
	commentToken = "#"
	commentWidth = 80

	noParameters = "No parameters in the given config_block!"
)

// ReadFile parses the config file at path into a new block named blockName.
// Fails with ErrFileNotFound if path does not exist or is not a regular file,
// and ErrFileNotParsed if the contents are malformed.
func ReadFile(path, blockName string) (*Block, error) {
	p := &parser{block: NewBlock(blockName), open: make(map[string]bool)}
	if err := p.parseFile(path, nil); err != nil {
		return nil, err
	}
	Logger().Debug("read config file", zap.String("path", path), zap.Int("values", p.block.Len()))
	return p.block, nil
}

// WriteFile writes b to path, creating any missing parent directories.
func WriteFile(b *Block, path string) error {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fileWrite(path, "Path given is a directory, to which we clearly can't write.", nil)
	}

	// Refuse before anything on disk is created or truncated.
	if b.Len() == 0 {
		return fileWrite(path, noParameters, nil)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fileWrite(path, "", err)
	}
	parent := filepath.Dir(abs)
	if info, err := os.Stat(parent); err != nil || !info.IsDir() {
		Logger().Debug("creating config directory", zap.String("path", parent))
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return fileWrite(parent, "Attempted directory creation, but no directory created!", err)
		}
	}

	f, err := os.Create(abs)
	if err != nil {
		return fileWrite(path, "", err)
	}
	if err := WriteConfig(f, b); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fileWrite(path, "", err)
	}
	Logger().Debug("wrote config file", zap.String("path", abs), zap.Int("values", b.Len()))
	return nil
}

// WriteConfig writes b to w in config file syntax. Keys are sorted, and each
// key with a description is preceded by the description as a comment block
// wrapped to 80 columns. Read-only keys carry the [ro] attribute.
//
// Keys are written fully qualified: blocks and includes of the file the block
// was read from are flattened, and relativepath values are written as the
// resolved paths.
func WriteConfig(w io.Writer, b *Block) error {
	if b.Len() == 0 {
		return fileWrite(streamPath, noParameters, nil)
	}

	bw := bufio.NewWriter(w)
	prevHadDescription := false
	for _, key := range b.Keys() {
		e := b.entries[key]
		if e.description != "" {
			writeComment(bw, e.description)
			prevHadDescription = true
		} else if prevHadDescription {
			// Spacer after an entry with a description.
			bw.WriteString("\n")
			prevHadDescription = false
		}
		bw.WriteString(key)
		if e.readOnly {
			bw.WriteString("[" + attrReadOnly + "]")
		}
		bw.WriteString(" = ")
		bw.WriteString(e.value)
		bw.WriteString("\n")
	}
	if err := bw.Flush(); err != nil {
		return fileWrite(streamPath, "", err)
	}
	return nil
}

// writeComment writes a description as "#" comment lines. Explicit newlines
// are kept. Runs of spaces between words are kept, but spaces at a line
// split are dropped so no line has trailing white-space.
func writeComment(w *bufio.Writer, comment string) {
	// Separates the comment from the previous entry.
	w.WriteString("\n")

	for _, paragraph := range strings.Split(comment, "\n") {
		line := commentToken
		spaces := 1
		for _, word := range strings.Split(paragraph, " ") {
			if word == "" {
				spaces++
				continue
			}
			// A word too long for any line goes on the current one.
			if line != commentToken && len(line)+spaces+len(word) > commentWidth {
				w.WriteString(line)
				w.WriteString("\n")
				line = commentToken
				spaces = 1
			}
			line += strings.Repeat(" ", spaces) + word
			spaces = 1
		}
		w.WriteString(line)
		w.WriteString("\n")
	}
}
