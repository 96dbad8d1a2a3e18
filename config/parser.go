// Copyright (c) Kitware, Inc.
// Licensed under the BSD 3-Clause License.

package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

const (
	keywordBlock        = "block"
	keywordEndBlock     = "endblock"
	keywordInclude      = "include"
	keywordRelativePath = "relativepath"

	attrReadOnly = "ro"

	streamPath = "<stream>"
)

type parser struct {
	block *Block
	// Absolute paths of the files currently being parsed, for include cycles.
	open map[string]bool
}

// Parse reads config statements from r into a new block called name.
// Relative includes and relativepath values resolve against dir.
func Parse(r io.Reader, name, dir string) (*Block, error) {
	p := &parser{block: NewBlock(name), open: make(map[string]bool)}
	if err := p.parse(r, streamPath, dir, nil); err != nil {
		return nil, err
	}
	return p.block, nil
}

func (p *parser) parseFile(path string, prefix []string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return &Error{code: CodeFileNotFound, path: path, err: err}
	}
	if p.open[abs] {
		return &Error{code: CodeFileNotParsed, path: path, reason: "include cycle"}
	}

	info, err := os.Stat(abs)
	if err != nil {
		return fileNotFound(path, "File does not exist.")
	}
	if info.IsDir() {
		return fileNotFound(path, "Path given doesn't point to a regular file!")
	}

	f, err := os.Open(abs)
	if err != nil {
		return &Error{code: CodeFileNotFound, path: path, err: err}
	}
	defer f.Close()

	Logger().Debug("parsing config file", zap.String("path", abs), zap.Strings("prefix", prefix))

	p.open[abs] = true
	defer delete(p.open, abs)
	return p.parse(f, path, filepath.Dir(abs), prefix)
}

func (p *parser) parse(r io.Reader, path, dir string, prefix []string) error {
	stack := append([]string(nil), prefix...)
	var blockLines []int
	var comments []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			comments = nil
			continue
		case strings.HasPrefix(line, commentToken):
			comments = append(comments, strings.TrimPrefix(line, commentToken))
			continue
		}

		eq := strings.IndexByte(line, '=')
		if eq < 0 {
			fields := strings.Fields(line)
			switch fields[0] {
			case keywordBlock:
				if len(fields) != 2 || !validKey(fields[1]) {
					return notParsed(path, lineNo, "block requires a single name")
				}
				stack = append(stack, fields[1])
				blockLines = append(blockLines, lineNo)
			case keywordEndBlock:
				if len(fields) != 1 {
					return notParsed(path, lineNo, "endblock takes no arguments")
				}
				if len(blockLines) == 0 {
					return notParsed(path, lineNo, "endblock without matching block")
				}
				stack = stack[:len(stack)-1]
				blockLines = blockLines[:len(blockLines)-1]
			case keywordInclude:
				target := strings.TrimSpace(strings.TrimPrefix(line, keywordInclude))
				if target == "" {
					return notParsed(path, lineNo, "include requires a file name")
				}
				if !filepath.IsAbs(target) {
					target = filepath.Join(dir, target)
				}
				Logger().Debug("including config file", zap.String("from", path), zap.String("path", target))
				if err := p.parseFile(target, stack); err != nil {
					return err
				}
			default:
				return notParsed(path, lineNo, fmt.Sprintf("unrecognized statement %q", line))
			}
			comments = nil
			continue
		}

		if err := p.assign(line[:eq], line[eq+1:], path, dir, lineNo, stack, comments); err != nil {
			return err
		}
		comments = nil
	}
	if err := scanner.Err(); err != nil {
		return &Error{code: CodeFileNotParsed, path: path, line: lineNo, err: err}
	}
	if len(blockLines) > 0 {
		open := blockLines[len(blockLines)-1]
		return notParsed(path, open, fmt.Sprintf("block %q is never closed", stack[len(stack)-1]))
	}
	return nil
}

func (p *parser) assign(lhs, value, path, dir string, lineNo int, stack, comments []string) error {
	lhs = strings.TrimSpace(lhs)
	value = strings.TrimSpace(value)

	relative := false
	if rest, ok := strings.CutPrefix(lhs, keywordRelativePath); ok && rest != strings.TrimLeft(rest, " \t") {
		relative = true
		lhs = strings.TrimSpace(rest)
	}

	var attrs []string
	if strings.HasSuffix(lhs, "]") {
		open := strings.LastIndexByte(lhs, '[')
		if open < 0 {
			return notParsed(path, lineNo, "unbalanced attribute brackets")
		}
		for _, a := range strings.Split(lhs[open+1:len(lhs)-1], ",") {
			if a = strings.TrimSpace(a); a != "" {
				attrs = append(attrs, a)
			}
		}
		lhs = strings.TrimSpace(lhs[:open])
	}

	if !validKey(lhs) {
		return notParsed(path, lineNo, fmt.Sprintf("invalid key %q", lhs))
	}
	key := strings.Join(append(append([]string(nil), stack...), lhs), BlockSep)

	if relative && value != "" && !filepath.IsAbs(value) {
		value = filepath.Join(dir, value)
	}

	readOnlyKey := false
	for _, a := range attrs {
		switch a {
		case attrReadOnly:
			readOnlyKey = true
		default:
			return notParsed(path, lineNo, fmt.Sprintf("unknown attribute %q", a))
		}
	}

	if err := p.block.Set(key, value); err != nil {
		return &Error{code: CodeReadOnly, path: path, line: lineNo, key: key}
	}
	if len(comments) > 0 {
		p.block.SetDescription(key, joinComments(comments))
	}
	if readOnlyKey {
		p.block.MarkReadOnly(key)
	}
	return nil
}

// joinComments rebuilds a description from the text of comment lines, in
// the form writeComment produces. A line continues the previous paragraph
// only if writeComment would have had to wrap there: it starts with a single
// space and its first word does not fit on the previous line. Every other
// line, including an empty one, starts a new paragraph.
func joinComments(lines []string) string {
	var paragraphs []string
	prev := ""
	for i, l := range lines {
		text := strings.TrimPrefix(l, " ")
		lead := len(l) - len(strings.TrimLeft(l, " "))
		if i > 0 && text != "" && lead <= 1 && prev != commentToken && wrapped(prev, text) {
			paragraphs[len(paragraphs)-1] += " " + text
		} else {
			paragraphs = append(paragraphs, text)
		}
		prev = commentToken + l
	}
	return strings.Join(paragraphs, "\n")
}

// wrapped reports whether the first word of text is too long to have been
// appended to the comment line prev.
func wrapped(prev, text string) bool {
	word, _, _ := strings.Cut(text, " ")
	return len(prev)+1+len(word) > commentWidth
}

func validKey(key string) bool {
	if key == "" || strings.ContainsAny(key, " \t=[]#") {
		return false
	}
	for _, part := range strings.Split(key, BlockSep) {
		if part == "" {
			return false
		}
	}
	return true
}
