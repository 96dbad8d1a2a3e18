// Copyright (c) Kitware, Inc.
// Licensed under the BSD 3-Clause License.

package config

import (
	"fmt"
	"strings"
)

// ErrorCode classifies config errors.
type ErrorCode uint

const (
	CodeFileNotFound ErrorCode = iota + 1
	CodeFileNotParsed
	CodeFileWrite
	CodeNoSuchValue
	CodeReadOnly
	CodeBadConversion
)

// Sentinels for use with errors.Is. Matching is by code only.
var (
	ErrFileNotFound  = &Error{code: CodeFileNotFound}
	ErrFileNotParsed = &Error{code: CodeFileNotParsed}
	ErrFileWrite     = &Error{code: CodeFileWrite}
	ErrNoSuchValue   = &Error{code: CodeNoSuchValue}
	ErrReadOnly      = &Error{code: CodeReadOnly}
	ErrBadConversion = &Error{code: CodeBadConversion}
)

type Error struct {
	code   ErrorCode
	path   string
	line   int
	key    string
	reason string
	err    error
}

func (e *Error) Code() uint {
	return uint(e.code)
}

// Path is the file the error relates to, if any.
func (e *Error) Path() string {
	return e.path
}

// Line is the 1-based line of a parse error, or 0.
func (e *Error) Line() int {
	return e.line
}

// Key is the config key the error relates to, if any.
func (e *Error) Key() string {
	return e.key
}

func (e *Error) message() string {
	switch e.code {
	case CodeFileNotFound:
		return "config file not found"
	case CodeFileNotParsed:
		return "config file could not be parsed"
	case CodeFileWrite:
		return "config file could not be written"
	case CodeNoSuchValue:
		return "no such config value"
	case CodeReadOnly:
		return "config value is read-only"
	case CodeBadConversion:
		return "bad config value conversion"
	default:
		return "unknown error"
	}
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.message())
	switch {
	case e.path != "" && e.line > 0:
		fmt.Fprintf(&sb, ": %s:%d", e.path, e.line)
	case e.path != "":
		fmt.Fprintf(&sb, ": %s", e.path)
	}
	if e.key != "" {
		fmt.Fprintf(&sb, ": %q", e.key)
	}
	if e.reason != "" {
		sb.WriteString(": ")
		sb.WriteString(e.reason)
	}
	if e.err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.err.Error())
	}
	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.code == e.code
}

func fileNotFound(path, reason string) error {
	return &Error{code: CodeFileNotFound, path: path, reason: reason}
}

func fileWrite(path, reason string, err error) error {
	return &Error{code: CodeFileWrite, path: path, reason: reason, err: err}
}

func notParsed(path string, line int, reason string) error {
	return &Error{code: CodeFileNotParsed, path: path, line: line, reason: reason}
}

func noSuchValue(key string) error {
	return &Error{code: CodeNoSuchValue, key: key}
}

func readOnly(key string) error {
	return &Error{code: CodeReadOnly, key: key}
}

func badConversion(key, value, kind string, err error) error {
	return &Error{code: CodeBadConversion, key: key, reason: fmt.Sprintf("cannot convert %q to %s", value, kind), err: err}
}
