// Copyright (c) Kitware, Inc.
// Licensed under the BSD 3-Clause License.

package config

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	nop    = zap.NewNop()
	logger atomic.Pointer[zap.Logger]
)

// Logger returns the config package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return nop
}

// SetLogger configures the config package's logger. A nil logger restores the
// no-op default. It is safe to call concurrently with config operations.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}
