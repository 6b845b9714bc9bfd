// Package logging is the client library's structured logging wrapper,
// modelled on the named-module logger pattern of Fabric's own
// common/flogging but backed directly by zap rather than flogging's
// dynamic per-module level registry, which this library has no need for.
package logging

import (
	"sync"

	"go.uber.org/zap"
)

var (
	baseOnce   sync.Once
	baseLogger *zap.Logger
)

func base() *zap.Logger {
	baseOnce.Do(func() {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		logger, err := cfg.Build()
		if err != nil {
			logger = zap.NewNop()
		}
		baseLogger = logger
	})
	return baseLogger
}

// MustGetLogger returns a sugared logger scoped to the given module name.
// It does not panic: if the zap config fails to build, a no-op logger is
// used instead.
func MustGetLogger(module string) *zap.SugaredLogger {
	return base().Named(module).Sugar()
}
