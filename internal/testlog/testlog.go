// Package testlog builds quiet loggers for tests whose subjects log
// heavily at debug level (the tour solver's per-generation GA stats, the
// kinematic planner's per-attempt retries), where golog.NewTestLogger's
// full output would bury the actual test failure in noise.
package testlog

import (
	"github.com/edaniels/golog"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Quiet returns a golog.Logger backed by a zap logger at Error level, so
// Debugw/Infow calls made during a test run are silently dropped.
func Quiet() golog.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)

	zl, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return zl.Sugar()
}
