// Package logging builds the diagnostic logger. The checklist and wizard
// text go to stdout through pkg/output; this logger only carries
// diagnostics and unexpected errors, on stderr.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLevel keeps routine diagnostics out of the user's way.
const DefaultLevel = zapcore.WarnLevel

// New returns a console-encoded logger writing to w at level.
func New(w io.Writer, level zapcore.Level) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(level),
	)
	return zap.New(core)
}
