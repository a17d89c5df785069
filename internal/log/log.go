// Package log builds the zap logger used by the command line tools.
package log

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing human-readable entries to w. Debug
// messages are only emitted when verbose is set.
func New(w io.Writer, verbose bool) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeCaller = func(
		caller zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		p := caller.TrimmedPath()
		if len(p) > 24 {
			p = "..." + p[len(p)-21:]
		}
		pae.AppendString(fmt.Sprintf("%24s", p))
	}

	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if verbose {
		level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)
	return zap.New(core, zap.AddCaller())
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger {
	return zap.NewNop()
}
