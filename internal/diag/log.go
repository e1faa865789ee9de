// Package diag provides optional, structured debug tracing for the parts of
// the codec that scan a whole file (the framer and the index builder).
//
// The codec never needs to log in order to operate correctly: every
// diagnostic here is best-effort tracing for callers who want visibility
// into truncated tails, unknown record types, or index-building progress on
// large files. Logging is silent by default.
package diag

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// std is the structured logger behind Debugf and Warnf, used by the stdf,
// stdfio and index packages. It writes to io.Discard until Enable is
// called; Enable and Disable are the only way to redirect it.
var std = log.NewWithOptions(io.Discard, log.Options{
	Prefix: "stdf",
})

// Enable directs diagnostic output to stderr at the given level. Call it
// once, before decoding, to see framer/index tracing; the default is
// silent.
func Enable(level log.Level) {
	std.SetOutput(os.Stderr)
	std.SetLevel(level)
}

// Disable silences diagnostic output again.
func Disable() {
	std.SetOutput(io.Discard)
}

func Debugf(format string, args ...any) {
	std.Debugf(format, args...)
}

func Warnf(format string, args ...any) {
	std.Warnf(format, args...)
}
