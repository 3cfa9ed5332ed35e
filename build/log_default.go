//go:build !stdlog && !nolog
// +build !stdlog,!nolog

package build

import "os"

// LoggingType is a log type that writes to both the console and the log
// rotator, if present.
const LoggingType = LogTypeDefault

// Write copies the byte slice to stderr and to the log rotator, if present.
// Stdout is left to the command output.
func (w *LogWriter) Write(b []byte) (int, error) {
	_, _ = os.Stderr.Write(b)
	if w.Rotator != nil {
		_, _ = w.Rotator.Write(b)
	}

	return len(b), nil
}
