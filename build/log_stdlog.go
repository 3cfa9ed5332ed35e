//go:build stdlog
// +build stdlog

package build

import "os"

// LoggingType is a log type that only writes to the console.
const LoggingType = LogTypeConsole

// Write writes the provided byte slice to stderr. The rotator is never
// touched, even if one is set.
func (w *LogWriter) Write(b []byte) (int, error) {
	return os.Stderr.Write(b)
}
