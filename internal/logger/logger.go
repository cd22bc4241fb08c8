// Package logger traces provider registration and resolution decisions.
// The debug trace is off by default and enabled with the --verbose flag;
// warnings always print because they report degraded behavior (a skipped
// plugin, a failed config reload, an unavailable preview index).
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	out     io.Writer = os.Stderr
)

// SetVerbose turns the debug trace on or off.
func SetVerbose(on bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = on
}

// SetOutput redirects log output. Defaults to stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// Debug prints a trace message when verbose mode is on.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	fmt.Fprintf(out, "[DEBUG] "+format+"\n", args...)
}

// Warn prints a warning regardless of verbose mode.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	fmt.Fprintf(out, "[WARN] "+format+"\n", args...)
}
