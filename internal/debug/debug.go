// Package debug provides the core's diagnostic logging: silent by
// default, active once a caller opts in with SetOutput or sets the
// SNIPCORE_DEBUG environment variable. Modeled on
// the teacher's internal/debug package, trimmed of the MCP-mode and
// log-file-rotation concerns that don't apply to a library core. No
// third-party logging library is wired here — none of the retrieved
// example repos import one either; each rolls a thin writer-backed
// logger exactly like this one (see SPEC_FULL.md §1.2).
package debug

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu     sync.Mutex
	output io.Writer
)

// SetOutput sets the writer diagnostic messages are written to. Pass nil
// to clear it; output then goes to stderr if SNIPCORE_DEBUG is set and
// is silent otherwise.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Enabled reports whether a destination is currently configured, either
// via SetOutput or the SNIPCORE_DEBUG environment variable (which routes
// to stderr).
func Enabled() bool {
	return writer() != nil
}

func writer() io.Writer {
	mu.Lock()
	defer mu.Unlock()
	if output != nil {
		return output
	}
	if os.Getenv("SNIPCORE_DEBUG") != "" {
		return os.Stderr
	}
	return nil
}

// Log writes a component-tagged diagnostic line if a destination is
// configured; it is a no-op otherwise.
func Log(component, format string, args ...any) {
	w := writer()
	if w == nil {
		return
	}
	fmt.Fprintf(w, "[%s] "+format+"\n", append([]any{component}, args...)...)
}

// LogParse logs from the Snippet Extractor.
func LogParse(format string, args ...any) { Log("parse", format, args...) }

// LogWalk logs from the Directory Driver.
func LogWalk(format string, args ...any) { Log("walk", format, args...) }

// LogSnapshot logs from the Version Manager.
func LogSnapshot(format string, args ...any) { Log("snapshot", format, args...) }
