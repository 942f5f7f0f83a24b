package willowui

import (
	"fmt"
	"log/slog"
	"os"
)

// SetLogger replaces the logger warnings and debug output go to. A nil
// logger restores slog.Default.
func (ui *UI) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	ui.logger = l.With("component", "willowui")
	debugLogger = ui.logger
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-element
// access panics, tree depth and child count warnings are logged, and cleanup
// of orphaned elements is logged at debug level.
func (ui *UI) SetDebugMode(enabled bool) {
	ui.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set UI debug flag so that element
// operations (which may lack a UI pointer) can check it cheaply. Only valid
// with a single UI; multiple UIs with differing debug modes will reflect
// whichever called SetDebugMode last.
var globalDebug bool

// debugLogger is the logger of the UI that last called SetLogger.
var debugLogger = slog.Default()

// newLogger builds the logger for cfg: slog.Default unless a level is set.
func newLogger(cfg Config) *slog.Logger {
	level, err := cfg.level()
	if err != nil || cfg.LogLevel == "" {
		return slog.Default().With("component", "willowui")
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("component", "willowui")
}

// warn logs a skipped operation.
func (ui *UI) warn(msg string, args ...any) {
	ui.logger.Warn(msg, args...)
}

// debugf logs lifecycle detail when debug mode is on.
func (ui *UI) debugf(msg string, args ...any) {
	if !ui.debug {
		return
	}
	ui.logger.Debug(msg, args...)
}

// debugCheckDisposed panics with a descriptive message when a disposed element
// is used in a tree operation. Only called in debug mode.
func debugCheckDisposed(e *Element, op string) {
	if e.disposed {
		panic(fmt.Sprintf("willowui debug: %s on disposed element %q (ID was %d)", op, e.Name, e.ID))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(e *Element) {
	depth := 0
	for p := e; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		debugLogger.Warn("tree depth exceeds threshold",
			"depth", depth, "threshold", debugMaxTreeDepth, "element", e.Name)
	}
}

// debugCheckChildCount warns if an element has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(e *Element) {
	if len(e.children) > debugMaxChildCount {
		debugLogger.Warn("element has too many children",
			"element", e.Name, "children", len(e.children), "threshold", debugMaxChildCount)
	}
}
