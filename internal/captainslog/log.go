package captainslog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
)

const prefix = "Captain's log, star date "

// Logger writes captain's log lines. One call produces exactly one line.
type Logger struct {
	mu    sync.Mutex
	out   io.Writer
	clock Clock
}

func New(out io.Writer, clock Clock) *Logger {
	return &Logger{
		out:   out,
		clock: clock,
	}
}

// Log writes "Captain's log, star date <epoch-millis> : <message>".
func (l *Logger) Log(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	line := fmt.Sprintf("%s%d : %s\n", prefix, l.clock.Now().UnixMilli(), message)
	if _, err := io.WriteString(l.out, line); err != nil {
		slog.Error("Failed to write captain's log", "component", "captainslog", "error", err)
	}
}

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(New(os.Stdout, SystemClock{}))
}

// Default returns the process-wide logger, which writes to stdout.
func Default() *Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the process-wide logger.
func SetDefault(l *Logger) {
	defaultLogger.Store(l)
}

// Log writes message through the default logger.
func Log(message string) {
	Default().Log(message)
}
