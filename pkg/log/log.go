package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
	"sync/atomic"
	"time"
)

var (
	leveler       = &slog.LevelVar{}
	defaultLogger atomic.Pointer[slog.Logger]
)

func init() { SetDefault(NewSLogger(os.Stderr)) }

// NewSLogger returns a text logger writing to w that honours the package level.
func NewSLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		AddSource: true,
		Level:     leveler,
	}))
}

func SetDefault(l *slog.Logger) { defaultLogger.Store(l) }
func Default() *slog.Logger     { return defaultLogger.Load() }

func SetLevel(l slog.Level) { leveler.Set(l) }
func Level() slog.Level     { return leveler.Level() }

func Debug(msg string, v ...any) { output(slog.LevelDebug, msg, v...) }
func Info(msg string, v ...any)  { output(slog.LevelInfo, msg, v...) }
func Warn(msg string, v ...any)  { output(slog.LevelWarn, msg, v...) }
func Error(msg string, v ...any) { output(slog.LevelError, msg, v...) }

type LevelLogger struct{ level slog.Level }

// Select returns a logger fixed at level, for call sites whose level depends on
// their outcome.
func Select(level slog.Level) LevelLogger { return LevelLogger{level} }

func (l LevelLogger) Print(msg string, v ...any) { output(l.level, msg, v...) }

// PrintFunc only evaluates f when level is enabled.
func (l LevelLogger) PrintFunc(msg string, f func() []any) {
	if !Default().Enabled(context.Background(), l.level) {
		return
	}
	output(l.level, msg, f()...)
}

func output(level slog.Level, msg string, v ...any) {
	logger := Default()
	if !logger.Enabled(context.Background(), level) {
		return
	}

	var pcs [1]uintptr
	// skip runtime.Callers, output and the exported wrapper
	runtime.Callers(3, pcs[:])
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(v...)
	_ = logger.Handler().Handle(context.Background(), r)
}
