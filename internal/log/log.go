// Package log provides the small leveled logger used throughout the lnk
// codec, mirroring the logging facade saferwall/pe wires through its own
// internal pe/log sub-package.
package log

import (
	"fmt"
	"io"
	"sync"
)

// Level is a logging severity.
type Level int

// Known levels, ordered from most to least verbose.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is the minimal logging capability every component in this module
// depends on. Components never log directly to a sink; they always go
// through a Logger so callers can redirect, filter, or silence output.
type Logger interface {
	Log(level Level, keyvals ...interface{}) error
}

// NewStdLogger returns a Logger that writes to w, one line per call.
func NewStdLogger(w io.Writer) Logger {
	return &stdLogger{w: w}
}

type stdLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *stdLogger) Log(level Level, keyvals ...interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := fmt.Fprintf(s.w, "[%s] %s\n", level, fmt.Sprint(keyvals...))
	return err
}

// Filter wraps a Logger and drops anything below its configured level.
type Filter struct {
	next  Logger
	level Level
}

// FilterOption configures a Filter.
type FilterOption func(*Filter)

// FilterLevel sets the minimum level a Filter lets through.
func FilterLevel(level Level) FilterOption {
	return func(f *Filter) { f.level = level }
}

// NewFilter builds a Filter in front of next.
func NewFilter(next Logger, opts ...FilterOption) Logger {
	f := &Filter{next: next, level: LevelInfo}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Log implements Logger.
func (f *Filter) Log(level Level, keyvals ...interface{}) error {
	if level < f.level {
		return nil
	}
	return f.next.Log(level, keyvals...)
}

// Helper adds printf-style convenience methods on top of a Logger.
type Helper struct {
	logger Logger
}

// NewHelper wraps logger in printf-style convenience methods.
func NewHelper(logger Logger) *Helper {
	return &Helper{logger: logger}
}

// Debugf logs at LevelDebug.
func (h *Helper) Debugf(format string, args ...interface{}) {
	h.log(LevelDebug, format, args...)
}

// Infof logs at LevelInfo.
func (h *Helper) Infof(format string, args ...interface{}) {
	h.log(LevelInfo, format, args...)
}

// Warnf logs at LevelWarn.
func (h *Helper) Warnf(format string, args ...interface{}) {
	h.log(LevelWarn, format, args...)
}

// Errorf logs at LevelError.
func (h *Helper) Errorf(format string, args ...interface{}) {
	h.log(LevelError, format, args...)
}

func (h *Helper) log(level Level, format string, args ...interface{}) {
	if h == nil || h.logger == nil {
		return
	}
	_ = h.logger.Log(level, fmt.Sprintf(format, args...))
}
