// Package logging wraps zerolog with the contextual child-logger helpers
// the ring and reaper pool use to tag log lines with a ring fd, reaper id,
// or opcode without every call site building its own zerolog.Context.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ringcore/iouring/internal/sys"
)

// Config controls how a Logger is constructed.
type Config struct {
	// Level is the minimum level that will be emitted.
	Level zerolog.Level
	// Output is the destination writer. Defaults to os.Stderr.
	Output io.Writer
	// Pretty switches to zerolog's human-readable console writer.
	Pretty bool
}

// DefaultConfig returns a Config that logs at Info level to stderr.
func DefaultConfig() *Config {
	return &Config{
		Level:  zerolog.InfoLevel,
		Output: os.Stderr,
	}
}

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zl zerolog.Logger
}

// NewLogger builds a Logger from config. A nil config yields DefaultConfig.
func NewLogger(config *Config) *Logger {
	if config == nil {
		config = DefaultConfig()
	}
	out := config.Output
	if out == nil {
		out = os.Stderr
	}
	if config.Pretty {
		out = zerolog.ConsoleWriter{Out: out}
	}
	zl := zerolog.New(out).Level(config.Level).With().Timestamp().Logger()
	return &Logger{zl: zl}
}

// Noop returns a Logger that discards everything. It is the zero-config
// default for a Ring that was not given a WithLogger option.
func Noop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = Noop()
)

// SetDefault installs l as the package-level default logger.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Default returns the package-level default logger.
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// WithRing returns a child logger tagged with the ring's fd.
func (l *Logger) WithRing(fd int) *Logger {
	return &Logger{zl: l.zl.With().Int("ring_fd", fd).Logger()}
}

// WithReaper returns a child logger tagged with a reaper goroutine's index.
func (l *Logger) WithReaper(id int) *Logger {
	return &Logger{zl: l.zl.With().Int("reaper", id).Logger()}
}

// WithOpcode returns a child logger tagged with an io_uring opcode.
func (l *Logger) WithOpcode(op sys.Opcode) *Logger {
	return &Logger{zl: l.zl.With().Uint8("opcode", uint8(op)).Logger()}
}

// WithError starts an Error-level event carrying err; the caller writes
// it with Msg.
func (l *Logger) WithError(err error) *zerolog.Event {
	return l.zl.Error().Err(err)
}

func (l *Logger) Debug(msg string) { l.zl.Debug().Msg(msg) }
func (l *Logger) Info(msg string)  { l.zl.Info().Msg(msg) }
func (l *Logger) Warn(msg string)  { l.zl.Warn().Msg(msg) }
func (l *Logger) Error(msg string) { l.zl.Error().Msg(msg) }

// Event exposes the underlying zerolog event builder for call sites that
// need to attach structured fields, e.g. l.Event(zerolog.DebugLevel).
func (l *Logger) Event(level zerolog.Level) *zerolog.Event {
	return l.zl.WithLevel(level)
}
