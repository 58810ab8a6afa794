// Package logging builds the zerolog logger shared by every component.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const permission = 0o644

type Build struct {
	writer  io.Writer
	path    string
	level   string
	console bool
}

func New() *Build {
	return &Build{writer: os.Stderr, level: "info"}
}

// FromPath sends JSON logs to an append-only file.
func (b *Build) FromPath(path string) *Build {
	b.path = path
	return b
}

func (b *Build) FromWriter(w io.Writer) *Build {
	b.writer = w
	return b
}

func (b *Build) Level(level string) *Build {
	b.level = level
	return b
}

// Console renders human readable lines instead of JSON when not writing to a file.
func (b *Build) Console(on bool) *Build {
	b.console = on
	return b
}

// Logger is the built logger plus the file it owns, if any.
type Logger struct {
	zerolog.Logger
	file *os.File
}

func (b *Build) Make() (*Logger, error) {
	level := zerolog.InfoLevel
	if b.level != "" {
		parsed, err := zerolog.ParseLevel(b.level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", b.level, err)
		}
		level = parsed
	}

	out := &Logger{}
	writer := b.writer
	switch {
	case b.path != "":
		if err := os.MkdirAll(filepath.Dir(b.path), 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(b.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
		if err != nil {
			return nil, err
		}
		out.file = f
		writer = zerolog.SyncWriter(f)
	case b.console:
		writer = zerolog.ConsoleWriter{Out: b.writer, TimeFormat: time.Kitchen}
	}

	out.Logger = zerolog.New(writer).Level(level).With().Timestamp().Logger()
	return out, nil
}

func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
