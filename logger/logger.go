package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"procwatch/config"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Builder assembles a zerolog.Logger from a LogConfig. The TUI owns the
// terminal, so by default everything goes to the rotated log file only.
type Builder struct {
	cfg     config.LogConfig
	console io.Writer
	session string
}

func NewBuilder(cfg config.LogConfig) *Builder {
	return &Builder{cfg: cfg}
}

// WithConsole also writes human-readable lines to w.
func (b *Builder) WithConsole(w io.Writer) *Builder {
	b.console = w
	return b
}

// WithSession tags every line with a session id.
func (b *Builder) WithSession(id string) *Builder {
	b.session = id
	return b
}

func (b *Builder) Build() (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if b.cfg.Level != "" {
		l, err := zerolog.ParseLevel(strings.ToLower(b.cfg.Level))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("parse log level %q: %w", b.cfg.Level, err)
		}
		level = l
	}

	var writers []io.Writer
	if b.console != nil {
		writers = append(writers, zerolog.ConsoleWriter{Out: b.console, TimeFormat: time.Kitchen})
	}
	if b.cfg.File != "" {
		w, err := b.fileWriter()
		if err != nil {
			return zerolog.Nop(), err
		}
		writers = append(writers, w)
	}
	if len(writers) == 0 {
		return zerolog.Nop(), nil
	}

	ctx := zerolog.New(zerolog.MultiLevelWriter(writers...)).Level(level).With().Timestamp()
	if b.session != "" {
		ctx = ctx.Str("session", b.session)
	}
	return ctx.Logger(), nil
}

func (b *Builder) fileWriter() (io.Writer, error) {
	if err := os.MkdirAll(filepath.Dir(b.cfg.File), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	lj := &lumberjack.Logger{
		Filename:   b.cfg.File,
		MaxSize:    b.cfg.MaxSizeMB,
		MaxBackups: b.cfg.MaxBackups,
		LocalTime:  true,
	}
	if strings.EqualFold(b.cfg.Format, "console") {
		return zerolog.ConsoleWriter{Out: lj, NoColor: true, TimeFormat: time.RFC3339}, nil
	}
	return lj, nil
}

// NewSessionID returns a fresh id for WithSession.
func NewSessionID() string {
	return uuid.NewString()
}
