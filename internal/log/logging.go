// Package log builds the process slog.Logger and the raw report dumper.
//
// Without a log file, records below error go to stdout and errors go to
// stderr. With a log file, the console copy goes to stderr.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LevelTrace sits below Debug and is used for per-event backend tracing.
const LevelTrace slog.Level = -8

// Config holds the logging flags shared by every command.
type Config struct {
	Level   string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"VISE_LOG_LEVEL"`
	File    string `help:"Also write logs to this file (truncated on start)" env:"VISE_LOG_FILE"`
	RawFile string `help:"Hex dump every raw HID report to this file" env:"VISE_LOG_RAW_FILE"`
}

// ParseLevel maps a level name onto a slog level. Unknown names are Info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// MultiHandler fans out records to multiple handlers.
type MultiHandler struct{ hs []slog.Handler }

func NewMultiHandler(hs ...slog.Handler) MultiHandler { return MultiHandler{hs: hs} }

func (m MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.hs {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.hs {
		if h.Enabled(ctx, r.Level) {
			_ = h.Handle(ctx, r.Clone())
		}
	}
	return nil
}

func (m MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return m.each(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

func (m MultiHandler) WithGroup(name string) slog.Handler {
	return m.each(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (m MultiHandler) each(f func(slog.Handler) slog.Handler) MultiHandler {
	out := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		out[i] = f(h)
	}
	return MultiHandler{hs: out}
}

// LevelFilter passes only the levels accepted by pass on to h.
type LevelFilter struct {
	pass func(slog.Level) bool
	h    slog.Handler
}

func NewLevelFilter(pass func(slog.Level) bool, h slog.Handler) LevelFilter {
	return LevelFilter{pass: pass, h: h}
}

func (f LevelFilter) Enabled(ctx context.Context, level slog.Level) bool {
	return f.pass(level) && f.h.Enabled(ctx, level)
}

func (f LevelFilter) Handle(ctx context.Context, r slog.Record) error {
	if !f.pass(r.Level) {
		return nil
	}
	return f.h.Handle(ctx, r)
}

func (f LevelFilter) WithAttrs(attrs []slog.Attr) slog.Handler {
	return LevelFilter{pass: f.pass, h: f.h.WithAttrs(attrs)}
}

func (f LevelFilter) WithGroup(name string) slog.Handler {
	return LevelFilter{pass: f.pass, h: f.h.WithGroup(name)}
}

// NewConsoleHandler splits records between out (below error) and errOut.
func NewConsoleHandler(out, errOut io.Writer, level slog.Level) slog.Handler {
	return NewMultiHandler(
		NewLevelFilter(func(l slog.Level) bool { return l < slog.LevelError },
			slog.NewTextHandler(out, &slog.HandlerOptions{Level: level, ReplaceAttr: replaceLevel})),
		NewLevelFilter(func(l slog.Level) bool { return l >= slog.LevelError },
			slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level, ReplaceAttr: replaceLevel})),
	)
}

// SetupLogger builds a logger from cfg. The returned closers own any
// opened files.
func SetupLogger(cfg Config) (*slog.Logger, []io.Closer, error) {
	level := ParseLevel(cfg.Level)
	if cfg.File == "" {
		return slog.New(NewConsoleHandler(os.Stdout, os.Stderr, level)), nil, nil
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	opts := &slog.HandlerOptions{Level: level, ReplaceAttr: replaceLevel}
	logger := slog.New(NewMultiHandler(
		slog.NewTextHandler(os.Stderr, opts),
		slog.NewTextHandler(f, opts),
	))
	return logger, []io.Closer{f}, nil
}

// SetupRawLogger opens cfg.RawFile, or dumps to stdout at trace level.
func SetupRawLogger(cfg Config, logger *slog.Logger) (RawLogger, io.Closer) {
	if cfg.RawFile != "" {
		f, err := os.OpenFile(cfg.RawFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			logger.Error("failed to open raw log file", "file", cfg.RawFile, "error", err)
			return NewRaw(nil), nil
		}
		return NewRaw(f), f
	}
	if ParseLevel(cfg.Level) == LevelTrace {
		return NewRaw(os.Stdout), nil
	}
	return NewRaw(nil), nil
}

func replaceLevel(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		if l, ok := a.Value.Any().(slog.Level); ok && l == LevelTrace {
			a.Value = slog.StringValue("TRACE")
		}
	}
	return a
}
