package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"sshident/internal/settings"
)

// Options describes logger construction parameters.
type Options struct {
	Level     settings.LogLevel
	BatchMode bool
	Output    io.Writer
	ErrOutput io.Writer
}

// New constructs a logger honoring the given verbosity. Batch mode returns a
// no-op logger: a wrapper must stay silent when the wrapped tool is driven
// non-interactively.
func New(opts Options) *slog.Logger {
	if opts.BatchMode {
		return NewNop()
	}
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	errOut := opts.ErrOutput
	if errOut == nil {
		errOut = os.Stderr
	}
	level := opts.Level
	if level == 0 {
		level = settings.LevelInfo
	}
	handler := &consoleHandler{
		out:    out,
		errOut: errOut,
		min:    slogLevel(level),
		runID:  uuid.NewString()[:8],
		mu:     &sync.Mutex{},
	}
	return slog.New(handler)
}

// NewFromStore builds a logger from the resolved VERBOSITY and
// SSH_BATCH_MODE settings.
func NewFromStore(store *settings.Store) (*slog.Logger, error) {
	verbosity, err := store.Value(settings.Verbosity)
	if err != nil {
		return nil, err
	}
	batch, err := store.Value(settings.SSHBatchMode)
	if err != nil {
		return nil, err
	}
	return New(Options{
		Level:     settings.LogLevel(verbosity.IntVal()),
		BatchMode: batch.BoolVal(),
	}), nil
}

// NewNop returns a logger that discards every record.
func NewNop() *slog.Logger {
	return slog.New(nopHandler{})
}

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (h nopHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h nopHandler) WithGroup(string) slog.Handler           { return h }

func slogLevel(level settings.LogLevel) slog.Level {
	switch level {
	case settings.LevelError:
		return slog.LevelError
	case settings.LevelWarn:
		return slog.LevelWarn
	case settings.LevelDebug:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

var (
	errorPrefix = color.New(color.FgRed).Sprint("[ERROR] ")
	warnPrefix  = color.New(color.FgYellow).Sprint("[Warn] ")
	debugPrefix = color.New(color.FgCyan).Sprint("[debug] ")
)

// consoleHandler writes human-oriented lines: errors to the error writer,
// everything else to the standard writer. Info lines carry no prefix.
type consoleHandler struct {
	out    io.Writer
	errOut io.Writer
	min    slog.Level
	runID  string
	attrs  []slog.Attr
	group  string
	mu     *sync.Mutex
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.min
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder

	switch {
	case record.Level >= slog.LevelError:
		b.WriteString(errorPrefix)
	case record.Level >= slog.LevelWarn:
		b.WriteString(warnPrefix)
	case record.Level < slog.LevelInfo:
		b.WriteString(debugPrefix)
	}

	b.WriteString(record.Message)

	for _, attr := range h.attrs {
		h.writeAttr(&b, attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		h.writeAttr(&b, attr)
		return true
	})

	if record.Level < slog.LevelInfo {
		// Correlate debug output from one invocation.
		b.WriteString(" run=")
		b.WriteString(h.runID)
	}
	b.WriteByte('\n')

	writer := h.out
	if record.Level >= slog.LevelError {
		writer = h.errOut
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(writer, b.String())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	clone := *h
	if clone.group != "" {
		clone.group += "."
	}
	clone.group += name
	return &clone
}

func (h *consoleHandler) writeAttr(b *strings.Builder, attr slog.Attr) {
	if attr.Equal(slog.Attr{}) {
		return
	}
	b.WriteByte(' ')
	if h.group != "" {
		b.WriteString(h.group)
		b.WriteByte('.')
	}
	b.WriteString(attr.Key)
	b.WriteByte('=')
	b.WriteString(formatValue(attr.Value))
}

func formatValue(v slog.Value) string {
	v = v.Resolve()
	switch v.Kind() {
	case slog.KindString:
		s := v.String()
		if strings.ContainsAny(s, " =\"") || s == "" {
			return strconv.Quote(s)
		}
		return s
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			return strconv.Quote(err.Error())
		}
		return fmt.Sprint(v.Any())
	default:
		return v.String()
	}
}
