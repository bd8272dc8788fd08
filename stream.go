// Package streamformat pumps Claude Code stream-json lines through the
// display formatter. It is the glue between a line-oriented input
// stream and the render package: read a line, parse it, print whatever
// it formats to, repeat until the stream closes.
package streamformat

import (
	"bufio"
	"context"
	"io"
	"log/slog"

	"github.com/jemmyw/claude-stream-format/protocol"
	"github.com/jemmyw/claude-stream-format/render"
)

// Scanner buffer sizing: tool results routinely push lines past the
// default 64KB token limit.
const (
	initialBufSize = 64 * 1024
	maxLineSize    = 2 * 1024 * 1024
)

// nopHandler is a slog.Handler that discards all output.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (h nopHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h nopHandler) WithGroup(string) slog.Handler           { return h }

// nopLogger drops everything. The pump never surfaces diagnostics to
// the user unless a caller injects a logger.
var nopLogger = slog.New(nopHandler{})

// Pump drives the read-parse-format-print loop.
type Pump struct {
	log *slog.Logger
}

// Option configures a Pump.
type Option func(*Pump)

// WithLogger sets a logger for skipped-line diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(p *Pump) {
		if log != nil {
			p.log = log
		}
	}
}

// NewPump creates a pump with the given options.
func NewPump(opts ...Option) *Pump {
	p := &Pump{log: nopLogger}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run copies formatted lines from in to out until in is exhausted.
// Each emitted line is flushed immediately so output keeps pace with a
// long-running upstream producer. Empty and unparseable input lines are
// skipped; read failures end the stream quietly. Run never reports an
// error to the caller by design: a display filter has nothing useful to
// do with one beyond stopping.
func (p *Pump) Run(in io.Reader, out io.Writer) {
	w := bufio.NewWriter(out)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, initialBufSize), maxLineSize)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		msg, err := protocol.ParseMessage(line)
		if err != nil {
			p.log.Debug("skipping unparseable line", "error", err)
			continue
		}
		if msg == nil {
			continue // unknown message type
		}

		for _, formatted := range render.Message(msg) {
			if _, err := w.WriteString(formatted + "\n"); err != nil {
				return
			}
			if err := w.Flush(); err != nil {
				return
			}
		}
	}

	if err := scanner.Err(); err != nil {
		p.log.Debug("input stream ended with error", "error", err)
	}
}

// Run pumps in to out with default options.
func Run(in io.Reader, out io.Writer, opts ...Option) {
	NewPump(opts...).Run(in, out)
}
