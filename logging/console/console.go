// Package console implements the default logging output handler of
// spec.md §4.9.5: a growable-buffer formatter that colourizes each record
// by severity and writes it to a configured stream with a single write
// call.
//
// Importing this package registers it as logging's default output handler
// factory via an init func; a binary that wants console output on
// logging.Initialize need only blank-import this package:
//
//	import _ "github.com/lattica-robotics/rcutils-go/logging/console"
package console

import (
	"io"
	"os"
	"sync"

	"github.com/lattica-robotics/rcutils-go/allocator"
	"github.com/lattica-robotics/rcutils-go/container/bytebuffer"
	"github.com/lattica-robotics/rcutils-go/logging"
	"github.com/mattn/go-isatty"
)

// ansi escape sequences per severity. Windows terminals from Windows 10
// onward interpret these through the console host's virtual-terminal
// support, so this handler does not need a separate
// SetConsoleTextAttribute code path.
const (
	ansiReset  = "\033[0m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiRed    = "\033[31m"
)

func init() {
	logging.RegisterDefaultOutputHandler(func(stream io.Writer, mode logging.ColorMode, alloc allocator.Allocator) logging.OutputHandler {
		return NewHandler(stream, mode, alloc).Handle
	})
}

func colorFor(severity logging.Level) string {
	switch severity {
	case logging.Debug:
		return ansiGreen
	case logging.Warn:
		return ansiYellow
	case logging.Error, logging.Fatal:
		return ansiRed
	default:
		return ""
	}
}

// Handler is a logging.OutputHandler that renders records through the
// process's compiled format template, colourizes them, and writes them to
// Stream with one Write call per record. The zero value is not usable;
// construct with NewHandler.
type Handler struct {
	Stream    io.Writer
	ColorMode logging.ColorMode
	Alloc     allocator.Allocator

	mu  sync.Mutex
	buf *bytebuffer.ByteArray
}

// NewHandler returns a Handler writing to stream, using alloc to back its
// per-call growable buffer. A nil alloc uses the runtime allocator.
func NewHandler(stream io.Writer, mode logging.ColorMode, alloc allocator.Allocator) *Handler {
	return &Handler{
		Stream:    stream,
		ColorMode: mode,
		Alloc:     alloc,
		buf:       bytebuffer.NewByteArray(1024, alloc),
	}
}

// Handle renders r and writes it to h.Stream. It implements
// logging.OutputHandler's func(Record) signature via the method value
// h.Handle.
func (h *Handler) Handle(r logging.Record) {
	if r.Severity.String() == "" {
		os.Stderr.WriteString("logging: console handler: unknown severity\n")
		return
	}

	line := logging.FormatMessage(r)
	colorize := h.shouldColorize()

	h.mu.Lock()
	defer h.mu.Unlock()

	var out []byte
	if colorize {
		if c := colorFor(r.Severity); c != "" {
			out = append(out, c...)
			out = append(out, line...)
			out = append(out, ansiReset...)
		} else {
			out = append(out, line...)
		}
	} else {
		out = append(out, line...)
	}
	out = append(out, '\n')

	_ = h.buf.Memcpy(out)
	h.Stream.Write(h.buf.Bytes()) //nolint:errcheck // matches the original's fire-and-forget fputs
}

func (h *Handler) shouldColorize() bool {
	switch h.ColorMode {
	case logging.ForceColor:
		return true
	case logging.ForceNoColor:
		return false
	default:
		if f, ok := h.Stream.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
