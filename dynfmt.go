package dynfmt

import (
	"io"
	"strings"

	"github.com/goliatone/go-dynfmt/pkg/render"
	"github.com/goliatone/go-dynfmt/pkg/sink"
)

// BoundedBuffer renders into fixed, caller-owned memory; alias exported
// via the root package for convenience.
type BoundedBuffer = sink.BoundedBuffer

// CountingWriter tracks the bytes a render writes to a wrapped sink.
type CountingWriter = sink.CountingWriter

// ErrBufferFull is returned by BoundedBuffer once its space runs out.
var ErrBufferFull = sink.ErrBufferFull

// NewBoundedBuffer exposes the sink constructor from the top-level
// package.
func NewBoundedBuffer(buf []byte) *BoundedBuffer {
	return sink.NewBoundedBuffer(buf)
}

// NewCountingWriter exposes the sink constructor from the top-level
// package.
func NewCountingWriter(w io.Writer) *CountingWriter {
	return sink.NewCountingWriter(w)
}

// Render writes the rendered template to w in a single pass. Arguments
// may be referenced sequentially with "{}", by index with "{N}",
// repeatedly, or not at all. The only error condition is a failed
// write; the sink's error is returned as is and whatever was already
// written stands.
func Render(w io.Writer, template string, args ...any) error {
	return render.Render(w, template, args)
}

// Format renders the template to a new string. It is the simplest
// entry point for callers that just want text output.
func Format(template string, args ...any) string {
	var sb strings.Builder
	// strings.Builder writes cannot fail.
	_ = render.Render(&sb, template, args)
	return sb.String()
}

// Append renders the template and appends the output to dst, returning
// the extended slice in the manner of strconv's Append functions.
func Append(dst []byte, template string, args ...any) []byte {
	w := appendWriter{buf: dst}
	// appendWriter writes cannot fail.
	_ = render.Render(&w, template, args)
	return w.buf
}

type appendWriter struct {
	buf []byte
}

func (w *appendWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	return len(p), nil
}

func (w *appendWriter) WriteString(s string) (int, error) {
	w.buf = append(w.buf, s...)
	return len(s), nil
}
