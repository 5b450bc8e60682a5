// Package sink provides io.Writer implementations tuned for rendering:
// a bounded buffer over caller-owned memory and a byte-counting
// wrapper. Both implement io.StringWriter so literal template spans are
// written without a byte-slice conversion.
package sink

import (
	"errors"
	"io"
)

// ErrBufferFull is returned by BoundedBuffer once its backing buffer
// has no room left. The write that crosses the boundary stores the
// prefix that fits before reporting the error.
var ErrBufferFull = errors.New("sink: buffer full")

// BoundedBuffer writes into a fixed, caller-provided byte slice. It
// never grows and never allocates; when the slice is full every write
// fails with ErrBufferFull. The zero value has no capacity and rejects
// all non-empty writes.
type BoundedBuffer struct {
	buf []byte
	n   int
}

// NewBoundedBuffer returns a BoundedBuffer writing into buf. The
// buffer's length, not its capacity, bounds the writable space.
func NewBoundedBuffer(buf []byte) *BoundedBuffer {
	return &BoundedBuffer{buf: buf}
}

// Write stores p, or the prefix of p that fits. The returned count is
// the number of bytes stored; it is short exactly when the error is
// ErrBufferFull.
func (b *BoundedBuffer) Write(p []byte) (int, error) {
	n := copy(b.buf[b.n:], p)
	b.n += n
	if n < len(p) {
		return n, ErrBufferFull
	}
	return n, nil
}

// WriteString stores s, or the prefix of s that fits.
func (b *BoundedBuffer) WriteString(s string) (int, error) {
	n := copy(b.buf[b.n:], s)
	b.n += n
	if n < len(s) {
		return n, ErrBufferFull
	}
	return n, nil
}

// Len reports how many bytes have been stored.
func (b *BoundedBuffer) Len() int {
	return b.n
}

// Available reports how many bytes of room remain.
func (b *BoundedBuffer) Available() int {
	return len(b.buf) - b.n
}

// Bytes returns the stored bytes. The slice aliases the backing buffer
// and stays valid until the next Write or Reset.
func (b *BoundedBuffer) Bytes() []byte {
	return b.buf[:b.n]
}

// String returns the stored bytes as a string.
func (b *BoundedBuffer) String() string {
	return string(b.buf[:b.n])
}

// Reset forgets the stored bytes, making the full buffer writable
// again.
func (b *BoundedBuffer) Reset() {
	b.n = 0
}

// CountingWriter forwards writes to an underlying writer and tracks
// the total number of bytes successfully written.
type CountingWriter struct {
	w io.Writer
	n int64
}

// NewCountingWriter returns a CountingWriter wrapping w.
func NewCountingWriter(w io.Writer) *CountingWriter {
	return &CountingWriter{w: w}
}

// Write forwards p to the underlying writer.
func (c *CountingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// WriteString forwards s, using the underlying writer's WriteString
// when it has one.
func (c *CountingWriter) WriteString(s string) (int, error) {
	n, err := io.WriteString(c.w, s)
	c.n += int64(n)
	return n, err
}

// N reports the total bytes written so far.
func (c *CountingWriter) N() int64 {
	return c.n
}
