package sink_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-dynfmt/pkg/sink"
)

func TestBoundedBufferWrite(t *testing.T) {
	b := sink.NewBoundedBuffer(make([]byte, 8))

	n, err := b.Write([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, 5, b.Available())

	n, err = b.Write([]byte("defgh"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "abcdefgh", b.String())
	assert.Equal(t, 0, b.Available())
}

func TestBoundedBufferPartialWrite(t *testing.T) {
	b := sink.NewBoundedBuffer(make([]byte, 4))

	n, err := b.Write([]byte("abcdef"))
	require.ErrorIs(t, err, sink.ErrBufferFull)
	assert.Equal(t, 4, n, "the prefix that fits must be stored")
	assert.Equal(t, "abcd", b.String())

	n, err = b.Write([]byte("x"))
	require.ErrorIs(t, err, sink.ErrBufferFull)
	assert.Equal(t, 0, n)

	n, err = b.Write(nil)
	require.NoError(t, err, "empty writes succeed even when full")
	assert.Equal(t, 0, n)
}

func TestBoundedBufferWriteString(t *testing.T) {
	b := sink.NewBoundedBuffer(make([]byte, 5))

	n, err := b.WriteString("hi")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = b.WriteString("there")
	require.ErrorIs(t, err, sink.ErrBufferFull)
	assert.Equal(t, 3, n)
	assert.Equal(t, "hithe", b.String())
}

func TestBoundedBufferReset(t *testing.T) {
	buf := make([]byte, 3)
	b := sink.NewBoundedBuffer(buf)

	_, err := b.WriteString("abc")
	require.NoError(t, err)

	b.Reset()
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 3, b.Available())

	_, err = b.WriteString("xyz")
	require.NoError(t, err)
	assert.Equal(t, "xyz", b.String())
	assert.Equal(t, []byte("xyz"), buf, "writes land in the caller's buffer")
}

func TestBoundedBufferZeroValue(t *testing.T) {
	var b sink.BoundedBuffer

	n, err := b.Write([]byte("a"))
	require.ErrorIs(t, err, sink.ErrBufferFull)
	assert.Equal(t, 0, n)
	assert.Equal(t, 0, b.Len())
	assert.Empty(t, b.Bytes())
}

func TestCountingWriter(t *testing.T) {
	var out bytes.Buffer
	c := sink.NewCountingWriter(&out)

	n, err := c.Write([]byte("hello "))
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	_, err = c.WriteString("world")
	require.NoError(t, err)

	assert.Equal(t, int64(11), c.N())
	assert.Equal(t, "hello world", out.String())
}

func TestCountingWriterPropagatesError(t *testing.T) {
	errBroken := errors.New("broken pipe")
	c := sink.NewCountingWriter(writerFunc(func(p []byte) (int, error) {
		return 2, errBroken
	}))

	n, err := c.Write([]byte("abcdef"))
	require.ErrorIs(t, err, errBroken)
	assert.Equal(t, 2, n)
	assert.Equal(t, int64(2), c.N(), "only bytes the writer accepted are counted")
}

func TestCountingWriterStringFallback(t *testing.T) {
	// strings.Builder has WriteString; the plain writerFunc does not.
	var sb strings.Builder
	c := sink.NewCountingWriter(&sb)
	_, err := c.WriteString("via builder")
	require.NoError(t, err)
	assert.Equal(t, int64(len("via builder")), c.N())

	var raw bytes.Buffer
	plain := sink.NewCountingWriter(writerFunc(raw.Write))
	_, err = plain.WriteString("via copy")
	require.NoError(t, err)
	assert.Equal(t, "via copy", raw.String())
}

type writerFunc func(p []byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) {
	return f(p)
}
