package kstdio_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/bjaus/kstdio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Test types: transports ---

// closeTracker counts Close calls on an io.ReadWriter.
type closeTracker struct {
	bytes.Buffer
	closed int
	err    error
}

func (c *closeTracker) Close() error {
	c.closed++
	return c.err
}

// failingReader always fails with a non-EOF error.
type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("read failed") }

// ============================================================
// Tests
// ============================================================

func TestReaderStreamGetc(t *testing.T) {
	t.Parallel()
	s := kstdio.NewReaderStream([]byte("ab"))
	assert.Equal(t, int('a'), s.Getc())
	assert.Equal(t, int('b'), s.Getc())
	assert.Equal(t, kstdio.EOF, s.Getc())
	assert.Equal(t, kstdio.EOF, s.Getc())
}

func TestUngetcHoldsOneByte(t *testing.T) {
	t.Parallel()
	s := kstdio.NewReaderStream([]byte("xyz"))
	assert.Equal(t, int('x'), s.Getc())
	s.Ungetc('a')
	s.Ungetc('b')
	assert.Equal(t, int('a'), s.Getc())
	assert.Equal(t, int('y'), s.Getc())
}

func TestUngetcEOF(t *testing.T) {
	t.Parallel()
	s := kstdio.NewReaderStream([]byte("x"))
	s.Ungetc(kstdio.EOF)
	assert.Equal(t, kstdio.EOF, s.Getc())
	assert.Equal(t, int('x'), s.Getc())
}

func TestUngetcZeroByte(t *testing.T) {
	t.Parallel()
	s := kstdio.NewReaderStream(nil)
	s.Ungetc(0)
	assert.Equal(t, 0, s.Getc())
	assert.Equal(t, kstdio.EOF, s.Getc())
}

func TestBufferStreamPutc(t *testing.T) {
	t.Parallel()
	s := kstdio.NewBufferStream(make([]byte, 4))
	for _, c := range []byte("12345") {
		require.NoError(t, s.Putc(c))
	}
	assert.Equal(t, "1234", string(s.Bytes()))
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 4, s.Cap())
	assert.True(t, s.Truncated())
}

func TestBufferStreamTerminateFull(t *testing.T) {
	t.Parallel()
	buf := []byte("....")
	s := kstdio.NewBufferStream(buf)
	_, err := kstdio.Fprintf(s, "abcd")
	require.NoError(t, err)
	s.Terminate()
	assert.Equal(t, "abcd", string(buf))
	assert.False(t, s.Truncated())
}

func TestInvalidStream(t *testing.T) {
	t.Parallel()
	for name, s := range map[string]*kstdio.Stream{
		"zero":          {},
		"nil transport": kstdio.NewStream(nil),
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, kstdio.EOF, s.Getc())
			require.ErrorIs(t, s.Putc('x'), kstdio.ErrInvalidStream)
			require.ErrorIs(t, s.Close(), kstdio.ErrInvalidStream)
			_, err := s.Tell()
			require.ErrorIs(t, err, kstdio.ErrInvalidStream)
		})
	}
}

func TestTransportStream(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	s := kstdio.NewStream(kstdio.IOTransport{R: strings.NewReader("ab"), W: &out})
	assert.Equal(t, int('a'), s.Getc())
	assert.Equal(t, int('b'), s.Getc())
	assert.Equal(t, kstdio.EOF, s.Getc())
	require.NoError(t, s.Putc('z'))
	assert.Equal(t, "z", out.String())
}

func TestTransportStreamFailures(t *testing.T) {
	t.Parallel()
	s := kstdio.NewStream(kstdio.IOTransport{R: failingReader{}, W: &errWriter{}})
	assert.Equal(t, kstdio.EOF, s.Getc())
	require.ErrorIs(t, s.Putc('z'), kstdio.ErrWrite)

	// A missing side fails the same way.
	s = kstdio.NewStream(kstdio.IOTransport{})
	assert.Equal(t, kstdio.EOF, s.Getc())
	require.ErrorIs(t, s.Putc('z'), kstdio.ErrWrite)
}

func TestIOTransportCounts(t *testing.T) {
	t.Parallel()
	tr := kstdio.IOTransport{R: strings.NewReader("abc"), W: &errWriter{}}
	p := make([]byte, 2)
	assert.Equal(t, 2, tr.Read(p))
	assert.Equal(t, 1, tr.Read(p))
	assert.Equal(t, 0, tr.Read(p))
	assert.Equal(t, -1, tr.Write(p))
	assert.Equal(t, -1, kstdio.IOTransport{R: failingReader{}}.Read(p))
}

func TestSeekMemory(t *testing.T) {
	t.Parallel()
	s := kstdio.NewReaderStream([]byte("abcdef"))
	s.Getc()
	s.Getc()
	pos, err := s.Tell()
	require.NoError(t, err)
	assert.Equal(t, int64(2), pos)

	s.Ungetc('b')
	pos, err = s.Tell()
	require.NoError(t, err)
	assert.Equal(t, int64(1), pos)
	assert.Equal(t, int('b'), s.Getc())

	pos, err = s.Seek(-1, io.SeekEnd)
	require.NoError(t, err)
	assert.Equal(t, int64(5), pos)
	assert.Equal(t, int('f'), s.Getc())

	_, err = s.Seek(7, io.SeekStart)
	require.ErrorIs(t, err, kstdio.ErrBadArgument)
	_, err = s.Seek(0, 42)
	require.ErrorIs(t, err, kstdio.ErrBadArgument)
}

func TestSeekOutputBufferRewinds(t *testing.T) {
	t.Parallel()
	s := kstdio.NewBufferStream(make([]byte, 8))
	_, err := kstdio.Fprintf(s, "hello")
	require.NoError(t, err)
	_, err = s.Seek(1, io.SeekStart)
	require.NoError(t, err)
	_, err = kstdio.Fprintf(s, "ipp")
	require.NoError(t, err)
	assert.Equal(t, "hipp", string(s.Bytes()))
}

func TestSeekTransport(t *testing.T) {
	t.Parallel()
	s := kstdio.NewStream(kstdio.IOTransport{R: strings.NewReader("abc")})
	assert.Equal(t, int('a'), s.Getc())
	assert.Equal(t, int('b'), s.Getc())
	s.Ungetc('b')
	pos, err := s.Tell()
	require.NoError(t, err)
	assert.Equal(t, int64(1), pos)
	assert.Equal(t, int('b'), s.Getc())

	var buf bytes.Buffer
	_, err = kstdio.NewStream(kstdio.IOTransport{W: &buf}).Tell()
	require.ErrorIs(t, err, kstdio.ErrNotSeekable)
}

func TestSeekTransportWithoutSeeker(t *testing.T) {
	t.Parallel()
	s := kstdio.NewStream(writeOnly{})
	_, err := s.Seek(0, io.SeekStart)
	require.ErrorIs(t, err, kstdio.ErrNotSeekable)
	require.NoError(t, s.Close())
}

// writeOnly is a bare Transport with no optional interfaces.
type writeOnly struct{}

func (writeOnly) Read([]byte) int    { return 0 }
func (writeOnly) Write(p []byte) int { return len(p) }

func TestCloseTransport(t *testing.T) {
	t.Parallel()
	c := &closeTracker{}
	s := kstdio.NewStream(kstdio.IOTransport{R: c, W: c})
	require.NoError(t, s.Close())
	assert.Equal(t, 1, c.closed)

	c.err = errors.New("busy")
	require.Error(t, s.Close())
	require.NoError(t, kstdio.NewReaderStream(nil).Close())
}

// --- Allocation ---

func TestBumpAllocator(t *testing.T) {
	t.Parallel()
	a := kstdio.NewBumpAllocator(make([]byte, 8))
	p := a.Allocate(5)
	require.Len(t, p, 5)
	assert.Nil(t, a.Allocate(4))
	q := a.Allocate(3)
	require.Len(t, q, 3)
	assert.Equal(t, 8, a.Used())

	a.Free()
	assert.Equal(t, 8, a.Used())
	a.Free()
	assert.Zero(t, a.Used())
	a.Free()
	assert.Zero(t, a.Used())
	assert.Nil(t, a.Allocate(-1))
}

func TestBumpAllocationsDoNotOverlap(t *testing.T) {
	t.Parallel()
	a := kstdio.NewBumpAllocator(make([]byte, 4))
	p := a.Allocate(2)
	q := a.Allocate(2)
	p = append(p, 'x')
	assert.Equal(t, []byte{0, 0}, q, "append on p must not spill into q")
	assert.Len(t, p, 3)
}

func TestOwnedBufferStream(t *testing.T) {
	t.Parallel()
	a := kstdio.NewBumpAllocator(make([]byte, 8))
	s, err := kstdio.NewOwnedBufferStream(a, 6)
	require.NoError(t, err)
	_, err = kstdio.Fprintf(s, "%d-%d", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "1-2", string(s.Bytes()))
	assert.Equal(t, 6, s.Cap())

	_, err = kstdio.NewOwnedBufferStream(a, 6)
	require.ErrorIs(t, err, kstdio.ErrAllocFailed)

	_, err = kstdio.NewOwnedBufferStream(kstdio.HeapAllocator{}, -1)
	require.ErrorIs(t, err, kstdio.ErrAllocFailed)
}

// --- Unformatted helpers ---

func TestPutsAndFputs(t *testing.T) {
	t.Parallel()
	s := kstdio.NewBufferStream(make([]byte, 16))
	n, err := kstdio.Fputs(s, "ab")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	n, err = kstdio.Puts(s, "cd")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "abcd\n", string(s.Bytes()))
}

func TestPutsWriteFailure(t *testing.T) {
	t.Parallel()
	for n := range 3 {
		w := &failAfterN{n: n}
		got, err := kstdio.Puts(kstdio.NewStream(kstdio.IOTransport{W: w}), "ab")
		require.ErrorIs(t, err, kstdio.ErrWrite, "n=%d", n)
		assert.Equal(t, n, got)
	}
}

func TestFwriteFread(t *testing.T) {
	t.Parallel()
	w := &failAfterN{n: 2}
	n, err := kstdio.Fwrite(kstdio.NewStream(kstdio.IOTransport{W: w}), []byte("abc"))
	require.ErrorIs(t, err, kstdio.ErrWrite)
	assert.Equal(t, 2, n)

	out := kstdio.NewBufferStream(make([]byte, 4))
	n, err = kstdio.Fwrite(out, []byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	in := kstdio.NewReaderStream([]byte("hello"))
	p := make([]byte, 3)
	assert.Equal(t, 3, kstdio.Fread(in, p))
	assert.Equal(t, "hel", string(p))
	assert.Equal(t, 2, kstdio.Fread(in, p))
	assert.Equal(t, "lo", string(p[:2]))
	assert.Zero(t, kstdio.Fread(in, p))
}

func TestPerror(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		msg  string
		err  error
		want string
	}{
		"with message": {msg: "open", err: errors.New("boom"), want: "open: boom\n"},
		"bare":         {err: errors.New("boom"), want: "boom\n"},
		"nil error":    {msg: "x", want: "x: <nil>\n"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			s := kstdio.NewBufferStream(make([]byte, 32))
			require.NoError(t, kstdio.Perror(s, tt.msg, tt.err))
			assert.Equal(t, tt.want, string(s.Bytes()))
		})
	}
}

func TestPerrorWriteFailure(t *testing.T) {
	t.Parallel()
	s := kstdio.NewStream(kstdio.IOTransport{W: &errWriter{}})
	err := kstdio.Perror(s, "x", errors.New("y"))
	require.ErrorIs(t, err, kstdio.ErrWrite)
}
