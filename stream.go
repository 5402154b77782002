package kstdio

import (
	"fmt"
	"io"
	"log/slog"
)

type streamKind uint8

const (
	kindNone streamKind = iota
	kindTransport
	kindOutput
	kindInput
)

// Stream is a byte source or sink with one byte of pushback. It is backed
// by exactly one of a [Transport], a fixed-capacity output buffer or a
// read-only input region. Both engines are written purely in terms of
// [Stream.Getc], [Stream.Ungetc] and [Stream.Putc].
//
// A zero Stream is invalid: Getc reports [EOF] and Putc fails with
// [ErrInvalidStream]. A Stream is not safe for concurrent use.
type Stream struct {
	kind streamKind
	t    Transport

	obuf      []byte
	olen      int
	truncated bool

	ibuf []byte
	icur int

	back    int
	hasBack bool

	log *slog.Logger
}

// Option configures a [Stream].
type Option func(*Stream)

// WithLogger reports transport failures to l at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(s *Stream) {
		if l != nil {
			s.log = l
		}
	}
}

func newStream(kind streamKind, opts []Option) *Stream {
	s := &Stream{kind: kind, log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewStream returns a Stream over t. A nil t yields an invalid Stream.
func NewStream(t Transport, opts ...Option) *Stream {
	if t == nil {
		return newStream(kindNone, opts)
	}
	s := newStream(kindTransport, opts)
	s.t = t
	return s
}

// NewBufferStream returns an output Stream that records at most len(buf)
// bytes into buf. Bytes beyond capacity are dropped silently.
func NewBufferStream(buf []byte, opts ...Option) *Stream {
	s := newStream(kindOutput, opts)
	s.obuf = buf
	return s
}

// NewReaderStream returns an input Stream over data. data is not copied
// and must not change while the Stream is in use.
func NewReaderStream(data []byte, opts ...Option) *Stream {
	s := newStream(kindInput, opts)
	s.ibuf = data
	return s
}

// NewOwnedBufferStream returns an output Stream whose n-byte buffer comes
// from a.
func NewOwnedBufferStream(a Allocator, n int, opts ...Option) (*Stream, error) {
	buf := a.Allocate(n)
	if buf == nil {
		return nil, fmt.Errorf("%w: %d bytes", ErrAllocFailed, n)
	}
	return NewBufferStream(buf[:n:n], opts...), nil
}

// Getc returns the next byte, or [EOF] when no more data is available. A
// pending pushback is returned first.
func (s *Stream) Getc() int {
	if s.hasBack {
		s.hasBack = false
		return s.back
	}
	switch s.kind {
	case kindInput:
		if s.icur >= len(s.ibuf) {
			return EOF
		}
		c := s.ibuf[s.icur]
		s.icur++
		return int(c)
	case kindTransport:
		var b [1]byte
		if n := s.t.Read(b[:]); n <= 0 {
			if n < 0 {
				s.log.Debug("transport read failed", "result", n)
			}
			return EOF
		}
		return int(b[0])
	default:
		return EOF
	}
}

// Ungetc pushes c back so the next Getc returns it. c may be [EOF]. Only
// one byte is held: if the cell is already occupied the call is ignored.
func (s *Stream) Ungetc(c int) {
	if s.hasBack {
		return
	}
	s.back = c
	s.hasBack = true
}

// Putc emits one byte. On a buffer-backed Stream it never fails; bytes past
// capacity are dropped and [Stream.Truncated] starts reporting true.
func (s *Stream) Putc(c byte) error {
	switch s.kind {
	case kindOutput:
		if s.olen < len(s.obuf) {
			s.obuf[s.olen] = c
			s.olen++
		} else {
			s.truncated = true
		}
		return nil
	case kindTransport:
		b := [1]byte{c}
		if n := s.t.Write(b[:]); n < 0 {
			s.log.Debug("transport write failed", "result", n)
			return ErrWrite
		}
		return nil
	default:
		return ErrInvalidStream
	}
}

// Bytes returns the bytes recorded by an output buffer Stream.
func (s *Stream) Bytes() []byte {
	return s.obuf[:s.olen]
}

// Len returns the number of bytes recorded by an output buffer Stream.
func (s *Stream) Len() int { return s.olen }

// Cap returns the capacity of an output buffer Stream.
func (s *Stream) Cap() int { return len(s.obuf) }

// Truncated reports whether an output buffer Stream dropped bytes.
func (s *Stream) Truncated() bool { return s.truncated }

// Terminate writes a NUL byte after the recorded output when the buffer has
// room for it. It does not advance the recorded length.
func (s *Stream) Terminate() {
	if s.kind == kindOutput && s.olen < len(s.obuf) {
		s.obuf[s.olen] = 0
	}
}

// Tell returns the current position, accounting for a pending pushback.
func (s *Stream) Tell() (int64, error) {
	return s.Seek(0, io.SeekCurrent)
}

// Seek repositions the Stream and discards any pending pushback. On memory
// backings an offset outside the backing fails.
func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	pending := int64(0)
	if s.hasBack && s.back != EOF {
		pending = 1
	}
	switch s.kind {
	case kindInput, kindOutput:
		cur, size := int64(s.icur), int64(len(s.ibuf))
		if s.kind == kindOutput {
			cur, size = int64(s.olen), int64(len(s.obuf))
		}
		var pos int64
		switch whence {
		case io.SeekStart:
			pos = offset
		case io.SeekCurrent:
			pos = cur - pending + offset
		case io.SeekEnd:
			pos = size + offset
		default:
			return -1, fmt.Errorf("%w: whence %d", ErrBadArgument, whence)
		}
		if pos < 0 || pos > size {
			return -1, fmt.Errorf("%w: offset %d outside [0, %d]", ErrBadArgument, pos, size)
		}
		if s.kind == kindOutput {
			s.olen = int(pos)
		} else {
			s.icur = int(pos)
		}
		s.hasBack = false
		return pos, nil
	case kindTransport:
		sk, ok := s.t.(Seeker)
		if !ok {
			return -1, ErrNotSeekable
		}
		if whence == io.SeekCurrent {
			offset -= pending
		}
		off := sk.Seek(offset, whence)
		if off < 0 {
			s.log.Debug("transport seek failed", "offset", offset, "whence", whence)
			return -1, fmt.Errorf("%w: seek failed", ErrNotSeekable)
		}
		s.hasBack = false
		return off, nil
	default:
		return -1, ErrInvalidStream
	}
}

// Close closes the underlying transport when it implements [Closer]. Memory
// backed Streams have nothing to release.
func (s *Stream) Close() error {
	switch s.kind {
	case kindTransport:
		if c, ok := s.t.(Closer); ok && c.Close() < 0 {
			return fmt.Errorf("%w: close failed", ErrInvalidStream)
		}
		return nil
	case kindNone:
		return ErrInvalidStream
	default:
		return nil
	}
}
