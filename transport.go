package kstdio

import (
	"errors"
	"io"
)

// --- Core Transport Interface ---

// Transport is the raw byte channel behind a descriptor-backed [Stream].
// Implementations are one-shot and never retry.
//
// Read returns the number of bytes read; zero or a negative count means no
// data or failure. Write returns the number of bytes written; a negative
// count means failure.
type Transport interface {
	Read(p []byte) int
	Write(p []byte) int
}

// --- Optional Interfaces ---

// Seeker repositions the transport. whence follows [io.SeekStart],
// [io.SeekCurrent] and [io.SeekEnd]. A negative result means failure.
type Seeker interface {
	Seek(offset int64, whence int) int64
}

// Closer releases the transport. A negative result means failure.
type Closer interface {
	Close() int
}

// IOTransport adapts standard io values to a [Transport]. Either side may
// be nil; operations on a nil side fail.
type IOTransport struct {
	R io.Reader
	W io.Writer
}

// Read implements [Transport]. io.EOF maps to 0, any other error to -1.
func (t IOTransport) Read(p []byte) int {
	if t.R == nil {
		return -1
	}
	n, err := t.R.Read(p)
	if n > 0 {
		return n
	}
	if err == nil || errors.Is(err, io.EOF) {
		return 0
	}
	return -1
}

// Write implements [Transport]. Any error maps to -1.
func (t IOTransport) Write(p []byte) int {
	if t.W == nil {
		return -1
	}
	n, err := t.W.Write(p)
	if err != nil {
		return -1
	}
	return n
}

// Seek implements [Seeker] when the reader or writer is an [io.Seeker].
func (t IOTransport) Seek(offset int64, whence int) int64 {
	var s io.Seeker
	if rs, ok := t.R.(io.Seeker); ok {
		s = rs
	} else if ws, ok := t.W.(io.Seeker); ok {
		s = ws
	}
	if s == nil {
		return -1
	}
	off, err := s.Seek(offset, whence)
	if err != nil {
		return -1
	}
	return off
}

// Close implements [Closer], closing each side that is an [io.Closer].
func (t IOTransport) Close() int {
	ret := 0
	if c, ok := t.R.(io.Closer); ok {
		if c.Close() != nil {
			ret = -1
		}
	}
	if c, ok := t.W.(io.Closer); ok && any(t.W) != any(t.R) {
		if c.Close() != nil {
			ret = -1
		}
	}
	return ret
}
