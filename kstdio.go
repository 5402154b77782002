package kstdio

import "errors"

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidStream = errors.New("invalid stream")
	ErrWrite         = errors.New("write failed")
	ErrBadArgument   = errors.New("bad argument")
	ErrAllocFailed   = errors.New("allocation failed")
	ErrNotSeekable   = errors.New("stream not seekable")
)

// EOF is returned by [Stream.Getc] when no more data is available. It lies
// outside the byte range so it never collides with a real byte value.
const EOF = -1

// Flag is a set of conversion flags parsed from a directive.
type Flag uint8

const (
	FlagLeft   Flag = 1 << iota // '-'
	FlagPlus                    // '+'
	FlagSpace                   // ' '
	FlagAlt                     // '#'
	FlagZero                    // '0'
	FlagSigned                  // conversion is signed
	FlagUpper                   // uppercase hex digits and prefix
)

// flagChars maps each flag character to its bit, in bit order.
const flagChars = "-+ #0"

func flagFor(c byte) (Flag, bool) {
	for i := 0; i < len(flagChars); i++ {
		if flagChars[i] == c {
			return 1 << i, true
		}
	}
	return 0, false
}

// Size is the byte-width class an integer is truncated to before
// rendering or after parsing.
type Size uint8

const (
	Size8  Size = 1
	Size16 Size = 2
	Size32 Size = 4
	Size64 Size = 8
)

// narrow returns the next smaller class, stopping at Size8.
func (s Size) narrow() Size {
	switch s {
	case Size64:
		return Size32
	case Size32:
		return Size16
	default:
		return Size8
	}
}

// mask truncates n to the class width.
func (s Size) mask(n uint64) uint64 {
	if s >= Size64 {
		return n
	}
	return n & (1<<(8*uint(s)) - 1)
}

// signed reinterprets an already masked value as a two's complement
// integer of the class width.
func (s Size) signed(n uint64) int64 {
	switch s {
	case Size8:
		return int64(int8(n))
	case Size16:
		return int64(int16(n))
	case Size32:
		return int64(int32(n))
	default:
		return int64(n)
	}
}

func isSpace(c int) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c int) bool { return c >= '0' && c <= '9' }
