package kstdio

const (
	digitsLower = "0123456789abcdef"
	digitsUpper = "0123456789ABCDEF"
)

// emitter counts emit operations on a Stream and latches the first
// failure. Once failed it drops everything so callers can check once at a
// directive boundary.
type emitter struct {
	s   *Stream
	n   int
	err error
}

func (e *emitter) put(c byte) {
	if e.err != nil {
		return
	}
	if err := e.s.Putc(c); err != nil {
		e.err = err
		return
	}
	e.n++
}

func (e *emitter) pad(c byte, n int) {
	for ; n > 0; n-- {
		e.put(c)
	}
}

// renderInt emits n in base with the sign, prefix and padding policy
// described by flags. n is first truncated to size; with FlagSigned the
// truncated value is read as two's complement.
func renderInt(e *emitter, n uint64, base, width int, size Size, flags Flag) {
	n = size.mask(n)

	var sign byte
	prefix := 0
	if flags&FlagSigned != 0 {
		if v := size.signed(n); v < 0 {
			sign = '-'
			n = uint64(-v)
		} else if flags&FlagPlus != 0 {
			sign = '+'
		} else if flags&FlagSpace != 0 {
			sign = ' '
		}
		if sign != 0 {
			prefix = 1
		}
	} else if n > 0 && flags&FlagAlt != 0 {
		prefix = 1
		if base == 16 {
			prefix = 2
		}
	}

	digs := digitsLower
	if flags&FlagUpper != 0 {
		digs = digitsUpper
	}
	var buf [64]byte
	i := len(buf)
	b := uint64(base)
	for {
		i--
		buf[i] = digs[n%b]
		n /= b
		if n == 0 {
			break
		}
	}
	digits := buf[i:]

	fill := width - len(digits) - prefix
	left := flags&FlagLeft != 0
	zero := flags&FlagZero != 0 && !left

	if !left && !zero {
		e.pad(' ', fill)
	}
	if sign != 0 {
		e.put(sign)
	} else if prefix > 0 {
		e.put('0')
		if base == 16 {
			if flags&FlagUpper != 0 {
				e.put('X')
			} else {
				e.put('x')
			}
		}
	}
	if zero {
		e.pad('0', fill)
	}
	for _, c := range digits {
		e.put(c)
	}
	if left {
		e.pad(' ', fill)
	}
}

// renderString emits s verbatim, space padded to width on the side
// opposite the justification. s is never truncated.
func renderString(e *emitter, s string, width int, left bool) {
	fill := width - len(s)
	if !left {
		e.pad(' ', fill)
	}
	for i := 0; i < len(s); i++ {
		e.put(s[i])
	}
	if left {
		e.pad(' ', fill)
	}
}
