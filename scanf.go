package kstdio

// Vfscanf parses input from s against format, storing values through the
// destinations in args. It returns the number of directives that bound a
// value.
//
// A literal mismatch, end of data, or a directive it does not support ends
// the pass early; none of these is an error, they only shorten the count.
// The error is reserved for destinations that are missing or of the wrong
// type.
//
// Runs of template whitespace collapse to one, and input whitespace is
// skipped before every literal and directive. Supported directives are
// %d, %u and %s with an optional decimal width and l/h modifiers.
func Vfscanf(s *Stream, format string, args *Args) (int, error) {
	matched := 0
	i := 0
	for {
		sawSpace := false
		for i < len(format) && isSpace(int(format[i])) {
			sawSpace = true
			i++
		}
		if i == len(format) {
			if sawSpace {
				skipSpace(s)
			}
			return matched, nil
		}
		skipSpace(s)

		c := format[i]
		i++
		if c != '%' {
			if got := s.Getc(); got != int(c) {
				s.Ungetc(got)
				return matched, nil
			}
			continue
		}

		width := 0
		for i < len(format) && isDigit(int(format[i])) {
			width = width*10 + int(format[i]-'0')
			i++
		}
		size := Size32
		i = parseSize(format, i, &size)
		if i == len(format) {
			return matched, nil
		}
		verb := format[i]
		i++

		switch verb {
		case 'd', 'u':
			dst, err := args.nextIntDest(verb)
			if err != nil {
				return matched, err
			}
			v, ok := scanInt(s, width, size)
			if !ok {
				return matched, nil
			}
			storeInt(dst, v)
		case 's':
			dst, err := args.nextStringDest()
			if err != nil {
				return matched, err
			}
			if !scanString(s, width, dst) {
				return matched, nil
			}
		default:
			return matched, nil
		}
		matched++
	}
}

// skipSpace consumes input whitespace and pushes back the first byte that
// is not whitespace (or EOF).
func skipSpace(s *Stream) {
	c := s.Getc()
	for isSpace(c) {
		c = s.Getc()
	}
	s.Ungetc(c)
}

// scanInt reads an optionally negative decimal integer of at most width
// bytes (0 means unbounded) and truncates it to size. It reports false,
// with the offending byte pushed back, when no digit is found.
func scanInt(s *Stream, width int, size Size) (int64, bool) {
	used := 0
	room := func() bool { return width <= 0 || used < width }

	neg := false
	c := s.Getc()
	used++
	if c == '-' {
		neg = true
		if !room() {
			return 0, false
		}
		c = s.Getc()
		used++
	}
	if !isDigit(c) {
		s.Ungetc(c)
		return 0, false
	}
	var v uint64
	for {
		v = v*10 + uint64(c-'0')
		if !room() {
			break
		}
		c = s.Getc()
		used++
		if !isDigit(c) {
			s.Ungetc(c)
			break
		}
	}
	if neg {
		v = -v
	}
	return size.signed(size.mask(v)), true
}

// scanString copies a run of non-whitespace bytes of at most width bytes
// (0 means unbounded) into dst. A []byte destination keeps at most
// len(dst)-1 bytes followed by a NUL; the rest of the token is still
// consumed. It reports false when the run is empty.
func scanString(s *Stream, width int, dst any) bool {
	var tok []byte
	buf, isBuf := dst.([]byte)
	n := 0
	for width <= 0 || n < width {
		c := s.Getc()
		if c == EOF || isSpace(c) {
			s.Ungetc(c)
			break
		}
		if isBuf {
			if n < len(buf)-1 {
				buf[n] = byte(c)
			}
		} else {
			tok = append(tok, byte(c))
		}
		n++
	}
	if n == 0 {
		return false
	}
	if isBuf {
		buf[min(n, len(buf)-1)] = 0
	} else {
		*dst.(*string) = string(tok)
	}
	return true
}

// Fscanf parses input from s against format.
func Fscanf(s *Stream, format string, args ...any) (int, error) {
	return Vfscanf(s, format, NewArgs(args...))
}

// Sscanf parses str against format.
func Sscanf(str, format string, args ...any) (int, error) {
	return Vfscanf(NewReaderStream([]byte(str)), format, NewArgs(args...))
}
