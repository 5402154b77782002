package kstdio

// directive is one parsed %-conversion.
type directive struct {
	flags Flag
	width int
	size  Size
	verb  byte
}

// parseDirective parses the directive whose flags start at format[i] (just
// past the '%'). A '*' width pulls its value from args. It returns the
// directive and the offset just past the verb; verb is 0 when the
// template ends before one.
func parseDirective(format string, i int, args *Args) (directive, int, error) {
	d := directive{size: Size32}
	for i < len(format) {
		f, ok := flagFor(format[i])
		if !ok {
			break
		}
		d.flags |= f
		i++
	}
	if i < len(format) && format[i] == '*' {
		bits, err := args.nextInt('*')
		if err != nil {
			return d, i, err
		}
		w := int(int64(bits))
		if w < 0 {
			d.flags |= FlagLeft
			w = -w
		}
		d.width = w
		i++
	} else {
		for i < len(format) && isDigit(int(format[i])) {
			d.width = d.width*10 + int(format[i]-'0')
			i++
		}
	}
	i = parseSize(format, i, &d.size)
	if i < len(format) {
		d.verb = format[i]
		i++
	}
	return d, i, nil
}

// parseSize consumes 'l' and 'h' modifiers. Each 'l' selects Size64 and
// each 'h' narrows one class.
func parseSize(format string, i int, size *Size) int {
	for i < len(format) {
		switch format[i] {
		case 'l':
			*size = Size64
		case 'h':
			*size = size.narrow()
		default:
			return i
		}
		i++
	}
	return i
}

// Vfprintf renders format into s, pulling values from args. It returns
// the number of bytes emitted, counting bytes an output buffer dropped for
// lack of capacity. On a stream failure it stops and returns the count so
// far with the error.
func Vfprintf(s *Stream, format string, args *Args) (int, error) {
	e := &emitter{s: s}
	for i := 0; i < len(format); {
		c := format[i]
		i++
		if c != '%' {
			e.put(c)
			if e.err != nil {
				return e.n, e.err
			}
			continue
		}
		if i == len(format) {
			e.put('%')
			break
		}
		d, next, err := parseDirective(format, i, args)
		if err != nil {
			return e.n, err
		}
		i = next
		if err := d.emit(e, args); err != nil {
			return e.n, err
		}
		if e.err != nil {
			return e.n, e.err
		}
	}
	return e.n, e.err
}

func (d directive) emit(e *emitter, args *Args) error {
	flags := d.flags
	base := 10
	switch d.verb {
	case 0:
		return nil
	case 'd', 'i':
		flags |= FlagSigned
	case 'u':
		flags &^= FlagAlt
	case 'o':
		base = 8
	case 'x', 'p':
		flags |= FlagAlt
		base = 16
	case 'X':
		flags |= FlagUpper
		base = 16
	case 'c':
		v, err := args.nextInt(d.verb)
		if err != nil {
			return err
		}
		left := flags&FlagLeft != 0
		if left {
			e.put(byte(v))
		}
		e.pad(' ', d.width-1)
		if !left {
			e.put(byte(v))
		}
		return nil
	case 's':
		str, err := args.nextString()
		if err != nil {
			return err
		}
		renderString(e, str, d.width, flags&FlagLeft != 0)
		return nil
	case 'n':
		return args.nextStore(d.verb, 0)
	default:
		e.put(d.verb)
		return nil
	}
	v, err := args.nextInt(d.verb)
	if err != nil {
		return err
	}
	renderInt(e, v, base, d.width, d.size, flags)
	return nil
}

// Fprintf renders format with args into s.
func Fprintf(s *Stream, format string, args ...any) (int, error) {
	return Vfprintf(s, format, NewArgs(args...))
}

// Snprintf renders into dst, storing at most len(dst)-1 bytes followed by
// a NUL. It returns the length the output would have had without the
// bound, so a result >= len(dst) means the output was cut short.
func Snprintf(dst []byte, format string, args ...any) (int, error) {
	if len(dst) == 0 {
		return Vfprintf(NewBufferStream(nil), format, NewArgs(args...))
	}
	s := NewBufferStream(dst[:len(dst)-1])
	n, err := Vfprintf(s, format, NewArgs(args...))
	dst[s.Len()] = 0
	return n, err
}

// Sprintf renders format into a string sized exactly to fit. It measures
// the output with a zero-capacity stream first, then renders into a buffer
// of that size.
func Sprintf(format string, args ...any) (string, error) {
	n, err := Vfprintf(NewBufferStream(nil), format, NewArgs(args...))
	if err != nil {
		return "", err
	}
	s, err := NewOwnedBufferStream(HeapAllocator{}, n)
	if err != nil {
		return "", err
	}
	if _, err := Vfprintf(s, format, NewArgs(args...)); err != nil {
		return "", err
	}
	return string(s.Bytes()), nil
}
