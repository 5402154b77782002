package kstdio

import "fmt"

// Fputs writes str to s without a trailing newline.
func Fputs(s *Stream, str string) (int, error) {
	e := &emitter{s: s}
	renderString(e, str, 0, false)
	return e.n, e.err
}

// Puts writes str and a newline to s.
func Puts(s *Stream, str string) (int, error) {
	n, err := Fputs(s, str)
	if err != nil {
		return n, err
	}
	if err := s.Putc('\n'); err != nil {
		return n, err
	}
	return n + 1, nil
}

// Fwrite writes p to s byte by byte and returns how many were emitted.
func Fwrite(s *Stream, p []byte) (int, error) {
	for i, c := range p {
		if err := s.Putc(c); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// Fread fills p from s and returns the number of bytes read. A short count
// means the stream reached end of data.
func Fread(s *Stream, p []byte) int {
	for i := range p {
		c := s.Getc()
		if c == EOF {
			return i
		}
		p[i] = byte(c)
	}
	return len(p)
}

// Perror writes "msg: err" and a newline to s. With an empty msg only the
// error text is written.
func Perror(s *Stream, msg string, err error) error {
	text := "<nil>"
	if err != nil {
		text = err.Error()
	}
	var e error
	if msg != "" {
		_, e = Fprintf(s, "%s: %s\n", msg, text)
	} else {
		_, e = Fprintf(s, "%s\n", text)
	}
	if e != nil {
		return fmt.Errorf("perror: %w", e)
	}
	return nil
}
