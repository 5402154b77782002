package kstdio

import "sync"

// Console bundles the three standard streams. Build one explicitly with
// [NewConsole], or use [Std] for the process-wide console over the OS
// descriptors.
type Console struct {
	In  *Stream
	Out *Stream
	Err *Stream
}

// NewConsole returns a Console over the given transports. opts apply to
// all three streams.
func NewConsole(in, out, errw Transport, opts ...Option) *Console {
	return &Console{
		In:  NewStream(in, opts...),
		Out: NewStream(out, opts...),
		Err: NewStream(errw, opts...),
	}
}

var (
	stdOnce    sync.Once
	stdConsole *Console
)

// Std returns the process-wide Console over descriptors 0, 1 and 2. It is
// built on first use and never torn down.
func Std() *Console {
	stdOnce.Do(func() {
		stdConsole = NewConsole(stdTransports())
	})
	return stdConsole
}

// Printf renders to the output stream.
func (c *Console) Printf(format string, args ...any) (int, error) {
	return Fprintf(c.Out, format, args...)
}

// Eprintf renders to the error stream.
func (c *Console) Eprintf(format string, args ...any) (int, error) {
	return Fprintf(c.Err, format, args...)
}

// Puts writes str and a newline to the output stream.
func (c *Console) Puts(str string) (int, error) {
	return Puts(c.Out, str)
}

// Putchar writes one byte to the output stream.
func (c *Console) Putchar(b byte) error {
	return c.Out.Putc(b)
}

// Getchar reads one byte from the input stream, or [EOF].
func (c *Console) Getchar() int {
	return c.In.Getc()
}

// Scanf parses the input stream against format.
func (c *Console) Scanf(format string, args ...any) (int, error) {
	return Fscanf(c.In, format, args...)
}

// Perror writes "msg: err" to the error stream.
func (c *Console) Perror(msg string, err error) error {
	return Perror(c.Err, msg, err)
}
