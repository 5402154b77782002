// Package kstdio is a minimal formatted I/O engine for freestanding
// runtimes.
//
// It pairs an output engine ([Vfprintf]) that renders a template and an
// argument list into bytes, and an input engine ([Vfscanf]) that parses
// bytes against a template into caller-supplied destinations. Both run
// over a [Stream], so the same code serves console output, bounded string
// formatting and string scanning.
//
// # Streams
//
// A [Stream] is backed by exactly one of:
//
//   - a [Transport] → raw descriptor I/O ([NewStream])
//   - an output buffer → fixed capacity, silent truncation ([NewBufferStream])
//   - an input region → read-only bytes ([NewReaderStream])
//
// Every Stream holds one byte of pushback ([Stream.Ungetc]); [EOF] is a
// legal value to push back. Transports may also implement [Seeker] and
// [Closer].
//
// # Output
//
// Directives follow the classic grammar:
//
//	%[flags][width][l|h...]verb
//
// Flags are '-', '+', ' ', '#' and '0'. Width is decimal digits or '*'
// (a negative '*' argument means left-justify). Each 'l' selects 64-bit,
// each 'h' narrows one class (32 → 16 → 8). Verbs:
//
//   - d, i — signed decimal
//   - u — unsigned decimal
//   - o — octal
//   - x, p — hex with "0x" prefix for non-zero values
//   - X — uppercase hex
//   - c — one byte
//   - s — string, never truncated
//   - n — stores 0 through an integer pointer
//
// Any other verb, including '%', is emitted literally. A trailing lone '%'
// is emitted as is.
//
//	kstdio.Fprintf(kstdio.Std().Out, "%-8s|%08x\n", "id", 0xbeef)
//
// [Snprintf] renders into a fixed buffer and reports the length the output
// would have had without the bound:
//
//	buf := make([]byte, 5)
//	n, _ := kstdio.Snprintf(buf, "%d", 12345) // buf = "1234\x00", n = 5
//
// # Input
//
// [Vfscanf] supports %d, %u and %s with an optional width and l/h
// modifiers. Whitespace in the template matches any amount of input
// whitespace, and input whitespace is skipped before every token. The
// result counts the directives that bound a value; a mismatch or end of
// data simply ends the pass.
//
//	var name string
//	var age int
//	n, _ := kstdio.Sscanf("  ada 36", "%s %d", &name, &age) // n = 2
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidStream] — operation on a Stream with no backing
//   - [ErrWrite] — transport write failed
//   - [ErrBadArgument] — missing or mistyped argument
//   - [ErrAllocFailed] — allocator returned nil
//   - [ErrNotSeekable] — transport cannot seek
package kstdio
