package kstdio

import (
	"fmt"
	"reflect"
)

// Args is a forward-only cursor over a variadic argument list. Each
// directive consumes zero or more arguments in order; the cursor is never
// rewound.
type Args struct {
	list []any
	pos  int
}

// NewArgs returns a cursor positioned at the first of list.
func NewArgs(list ...any) *Args {
	return &Args{list: list}
}

// Next returns the next argument and advances the cursor.
func (a *Args) Next() (any, bool) {
	if a.pos >= len(a.list) {
		return nil, false
	}
	v := a.list[a.pos]
	a.pos++
	return v, true
}

// Remaining returns the number of arguments not yet consumed.
func (a *Args) Remaining() int { return len(a.list) - a.pos }

// nextInt pulls the next argument as a raw 64-bit pattern. Signed values
// are sign-extended so masking to a smaller class keeps their low bits.
func (a *Args) nextInt(verb byte) (uint64, error) {
	v, ok := a.Next()
	if !ok {
		return 0, fmt.Errorf("%w: missing argument for %%%c", ErrBadArgument, verb)
	}
	n, ok := intBits(v)
	if !ok {
		return 0, fmt.Errorf("%w: %%%c wants an integer, got %T", ErrBadArgument, verb, v)
	}
	return n, nil
}

func intBits(v any) (uint64, bool) {
	switch x := v.(type) {
	case int:
		return uint64(x), true
	case int8:
		return uint64(x), true
	case int16:
		return uint64(x), true
	case int32:
		return uint64(x), true
	case int64:
		return uint64(x), true
	case uint:
		return uint64(x), true
	case uint8:
		return uint64(x), true
	case uint16:
		return uint64(x), true
	case uint32:
		return uint64(x), true
	case uint64:
		return x, true
	case uintptr:
		return uint64(x), true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer:
		return uint64(rv.Pointer()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uint64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint(), true
	}
	return 0, false
}

// nextString pulls the next argument as bytes for %s.
func (a *Args) nextString() (string, error) {
	v, ok := a.Next()
	if !ok {
		return "", fmt.Errorf("%w: missing argument for %%s", ErrBadArgument)
	}
	switch x := v.(type) {
	case string:
		return x, nil
	case []byte:
		for i, c := range x {
			if c == 0 {
				return string(x[:i]), nil
			}
		}
		return string(x), nil
	case fmt.Stringer:
		return x.String(), nil
	}
	return "", fmt.Errorf("%w: %%s wants a string, got %T", ErrBadArgument, v)
}

// nextStore pulls the next argument as an integer destination and stores
// n into it.
func (a *Args) nextStore(verb byte, n int64) error {
	dst, err := a.nextIntDest(verb)
	if err != nil {
		return err
	}
	storeInt(dst, n)
	return nil
}

// nextIntDest pulls the next argument and checks it is a non-nil pointer
// to a Go integer.
func (a *Args) nextIntDest(verb byte) (any, error) {
	v, ok := a.Next()
	if !ok {
		return nil, fmt.Errorf("%w: missing destination for %%%c", ErrBadArgument, verb)
	}
	switch v.(type) {
	case *int, *int8, *int16, *int32, *int64, *uint, *uint8, *uint16, *uint32, *uint64:
	default:
		return nil, fmt.Errorf("%w: %%%c wants an integer pointer, got %T", ErrBadArgument, verb, v)
	}
	if reflect.ValueOf(v).IsNil() {
		return nil, fmt.Errorf("%w: nil destination for %%%c", ErrBadArgument, verb)
	}
	return v, nil
}

// storeInt writes n through dst, truncating to the pointee's width. dst
// must have passed nextIntDest.
func storeInt(dst any, n int64) {
	switch p := dst.(type) {
	case *int:
		*p = int(n)
	case *int8:
		*p = int8(n)
	case *int16:
		*p = int16(n)
	case *int32:
		*p = int32(n)
	case *int64:
		*p = n
	case *uint:
		*p = uint(n)
	case *uint8:
		*p = uint8(n)
	case *uint16:
		*p = uint16(n)
	case *uint32:
		*p = uint32(n)
	case *uint64:
		*p = uint64(n)
	}
}

// nextStringDest pulls the next argument as a %s destination: a non-nil
// *string or a []byte with room for at least the terminating NUL.
func (a *Args) nextStringDest() (any, error) {
	v, ok := a.Next()
	if !ok {
		return nil, fmt.Errorf("%w: missing destination for %%s", ErrBadArgument)
	}
	switch p := v.(type) {
	case *string:
		if p == nil {
			return nil, fmt.Errorf("%w: nil destination for %%s", ErrBadArgument)
		}
	case []byte:
		if len(p) == 0 {
			return nil, fmt.Errorf("%w: zero-length destination for %%s", ErrBadArgument)
		}
	default:
		return nil, fmt.Errorf("%w: %%s wants *string or []byte, got %T", ErrBadArgument, v)
	}
	return v, nil
}
