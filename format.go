package klib

import (
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrMissingArg  = errors.New("missing argument")
	ErrArgType     = errors.New("wrong argument type")
	ErrOutOfMemory = errors.New("out of memory")
	ErrBadLayout   = errors.New("invalid device layout")
)

// Fprintf renders format to w one byte at a time and returns the number of
// bytes written. Formatting stops at the first device write error; the count
// then reports how many bytes reached the device.
func Fprintf(w io.ByteWriter, format string, args ...any) (int, error) {
	s := streamSink{w: w}
	err := formatTo(&s, format, args)
	return s.pos(), err
}

// Sprintf renders format into a fresh unbounded buffer and returns it as a
// string. The rendered length is len of the result.
func Sprintf(format string, args ...any) (string, error) {
	var s growSink
	if err := formatTo(&s, format, args); err != nil {
		return "", err
	}
	return string(s.buf), nil
}

// Snprintf renders format into buf, never writing outside it, and returns the
// length the output would have had without truncation. Whenever len(buf) >= 1
// the buffer is NUL-terminated within its bounds on return, truncated or not,
// error or not. Truncation is detected by n >= len(buf). A nil or empty buf is
// legal and computes the length without storing anything.
func Snprintf(buf []byte, format string, args ...any) (int, error) {
	s := boundedSink{buf: buf}
	err := formatTo(&s, format, args)
	s.finish()
	return s.pos(), err
}

// argList walks the heterogeneous argument sequence, one element per
// conversion, strictly in order.
type argList struct {
	args []any
	next int
}

func (a *argList) take(spec byte) (any, error) {
	if a.next >= len(a.args) {
		return nil, fmt.Errorf("%w: %%%c wants argument %d, have %d", ErrMissingArg, spec, a.next+1, len(a.args))
	}
	v := a.args[a.next]
	a.next++
	return v, nil
}

// formatTo is the shared interpreter behind every entry point. It scans the
// template left to right exactly once, copying literal bytes to the sink and
// dispatching each %-specifier. A '%' as the final byte of the template has no
// specifier to consume and is copied literally.
func formatTo(s sink, format string, args []any) error {
	al := argList{args: args}
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' || i+1 == len(format) {
			if err := s.emit(c); err != nil {
				return err
			}
			continue
		}
		i++
		if err := convert(s, format[i], &al); err != nil {
			return err
		}
	}
	return nil
}

// convert handles a single specifier. Unrecognized specifiers are not an
// error: they are echoed as '%' plus the byte so a bad template still renders
// something diagnosable.
func convert(s sink, spec byte, al *argList) error {
	switch spec {
	case 'd':
		v, err := al.take(spec)
		if err != nil {
			return err
		}
		n, ok := toSigned(v)
		if !ok {
			return typeErr(spec, v)
		}
		return emitInt(s, n)
	case 'u', 'x':
		v, err := al.take(spec)
		if err != nil {
			return err
		}
		n, ok := toUnsigned(v)
		if !ok {
			return typeErr(spec, v)
		}
		radix := uint64(10)
		if spec == 'x' {
			radix = 16
		}
		return emitUint(s, n, radix)
	case 's':
		v, err := al.take(spec)
		if err != nil {
			return err
		}
		return emitString(s, v)
	case 'c':
		v, err := al.take(spec)
		if err != nil {
			return err
		}
		c, ok := toChar(v)
		if !ok {
			return typeErr(spec, v)
		}
		return s.emit(c)
	case '%':
		return s.emit('%')
	default:
		if err := s.emit('%'); err != nil {
			return err
		}
		return s.emit(spec)
	}
}

func typeErr(spec byte, v any) error {
	return fmt.Errorf("%w: %%%c given %T", ErrArgType, spec, v)
}

// emitString copies the argument's bytes until exhausted. A nil argument is
// tolerated and emits nothing.
func emitString(s sink, v any) error {
	switch str := v.(type) {
	case nil:
		return nil
	case string:
		for i := 0; i < len(str); i++ {
			if err := s.emit(str[i]); err != nil {
				return err
			}
		}
		return nil
	case []byte:
		for _, c := range str {
			if err := s.emit(c); err != nil {
				return err
			}
		}
		return nil
	default:
		return typeErr('s', v)
	}
}

func toSigned(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	default:
		return 0, false
	}
}

// toUnsigned accepts the unsigned widths and, as a convenience for literal
// arguments (untyped constants arrive as int), non-negative signed values.
func toUnsigned(v any) (uint64, bool) {
	switch n := v.(type) {
	case uint:
		return uint64(n), true
	case uint8:
		return uint64(n), true
	case uint16:
		return uint64(n), true
	case uint32:
		return uint64(n), true
	case uint64:
		return n, true
	case uintptr:
		return uint64(n), true
	default:
		s, ok := toSigned(v)
		if !ok || s < 0 {
			return 0, false
		}
		return uint64(s), true
	}
}

// toChar narrows the argument to a single byte, the way the original narrowed
// an int argument to char.
func toChar(v any) (byte, bool) {
	switch n := v.(type) {
	case byte:
		return n, true
	case rune:
		return byte(n), true
	case int:
		return byte(n), true
	default:
		return 0, false
	}
}
