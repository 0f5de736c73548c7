package tinyformat

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrBadSpec         = errors.New("malformed conversion specifier")
	ErrUnsupportedVerb = errors.New("unsupported conversion")
	ErrTooFewArgs      = errors.New("not enough format arguments")
	ErrTooFewSpecs     = errors.New("not enough conversion specifiers")
	ErrTooManySpecs    = errors.New("too many conversion specifiers")
	ErrBadArg          = errors.New("unsupported argument")
)

// SupportedVerbs lists every conversion character the interpreter accepts.
const SupportedVerbs = "diuoxXpeEfFgGcs"

// Supported reports whether c is a recognized conversion character.
func Supported(c byte) bool {
	return strings.IndexByte(SupportedVerbs, c) >= 0
}

// Format interprets format against args and writes the result to out.
// The stream's formatting configuration is captured on entry and restored
// on every exit path, success or error; text already written stays
// written. Counts of specifiers and arguments must agree, with '*' widths
// and precisions each consuming one extra argument.
func Format(out *Stream, format string, args []Arg) error {
	saved := out.State()
	defer out.SetState(saved)

	i := 0
	for argIndex := 0; argIndex < len(args); argIndex++ {
		var err error
		if i, err = writeLiteral(out, format, i); err != nil {
			return err
		}
		end, spacePad, ntrunc, err := parseSpec(out, format, i, args, &argIndex)
		if err != nil {
			return err
		}
		// A variable width or precision may have consumed the remaining
		// arguments.
		if argIndex >= len(args) {
			return fmt.Errorf("%w in format %q", ErrTooFewArgs, format)
		}
		verb := Verb{Conv: format[end-1], Trunc: ntrunc, Rest: format[end:]}
		if spacePad {
			err = formatSpacePadded(out, args[argIndex], verb)
		} else {
			err = args[argIndex].Format(out, verb)
		}
		if err != nil {
			return err
		}
		i = end
	}

	var err error
	if i, err = writeLiteral(out, format, i); err != nil {
		return err
	}
	if i < len(format) {
		return fmt.Errorf("%w in format %q", ErrTooManySpecs, format)
	}
	return nil
}

// formatSpacePadded renders arg with an explicit positive sign into a
// scratch buffer and rewrites every '+' to a space before appending the
// result. printf's ' ' flag has no stream-state equivalent, so this is the
// one case that bypasses direct-to-stream rendering.
func formatSpacePadded(out *Stream, arg Arg, verb Verb) error {
	var buf bytes.Buffer
	tmp := NewStream(&buf)
	tmp.SetState(out.State())
	tmp.setf(ShowPos, 0)
	if err := arg.Format(tmp, verb); err != nil {
		return err
	}
	return out.WriteString(strings.ReplaceAll(buf.String(), "+", " "))
}

// Fprintf interprets format with C99 printf semantics and writes the
// result to w.
func Fprintf(w io.Writer, format string, values ...any) error {
	args, err := Args(values...)
	if err != nil {
		return err
	}
	return Format(NewStream(w), format, args)
}

// Sprintf interprets format with C99 printf semantics and returns the
// result.
func Sprintf(format string, values ...any) (string, error) {
	var buf bytes.Buffer
	if err := Fprintf(&buf, format, values...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Printf interprets format with C99 printf semantics and writes the
// result to standard output.
func Printf(format string, values ...any) error {
	return Fprintf(os.Stdout, format, values...)
}
