package tinyformat

import (
	"fmt"
	"strings"
)

// parseDigits reads a decimal run from format starting at i, returning the
// value and the position one past the run.
func parseDigits(format string, i int) (int, int) {
	n := 0
	for i < len(format) && format[i] >= '0' && format[i] <= '9' {
		n = 10*n + int(format[i]-'0')
		i++
	}
	return n, i
}

// parseSpec interprets one conversion specifier starting at format[i] and
// sets the stream state accordingly.
//
// The mini-language is the C99 one, "%[flags][width][.precision][length]type".
// Options with no stream-state equivalent come back out of band: spacePad
// (space-padded positive numbers, the ' ' flag) and ntrunc (truncation
// bound from an explicit %s precision, -1 when absent). argIndex advances
// when a '*' pulls a variable width or precision from args. On success end
// is the position one past the conversion character.
func parseSpec(out *Stream, format string, i int, args []Arg, argIndex *int) (end int, spacePad bool, ntrunc int, err error) {
	ntrunc = -1
	if i >= len(format) || format[i] != '%' {
		return i, false, ntrunc, fmt.Errorf("%w in format %q", ErrTooFewSpecs, format)
	}

	// Each specifier starts from a clean slate.
	out.SetWidth(0)
	out.SetPrecision(6)
	out.SetFill(' ')
	out.SetFlags(0)

	precSet := false
	widthSet := false
	widthExtra := 0
	i++

	// 1) Flags.
scan:
	for ; i < len(format); i++ {
		switch format[i] {
		case '#':
			out.setf(ShowBase, 0)
		case '0':
			// Left alignment wins over zero fill. Internal padding keeps
			// numeric values correct, eg -00010 rather than 000-10.
			if out.Flags()&AdjustLeft == 0 {
				out.SetFill('0')
				out.setf(AdjustInternal, adjustMask)
			}
		case '-':
			out.SetFill(' ')
			out.setf(AdjustLeft, adjustMask)
		case ' ':
			// Overridden by an explicit positive sign.
			if out.Flags()&ShowPos == 0 {
				spacePad = true
			}
		case '+':
			out.setf(ShowPos, 0)
			spacePad = false
			widthExtra = 1
		default:
			break scan
		}
	}

	// 2) Width.
	if i < len(format) && format[i] >= '0' && format[i] <= '9' {
		widthSet = true
		var w int
		w, i = parseDigits(format, i)
		out.SetWidth(w)
	}
	if i < len(format) && format[i] == '*' {
		widthSet = true
		if *argIndex >= len(args) {
			return i, spacePad, ntrunc, fmt.Errorf("%w to read variable width", ErrTooFewArgs)
		}
		w, ierr := args[*argIndex].Int()
		if ierr != nil {
			return i, spacePad, ntrunc, ierr
		}
		*argIndex++
		if w < 0 {
			// A negative runtime width means the '-' flag.
			out.SetFill(' ')
			out.setf(AdjustLeft, adjustMask)
			w = -w
		}
		out.SetWidth(w)
		i++
	}

	// 3) Precision.
	if i < len(format) && format[i] == '.' {
		i++
		prec := 0
		switch {
		case i < len(format) && format[i] == '*':
			i++
			if *argIndex >= len(args) {
				return i, spacePad, ntrunc, fmt.Errorf("%w to read variable precision", ErrTooFewArgs)
			}
			var ierr error
			prec, ierr = args[*argIndex].Int()
			if ierr != nil {
				return i, spacePad, ntrunc, ierr
			}
			*argIndex++
			if prec < 0 {
				prec = 0
			}
		case i < len(format) && format[i] >= '0' && format[i] <= '9':
			prec, i = parseDigits(format, i)
		case i < len(format) && format[i] == '-':
			// Negative precisions are ignored, treated as zero.
			_, i = parseDigits(format, i+1)
		}
		out.SetPrecision(prec)
		precSet = true
	}

	// 4) Length modifiers carry no information the argument handle doesn't
	// already have.
	for i < len(format) && strings.IndexByte("lhLjzt", format[i]) >= 0 {
		i++
	}

	// 5) Conversion character.
	if i >= len(format) {
		return i, spacePad, ntrunc, fmt.Errorf("%w: terminated by end of format string", ErrBadSpec)
	}
	intConv := false
	switch c := format[i]; c {
	case 'd', 'i', 'u':
		intConv = true
	case 'o':
		out.setf(BaseOct, baseMask)
		intConv = true
	case 'x', 'p':
		out.setf(BaseHex, baseMask)
		intConv = true
	case 'X':
		out.setf(BaseHex|Uppercase, baseMask)
		intConv = true
	case 'e':
		out.setf(FloatScientific, floatMask)
	case 'E':
		out.setf(FloatScientific|Uppercase, floatMask)
	case 'f':
		out.setf(FloatFixed, floatMask)
	case 'F':
		out.setf(FloatFixed|Uppercase, floatMask)
	case 'g':
		// Let the renderer decide the float style.
		out.setf(0, floatMask)
	case 'G':
		out.setf(Uppercase, floatMask)
	case 'c':
		// Handled as a special case by the argument's render capability.
	case 's':
		if precSet {
			// String truncation is not a stream concept; hand the bound
			// back out of band.
			ntrunc = out.Precision()
		}
		out.setf(BoolWords, 0)
	case 'a', 'A', 'n':
		return i, spacePad, ntrunc, fmt.Errorf("%w: %%%c", ErrUnsupportedVerb, c)
	}
	i++

	// 6) An integer "precision" gives the minimum number of digits, padded
	// with zeros on the left. Approximate it with the width when the width
	// isn't otherwise used, reserving a column for an explicit '+'.
	if intConv && precSet && !widthSet {
		out.SetWidth(out.Precision() + widthExtra)
		out.setf(AdjustInternal, adjustMask)
		out.SetFill('0')
	}
	return i, spacePad, ntrunc, nil
}
