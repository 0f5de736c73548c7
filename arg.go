package tinyformat

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Verb is the per-specifier side channel handed to an argument's render
// capability: the conversion character, the truncation bound from an
// explicit %s precision (-1 when absent), and the format text remaining
// after the specifier for lookahead.
type Verb struct {
	Conv  byte
	Trunc int
	Rest  string
}

// Arg is a type-erased argument handle. Format renders the value into the
// stream using the stream's already-applied configuration and the verb's
// side channel. Int converts the value to a plain integer for variable
// width and precision consumption.
type Arg interface {
	Format(out *Stream, v Verb) error
	Int() (int, error)
}

// Args wraps plain Go values in built-in argument handles. Values already
// implementing [Arg] pass through untouched. Unsupported types return
// [ErrBadArg].
func Args(values ...any) ([]Arg, error) {
	args := make([]Arg, len(values))
	for i, v := range values {
		a, err := newArg(v)
		if err != nil {
			return nil, err
		}
		args[i] = a
	}
	return args, nil
}

func newArg(v any) (Arg, error) {
	switch x := v.(type) {
	case Arg:
		return x, nil
	case int:
		return intArg{u: uint64(int64(x)), bits: 64, signed: true}, nil
	case int8:
		return intArg{u: uint64(int64(x)), bits: 8, signed: true}, nil
	case int16:
		return intArg{u: uint64(int64(x)), bits: 16, signed: true}, nil
	case int32:
		return intArg{u: uint64(int64(x)), bits: 32, signed: true}, nil
	case int64:
		return intArg{u: uint64(x), bits: 64, signed: true}, nil
	case uint:
		return intArg{u: uint64(x), bits: 64}, nil
	case uint8:
		return intArg{u: uint64(x), bits: 8}, nil
	case uint16:
		return intArg{u: uint64(x), bits: 16}, nil
	case uint32:
		return intArg{u: uint64(x), bits: 32}, nil
	case uint64:
		return intArg{u: x, bits: 64}, nil
	case uintptr:
		return ptrArg{p: x}, nil
	case float32:
		return floatArg{f: float64(x)}, nil
	case float64:
		return floatArg{f: x}, nil
	case bool:
		return boolArg{b: x}, nil
	case string:
		return stringArg{s: x}, nil
	case []byte:
		return stringArg{s: string(x)}, nil
	case fmt.Stringer:
		return stringArg{s: x.String()}, nil
	case error:
		return stringArg{s: x.Error()}, nil
	default:
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Pointer, reflect.UnsafePointer, reflect.Chan, reflect.Func, reflect.Map:
			return ptrArg{p: rv.Pointer()}, nil
		}
		return nil, fmt.Errorf("%w type %T", ErrBadArg, v)
	}
}

// intArg holds the sign-extended bits of any built-in integer value. The
// original bit width matters for octal and hex output, where negative
// values render as their unsigned counterpart of the same width.
type intArg struct {
	u      uint64
	bits   uint8
	signed bool
}

func (a intArg) Int() (int, error) {
	if a.signed {
		return int(int64(a.u)), nil
	}
	return int(a.u), nil
}

func (a intArg) Format(out *Stream, v Verb) error {
	if v.Conv == 'c' {
		return out.WriteValue(string(rune(int64(a.u))))
	}
	flags := out.Flags()
	base := 10
	switch {
	case flags&BaseHex != 0:
		base = 16
	case flags&BaseOct != 0:
		base = 8
	}
	mag := a.u
	var sign string
	if base == 10 {
		switch {
		case a.signed && int64(a.u) < 0:
			sign = "-"
			mag = uint64(-int64(a.u))
		case flags&ShowPos != 0:
			sign = "+"
		}
	} else if a.bits < 64 {
		mag &= 1<<a.bits - 1
	}
	digits := strconv.FormatUint(mag, base)
	var prefix string
	if flags&ShowBase != 0 && mag != 0 {
		switch base {
		case 16:
			prefix = "0x"
		case 8:
			prefix = "0"
		}
	}
	if flags&Uppercase != 0 {
		digits = strings.ToUpper(digits)
		prefix = strings.ToUpper(prefix)
	}
	return out.WriteNumber(sign, prefix, digits)
}

type floatArg struct {
	f float64
}

func (a floatArg) Int() (int, error) { return int(a.f), nil }

func (a floatArg) Format(out *Stream, v Verb) error {
	flags := out.Flags()
	style := byte('g')
	switch {
	case flags&FloatFixed != 0:
		style = 'f'
	case flags&FloatScientific != 0:
		style = 'e'
	}
	prec := out.Precision()
	if prec < 0 {
		prec = 0
	}
	body := strconv.FormatFloat(a.f, style, prec, 64)
	if style == 'g' && flags&ShowBase != 0 {
		body = keepTrailingZeros(body, prec)
	}
	var sign string
	switch {
	case strings.HasPrefix(body, "-"):
		sign, body = "-", body[1:]
	case flags&ShowPos != 0:
		sign = "+"
	}
	if flags&Uppercase != 0 {
		body = strings.ToUpper(body)
	}
	return out.WriteNumber(sign, "", body)
}

// keepTrailingZeros pads a general-style float out to prec significant
// digits and forces a decimal point, the '#' flag behaviour that plain 'g'
// formatting strips.
func keepTrailingZeros(s string, prec int) string {
	if prec < 1 {
		prec = 1
	}
	mant, exp := s, ""
	if k := strings.IndexAny(s, "eE"); k >= 0 {
		mant, exp = s[:k], s[k:]
	}
	if !strings.ContainsAny(mant, "0123456789") {
		return s // inf, nan
	}
	sig := 0
	nonzero := false
	for i := 0; i < len(mant); i++ {
		c := mant[i]
		if c < '0' || c > '9' {
			continue
		}
		if c != '0' {
			nonzero = true
		}
		if nonzero {
			sig++
		}
	}
	if sig == 0 {
		sig = 1 // a plain zero counts as one digit
	}
	if !strings.Contains(mant, ".") {
		mant += "."
	} else if sig >= prec {
		return s
	}
	for ; sig < prec; sig++ {
		mant += "0"
	}
	return mant + exp
}

type boolArg struct {
	b bool
}

func (a boolArg) Int() (int, error) {
	if a.b {
		return 1, nil
	}
	return 0, nil
}

func (a boolArg) Format(out *Stream, v Verb) error {
	if out.Flags()&BoolWords != 0 {
		word := "false"
		if a.b {
			word = "true"
		}
		return writeTruncated(out, word, v.Trunc)
	}
	digit := "0"
	if a.b {
		digit = "1"
	}
	var sign string
	if out.Flags()&ShowPos != 0 {
		sign = "+"
	}
	return out.WriteNumber(sign, "", digit)
}

type stringArg struct {
	s string
}

func (a stringArg) Int() (int, error) {
	return 0, fmt.Errorf("%w: cannot read an integer from %q", ErrBadArg, a.s)
}

func (a stringArg) Format(out *Stream, v Verb) error {
	return writeTruncated(out, a.s, v.Trunc)
}

// writeTruncated bounds s to trunc display cells before padding. No
// padding comes from truncation alone.
func writeTruncated(out *Stream, s string, trunc int) error {
	if trunc >= 0 && runewidth.StringWidth(s) > trunc {
		s = runewidth.Truncate(s, trunc, "")
	}
	return out.WriteValue(s)
}

// ptrArg renders addresses in hex with a 0x prefix regardless of the '#'
// flag, the way %p conventionally prints.
type ptrArg struct {
	p uintptr
}

func (a ptrArg) Int() (int, error) { return int(a.p), nil }

func (a ptrArg) Format(out *Stream, v Verb) error {
	digits := strconv.FormatUint(uint64(a.p), 16)
	prefix := "0x"
	if out.Flags()&Uppercase != 0 {
		digits = strings.ToUpper(digits)
		prefix = "0X"
	}
	return out.WriteNumber("", prefix, digits)
}
