package tinyformat

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Flags is a bitset of stream formatting options. The zero value means
// right alignment, decimal base, general float style, lowercase output,
// and no sign or base decoration.
type Flags uint16

const (
	AdjustLeft      Flags = 1 << iota // pad on the right
	AdjustInternal                    // pad between sign/prefix and digits
	BaseOct                           // octal integer output
	BaseHex                           // hexadecimal integer output
	FloatFixed                        // %f style
	FloatScientific                   // %e style
	ShowBase                          // 0x/0 prefix; forced decimal point on floats
	ShowPos                           // explicit '+' on non-negative decimal output
	BoolWords                         // booleans as "true"/"false"
	Uppercase                         // uppercase digits, prefixes, and exponents
)

// Masks for the mutually exclusive flag groups.
const (
	adjustMask = AdjustLeft | AdjustInternal
	baseMask   = BaseOct | BaseHex
	floatMask  = FloatFixed | FloatScientific
)

// Stream couples a destination writer with the mutable formatting
// configuration that conversion specifiers establish and argument handles
// consult. A Stream is not safe for concurrent use; one formatting
// operation owns it for the duration of the call.
type Stream struct {
	w     io.Writer
	width int
	prec  int
	fill  rune
	flags Flags
}

// NewStream returns a stream writing to w with the default configuration:
// no minimum width, precision 6, space fill, zero flags.
func NewStream(w io.Writer) *Stream {
	return &Stream{w: w, prec: 6, fill: ' '}
}

// State is a snapshot of a stream's formatting configuration.
type State struct {
	Width     int
	Precision int
	Fill      rune
	Flags     Flags
}

// State captures the current formatting configuration.
func (s *Stream) State() State {
	return State{Width: s.width, Precision: s.prec, Fill: s.fill, Flags: s.flags}
}

// SetState restores a configuration captured by [Stream.State].
func (s *Stream) SetState(st State) {
	s.width = st.Width
	s.prec = st.Precision
	s.fill = st.Fill
	s.flags = st.Flags
}

// Width returns the minimum field width in display cells.
func (s *Stream) Width() int { return s.width }

// SetWidth sets the minimum field width in display cells.
func (s *Stream) SetWidth(w int) { s.width = w }

// Precision returns the current precision.
func (s *Stream) Precision() int { return s.prec }

// SetPrecision sets the precision.
func (s *Stream) SetPrecision(p int) { s.prec = p }

// Fill returns the pad character.
func (s *Stream) Fill() rune { return s.fill }

// SetFill sets the pad character.
func (s *Stream) SetFill(r rune) { s.fill = r }

// Flags returns the flag bits.
func (s *Stream) Flags() Flags { return s.flags }

// SetFlags replaces the flag bits.
func (s *Stream) SetFlags(f Flags) { s.flags = f }

// setf sets the bits in on after clearing the bits in mask.
func (s *Stream) setf(on, mask Flags) { s.flags = s.flags&^mask | on }

// WriteString writes str verbatim, ignoring width and alignment.
func (s *Stream) WriteString(str string) error {
	_, err := io.WriteString(s.w, str)
	return err
}

// WriteValue writes body padded out to the configured width with the fill
// character. Alignment is right unless AdjustLeft is set; internal
// alignment has no meaning for plain text and pads on the left.
func (s *Stream) WriteValue(body string) error {
	pad := s.width - runewidth.StringWidth(body)
	if pad <= 0 {
		return s.WriteString(body)
	}
	filler := strings.Repeat(string(s.fill), pad)
	if s.flags&AdjustLeft != 0 {
		return s.WriteString(body + filler)
	}
	return s.WriteString(filler + body)
}

// WriteNumber writes a numeric value split into sign, base prefix, and
// digits so that internal alignment can insert fill between the prefix and
// the digits, e.g. -00042 rather than 000-42.
func (s *Stream) WriteNumber(sign, prefix, digits string) error {
	content := sign + prefix + digits
	pad := s.width - runewidth.StringWidth(content)
	if pad <= 0 {
		return s.WriteString(content)
	}
	filler := strings.Repeat(string(s.fill), pad)
	switch {
	case s.flags&AdjustLeft != 0:
		return s.WriteString(content + filler)
	case s.flags&AdjustInternal != 0:
		return s.WriteString(sign + prefix + filler + digits)
	default:
		return s.WriteString(filler + content)
	}
}
