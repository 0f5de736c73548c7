// Package tinyformat interprets C99 printf format strings against a generic
// output stream.
//
// The package walks a format string once, emitting literal text and
// translating each conversion specifier
// (%[flags][width][.precision][length]type) into formatting state on a
// [Stream]. Rendering the actual values is delegated to type-erased argument
// handles, so the interpreter itself never inspects a value's concrete type.
// The central entry points are [Fprintf], [Sprintf], and [Printf], which
// accept a format string and variadic values of any supported type:
//
//	tinyformat.Fprintf(os.Stdout, "%s scored %05.1f%%\n", "ada", 99.5)
//
// # Interface Design
//
// The package uses a narrow capability design. An argument is anything
// implementing [Arg]:
//
//   - Format renders the value into a [Stream] using the stream's
//     already-applied formatting configuration plus the per-specifier
//     side channel in [Verb].
//   - Int converts the value to a plain integer, used when a specifier
//     pulls a variable width or precision from the argument list via '*'.
//
// [Args] wraps ordinary Go values (integer and float families, bool, rune,
// string, []byte, [fmt.Stringer], error, and pointers) in built-in handles.
// A value that already implements [Arg] passes through untouched, which
// keeps the argument set open without any larger hierarchy.
//
// # Stream State
//
// A [Stream] carries the mutable formatting configuration a specifier
// establishes: width, precision, fill character, and a [Flags] bitset for
// alignment, numeric base, float style, case, and sign display. Each
// specifier starts from a clean slate. The configuration observed on a
// stream before a formatting call is always restored afterward, on every
// exit path, so callers may hold long-lived streams.
//
// Two printf behaviours have no stream-state equivalent and travel on a
// side channel instead: the ' ' flag (space in place of the sign on
// non-negative numbers) and the %s precision (truncation to N display
// cells).
//
// # Conversions
//
// Supported conversion characters are listed in [SupportedVerbs]:
// d i u o x X p for integers, e E f F g G for floats, c for characters,
// and s for strings (booleans render as words under %s). %% emits a
// literal percent. %n and the hex-float conversions %a/%A are rejected.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrBadSpec] — specifier cut short by the end of the format string
//   - [ErrUnsupportedVerb] — %n, %a, or %A
//   - [ErrTooFewArgs] — a '*' or a conversion had no argument left
//   - [ErrTooFewSpecs] — arguments remain after the last specifier
//   - [ErrTooManySpecs] — specifiers remain after the last argument
//   - [ErrBadArg] — a value no built-in handle covers
//
// Errors report programmer mistakes in static format strings; text already
// written to the destination is kept, only the stream configuration is
// rolled back.
package tinyformat
