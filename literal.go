package tinyformat

// writeLiteral writes every character of format from i up to the next
// unescaped '%' and returns the cursor at that '%', or at len(format) when
// no specifier remains. "%%" pairs collapse to a single literal '%': the
// run is flushed through the first '%' and re-anchored after the pair, so
// 2N consecutive percents yield N literal percents and an odd one left
// over starts a real specifier.
func writeLiteral(out *Stream, format string, i int) (int, error) {
	start := i
	for i < len(format) {
		if format[i] != '%' {
			i++
			continue
		}
		if i+1 < len(format) && format[i+1] == '%' {
			if err := out.WriteString(format[start : i+1]); err != nil {
				return i, err
			}
			i += 2
			start = i
			continue
		}
		return i, out.WriteString(format[start:i])
	}
	return i, out.WriteString(format[start:])
}
