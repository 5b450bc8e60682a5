// Package numeric parses the numeric sub-fields of a placeholder spec.
//
// Parse failure is an expected, frequent outcome under the engine's
// leniency contract, so the parser is a plain digit loop instead of
// strconv: it reports failure with a bool and never allocates.
package numeric

// ParseSize parses s as a non-negative integer. A single leading '+' is
// accepted; a sign of '-', any non-digit byte, an empty field, and
// values that overflow int all fail. ok reports whether s parsed.
func ParseSize(s string) (n int, ok bool) {
	if len(s) > 0 && s[0] == '+' {
		s = s[1:]
	}
	if len(s) == 0 {
		return 0, false
	}
	const cutoff = int(^uint(0) >> 1) // max int
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		d := int(c - '0')
		if n > (cutoff-d)/10 {
			return 0, false
		}
		n = n*10 + d
	}
	return n, true
}
