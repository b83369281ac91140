package calculator

import "strconv"

// FormatResult renders a result as the shortest decimal string that parses
// back to the same value. It never uses exponent notation, so the string for
// any non-negative result can be the leading literal of a new expression.
// Negative zero formats as "0".
func FormatResult(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
