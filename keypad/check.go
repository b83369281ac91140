package keypad

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/zephyrtronium/calculator"
)

// Precheck applies the textual checks made before evaluation. An expression
// containing "/0" anywhere is a division by zero, even where the divisor is
// e.g. 0.5; two adjacent operators make the expression malformed.
func Precheck(expr string) error {
	if i := strings.Index(expr, "/0"); i >= 0 {
		return &calculator.DivisionByZeroError{Col: i + 1}
	}
	for i := 1; i < len(expr); i++ {
		if isOperator(expr[i-1]) && isOperator(expr[i]) {
			return &calculator.MalformedExpressionError{
				Col:    i + 1,
				Text:   expr[i-1 : i+1],
				Reason: "consecutive operators",
			}
		}
	}
	return nil
}

func isOperator(c byte) bool {
	return strings.IndexByte(calculator.Operators, c) >= 0
}

// CheckMagnitude returns an OverflowError if |v| exceeds limit or v is NaN.
func CheckMagnitude(v, limit float64) error {
	if math.Abs(v) > limit || math.IsNaN(v) {
		return &calculator.OverflowError{Value: v, Max: limit}
	}
	return nil
}

// LengthLimitError is an error indicating a display string longer than the
// display can show.
type LengthLimitError struct {
	// Len is the length of the display string in characters.
	Len int
	// Limit is the display limit.
	Limit int
}

func (err *LengthLimitError) Error() string {
	return "display length " + strconv.Itoa(err.Len) + " exceeds limit " + strconv.Itoa(err.Limit)
}

// CheckLength returns a LengthLimitError if display has more than limit
// characters.
func CheckLength(display string, limit int) error {
	if n := utf8.RuneCountInString(display); n > limit {
		return &LengthLimitError{Len: n, Limit: limit}
	}
	return nil
}
