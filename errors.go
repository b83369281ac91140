package calculator

import "strconv"

// MalformedExpressionError is an error indicating an expression that does not
// alternate between numbers and operators, or a number that is not a decimal
// literal. It implements EvaluationError.
type MalformedExpressionError struct {
	// Col is the position of the token that made the expression malformed.
	Col int
	// Text is the offending token text, if any.
	Text string
	// Reason describes what was wrong.
	Reason string
}

func (err *MalformedExpressionError) Error() string {
	msg := "malformed expression: " + err.Reason
	if err.Text != "" {
		msg += " " + strconv.Quote(err.Text)
	}
	return errpos(err.Col, msg)
}

func (err *MalformedExpressionError) Pos() int {
	return err.Col
}

// DivisionByZeroError is an error indicating a division whose divisor is zero.
// It implements EvaluationError.
type DivisionByZeroError struct {
	// Col is the position of the division operator.
	Col int
	// Dividend is the left operand of the division. It is zero when the
	// error comes from a textual check rather than evaluation.
	Dividend float64
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Col, "division by zero")
}

func (err *DivisionByZeroError) Pos() int {
	return err.Col
}

// OverflowError is an error indicating a result too large to display. It
// implements EvaluationError. Its position is always 0, since it applies to
// the whole expression.
type OverflowError struct {
	// Value is the result that was discarded.
	Value float64
	// Max is the largest permitted magnitude.
	Max float64
}

func (err *OverflowError) Error() string {
	return "overflow: " + strconv.FormatFloat(err.Value, 'g', -1, 64) +
		" exceeds maximum magnitude " + strconv.FormatFloat(err.Max, 'g', -1, 64)
}

func (err *OverflowError) Pos() int {
	return 0
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// EvaluationError is an error from evaluating an expression. Every error
// Evaluate returns implements EvaluationError.
type EvaluationError interface {
	error
	// Pos returns the 1-based rune position of the token that caused the
	// error, or 0 if the error concerns the result as a whole.
	Pos() int
}

var (
	_ EvaluationError = (*MalformedExpressionError)(nil)
	_ EvaluationError = (*DivisionByZeroError)(nil)
	_ EvaluationError = (*OverflowError)(nil)
)
