package calculator

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// evaluator holds the operator and value stacks for a single evaluation.
type evaluator struct {
	ops  []lexToken
	vals []float64
}

// push pushes a value onto the value stack.
func (e *evaluator) push(v float64) {
	e.vals = append(e.vals, v)
}

// pop removes the top from the value stack and returns it.
func (e *evaluator) pop() float64 {
	r := e.vals[len(e.vals)-1]
	e.vals = e.vals[:len(e.vals)-1]
	return r
}

// top is a shortcut to get the top of the operator stack.
func (e *evaluator) top() lexToken {
	return e.ops[len(e.ops)-1]
}

// reduce pops an operator and its two operands and pushes the result.
func (e *evaluator) reduce() error {
	op := e.top()
	e.ops = e.ops[:len(e.ops)-1]
	if len(e.vals) < 2 {
		return &MalformedExpressionError{Col: op.pos, Text: op.text, Reason: "operator missing an operand"}
	}
	b := e.pop()
	a := e.pop()
	r, err := apply(a, b, op)
	if err != nil {
		return err
	}
	e.push(r)
	return nil
}

// precedence gives the binding strength of a binary operator. Higher is more
// binding.
func precedence(op string) int {
	switch op {
	case "+", "-":
		return 1
	case "*", "/":
		return 2
	default:
		panic("calculator: invalid operator " + strconv.Quote(op))
	}
}

// apply computes a op b.
func apply(a, b float64, op lexToken) (float64, error) {
	switch op.text {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	case "/":
		if b == 0 {
			return 0, &DivisionByZeroError{Col: op.pos, Dividend: a}
		}
		return a / b, nil
	default:
		panic("calculator: invalid operator " + strconv.Quote(op.text))
	}
}

// num parses a literal scanned by the lexer. Literals too large for a float64
// become infinite, which callers catch with a magnitude check.
func num(tok lexToken) float64 {
	v, err := strconv.ParseFloat(tok.text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		panic("calculator: invalid number: " + tok.text + " (" + err.Error() + ")")
	}
	return v
}

// Eval evaluates an infix expression read from src, applying * and / before
// + and -, and operators of equal precedence from left to right. If the
// expression is malformed or divides by zero, the error is an
// EvaluationError.
func Eval(src io.RuneScanner) (float64, error) {
	scan := lex(src)
	var e evaluator
	// operand is whether the next token must be a number.
	operand := true
	for {
		tok, err := scan.next()
		if err != nil {
			return 0, err
		}
		switch tok.kind {
		case tokenEOF:
			if operand {
				if tok.pos <= 1 {
					return 0, &MalformedExpressionError{Col: tok.pos, Reason: "no expression"}
				}
				return 0, &MalformedExpressionError{Col: tok.pos, Reason: "operator at end of expression"}
			}
			for len(e.ops) > 0 {
				if err := e.reduce(); err != nil {
					return 0, err
				}
			}
			if len(e.vals) != 1 {
				return 0, &MalformedExpressionError{Col: tok.pos, Reason: strconv.Itoa(len(e.vals)) + " values left after evaluation"}
			}
			return e.vals[0], nil
		case tokenNum:
			e.push(num(tok))
			operand = false
		case tokenOp:
			if operand {
				return 0, &MalformedExpressionError{Col: tok.pos, Text: tok.text, Reason: "operator where a number is expected"}
			}
			for len(e.ops) > 0 && precedence(tok.text) <= precedence(e.top().text) {
				if err := e.reduce(); err != nil {
					return 0, err
				}
			}
			e.ops = append(e.ops, tok)
			operand = true
		default:
			panic("calculator: invalid token " + tok.String())
		}
	}
}

// Evaluate is a shortcut to evaluate a string expression.
func Evaluate(expr string) (float64, error) {
	return Eval(strings.NewReader(expr))
}
