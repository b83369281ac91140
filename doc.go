// Package calculator implements the expression evaluator behind a basic
// four-function calculator.
//
// Expressions are flat infix strings like "2+3*4" or "1.5/3", using only
// decimal literals and the binary operators + - * /. There are no brackets,
// no unary operators, and no whitespace. Multiplication and division bind
// more tightly than addition and subtraction, and operators of equal
// precedence apply left to right, so "8-3-2" is 3.
//
// Evaluation is a single pass over the input with an operator stack and a
// value stack. Every failure is an EvaluationError that reports the position
// of the offending token.
//
// The keypad package drives the evaluator from keystrokes, and the store
// package persists the calculator display between runs.
package calculator
