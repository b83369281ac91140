package calculator

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexToken
		errs   int
	}{
		{"", []lexToken{{kind: tokenEOF, pos: 1}}, 0},
		// numbers
		{"0", []lexToken{{text: "0", kind: tokenNum, pos: 1}, {kind: tokenEOF, pos: 2}}, 0},
		{"9876543210", []lexToken{{text: "9876543210", kind: tokenNum, pos: 1}, {kind: tokenEOF, pos: 11}}, 0},
		{"1.0", []lexToken{{text: "1.0", kind: tokenNum, pos: 1}, {kind: tokenEOF, pos: 4}}, 0},
		{".5", []lexToken{{text: ".5", kind: tokenNum, pos: 1}, {kind: tokenEOF, pos: 3}}, 0},
		{"5.", []lexToken{{text: "5.", kind: tokenNum, pos: 1}, {kind: tokenEOF, pos: 3}}, 0},
		{".", []lexToken{{pos: 1}, {kind: tokenEOF, pos: 2}}, 1},
		{"1.1.1", []lexToken{{pos: 1}, {text: "1", kind: tokenNum, pos: 5}, {kind: tokenEOF, pos: 6}}, 1},
		{"1a", []lexToken{{pos: 1}, {kind: tokenEOF, pos: 3}}, 1},
		{"1 2", []lexToken{{pos: 1}, {text: "2", kind: tokenNum, pos: 3}, {kind: tokenEOF, pos: 4}}, 1},
		// operators
		{"1+0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "+", kind: tokenOp, pos: 2}, {text: "0", kind: tokenNum, pos: 3}, {kind: tokenEOF, pos: 4}}, 0},
		{"12*3/4-5", []lexToken{
			{text: "12", kind: tokenNum, pos: 1},
			{text: "*", kind: tokenOp, pos: 3},
			{text: "3", kind: tokenNum, pos: 4},
			{text: "/", kind: tokenOp, pos: 5},
			{text: "4", kind: tokenNum, pos: 6},
			{text: "-", kind: tokenOp, pos: 7},
			{text: "5", kind: tokenNum, pos: 8},
			{kind: tokenEOF, pos: 9},
		}, 0},
		{"++", []lexToken{{text: "+", kind: tokenOp, pos: 1}, {text: "+", kind: tokenOp, pos: 2}, {kind: tokenEOF, pos: 3}}, 0},
		// erroneous symbols
		{"$", []lexToken{{pos: 1}, {kind: tokenEOF, pos: 2}}, 1},
		{"x", []lexToken{{pos: 1}, {kind: tokenEOF, pos: 2}}, 1},
		{"$$", []lexToken{{pos: 1}, {pos: 2}, {kind: tokenEOF, pos: 3}}, 2},
	}

	for _, c := range cases {
		scan := lex(strings.NewReader(c.src))
		for _, want := range c.tokens {
			got, err := scan.next()
			if err == io.EOF {
				t.Errorf("scanning %q: expected token %v but got EOF", c.src, want)
				continue
			}
			if got != want {
				t.Errorf("scanning %q: want %v, got %v", c.src, want, got)
			}
			if err != nil {
				if !errors.As(err, new(*MalformedExpressionError)) {
					t.Errorf("scanning %q: error %#v is not *MalformedExpressionError", c.src, err)
				}
				if c.errs > 0 {
					c.errs--
					continue
				}
				t.Errorf("scanning %q: unexpected error %v", c.src, err)
			}
		}
		for got, err := scan.next(); err != io.EOF; got, err = scan.next() {
			t.Errorf("scanning %q: extra token %v with error: %v", c.src, got, err)
		}
		if c.errs > 0 {
			t.Errorf("scanning %q: not enough errors", c.src)
		}
	}
}

func TestPrecedenceCoversOperators(t *testing.T) {
	for _, r := range Operators {
		if p := precedence(string(r)); p < 1 {
			t.Errorf("no precedence for %c", r)
		}
	}
	if precedence("*") <= precedence("+") {
		t.Error("* does not bind more tightly than +")
	}
	if precedence("/") != precedence("*") || precedence("-") != precedence("+") {
		t.Error("operators within a tier have different precedence")
	}
}
