package calculator

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a decimal literal.
	tokenNum
	// tokenOp is one of the binary operators.
	tokenOp
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenNum:
		return "Num"
	case tokenOp:
		return "Op"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the characters which are binary operators in an
// expression.
const Operators = "+-*/"

// AltMultiply is the multiplication glyph shown on a keypad. Callers replace it
// with * before evaluating.
const AltMultiply = 'x'

var operstrs = [...]string{"+", "-", "*", "/"}

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	eof  bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. The first time EOF is encountered,
// the result is an EOF token with a nil error. Subsequent times, the result is
// an empty token with io.EOF.
//
// There is no whitespace in a calculator expression; callers trim it first.
func (l *lexer) next() (lexToken, error) {
	if l.eof {
		return lexToken{}, io.EOF
	}
	defer l.buf.Reset()
	tok := lexToken{pos: l.rune}
	r, err := l.readRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			tok.kind = tokenEOF
			l.eof = true
			return tok, nil
		}
		return tok, err
	}
	switch {
	case '0' <= r && r <= '9', r == '.':
		l.unreadRune()
		if err := l.scanNum(); err != nil {
			return tok, err
		}
		tok.text = l.buf.String()
		tok.kind = tokenNum
		return tok, nil
	default:
		if k := strings.IndexRune(Operators, r); k >= 0 {
			tok.text = operstrs[k]
			tok.kind = tokenOp
			return tok, nil
		}
		// Write the rune so that it shows up in the error message.
		l.buf.WriteRune(r)
		return tok, l.error(tok.pos, "invalid character")
	}
}

// scanNum scans a decimal literal into the lexer's buffer. A literal has at
// least one digit and at most one decimal point.
func (l *lexer) scanNum() error {
	start := l.rune
	var dig, dot bool
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if strings.ContainsRune(Operators, r) {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
		switch r {
		case '.':
			if dot {
				return l.error(start, "number with more than one decimal point")
			}
			dot = true
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			dig = true
		default:
			return l.error(start, "invalid character in number")
		}
	}
	if !dig {
		return l.error(start, "number with no digits")
	}
	return nil
}

func (l *lexer) error(col int, reason string) error {
	return &MalformedExpressionError{
		Col:    col,
		Text:   l.buf.String(),
		Reason: reason,
	}
}
