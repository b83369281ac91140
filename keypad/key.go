package keypad

import (
	"fmt"
	"strings"
)

// Key is a calculator button. Keys that append to the display are their own
// glyph.
type Key byte

const (
	KeyPoint  Key = '.'
	KeyAdd    Key = '+'
	KeySub    Key = '-'
	KeyMul    Key = 'x'
	KeyDiv    Key = '/'
	KeyEquals Key = '='
	KeyClear  Key = 'C'
	KeyDelete Key = 'D'
)

// operatorGlyphs are the display glyphs of the operator keys.
const operatorGlyphs = "+-x/"

// Digit returns the key for a decimal digit. Panics if d is not in [0, 9].
func Digit(d int) Key {
	if d < 0 || d > 9 {
		panic(fmt.Sprintf("keypad: invalid digit %d", d))
	}
	return Key('0' + d)
}

// IsDigit returns whether k is one of the digit keys.
func (k Key) IsDigit() bool {
	return '0' <= k && k <= '9'
}

// IsOperator returns whether k is one of the four operator keys.
func (k Key) IsOperator() bool {
	return strings.IndexByte(operatorGlyphs, byte(k)) >= 0
}

// appends returns whether pressing k appends its glyph to the display.
func (k Key) appends() bool {
	return k.IsDigit() || k == KeyPoint || k.IsOperator()
}

func (k Key) String() string {
	switch k {
	case KeyEquals:
		return "equals"
	case KeyClear:
		return "clear"
	case KeyDelete:
		return "delete"
	}
	if k.appends() {
		return string(rune(k))
	}
	return fmt.Sprintf("Key(%d)", byte(k))
}

// known returns whether k is any key on the keypad.
func (k Key) known() bool {
	switch k {
	case KeyEquals, KeyClear, KeyDelete:
		return true
	}
	return k.appends()
}

// ParseKey parses a button label. Besides the glyphs themselves, it accepts
// "*" and "×" for multiplication, "÷" for division, "=" or "equals",
// "C", "AC" or "clear", and "D", "DEL", "⌫" or "delete". Labels are
// case-insensitive.
func ParseKey(label string) (Key, error) {
	s := strings.ToLower(strings.TrimSpace(label))
	switch s {
	case "*", "x", "×":
		return KeyMul, nil
	case "÷", "/":
		return KeyDiv, nil
	case "+":
		return KeyAdd, nil
	case "-":
		return KeySub, nil
	case ".":
		return KeyPoint, nil
	case "=", "equals":
		return KeyEquals, nil
	case "c", "ac", "clear":
		return KeyClear, nil
	case "d", "del", "⌫", "delete", "backspace":
		return KeyDelete, nil
	}
	if len(s) == 1 && '0' <= s[0] && s[0] <= '9' {
		return Key(s[0]), nil
	}
	return 0, fmt.Errorf("unknown key %q", label)
}

// ParseKeys parses a sequence of button labels. A label longer than one rune
// that is not a named key is split into single-rune labels, so "12+3=" is
// five presses. Empty labels are an error.
func ParseKeys(labels ...string) ([]Key, error) {
	var keys []Key
	for _, label := range labels {
		if strings.TrimSpace(label) == "" {
			return nil, fmt.Errorf("empty key label %q", label)
		}
		if k, err := ParseKey(label); err == nil {
			keys = append(keys, k)
			continue
		}
		for _, r := range label {
			k, err := ParseKey(string(r))
			if err != nil {
				return nil, fmt.Errorf("parsing %q: %w", label, err)
			}
			keys = append(keys, k)
		}
	}
	return keys, nil
}
