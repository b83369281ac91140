// Package keypad turns calculator keystrokes into display states.
//
// The calculator state is an explicit State value. Calculator.Press takes a
// state and a key and returns the next state, so any sequence of presses can
// be replayed and tested without a display. Session adds persistence of the
// display through a store.Store.
package keypad

import (
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/zephyrtronium/calculator"
)

const (
	// DefaultMaxMagnitude is the largest result magnitude that is displayed.
	DefaultMaxMagnitude = 9.99999999e99
	// DefaultDisplayLimit is the number of characters that fit on the
	// display.
	DefaultDisplayLimit = 12
)

// Display markers for failed states.
const (
	ErrorMarker = "Error"
	LimitMarker = "Limit Exceeded"
)

// State is what the calculator shows. Err marks a failure display, which the
// next key press clears before it takes effect.
type State struct {
	Display string
	Err     bool
}

// Calculator holds the limits applied to keystrokes and results. The zero
// value uses the defaults and the standard logrus logger.
type Calculator struct {
	// MaxMagnitude is the largest absolute value a result may have.
	MaxMagnitude float64
	// DisplayLimit is the maximum number of characters on the display.
	DisplayLimit int
	// Log receives debug messages about failed evaluations.
	Log logrus.FieldLogger
}

func (c Calculator) maxMagnitude() float64 {
	if c.MaxMagnitude <= 0 {
		return DefaultMaxMagnitude
	}
	return c.MaxMagnitude
}

func (c Calculator) displayLimit() int {
	if c.DisplayLimit <= 0 {
		return DefaultDisplayLimit
	}
	return c.DisplayLimit
}

func (c Calculator) log() logrus.FieldLogger {
	if c.Log == nil {
		return logrus.StandardLogger()
	}
	return c.Log
}

// Press applies a key to a state and returns the resulting state.
func (c Calculator) Press(s State, k Key) State {
	if !k.known() {
		c.log().WithField("key", k).Warn("ignoring unknown key")
		return s
	}
	if s.Err {
		s = State{}
	}
	switch {
	case k == KeyClear:
		s.Display = ""
	case k == KeyDelete:
		if s.Display != "" {
			_, sz := utf8.DecodeLastRuneInString(s.Display)
			s.Display = s.Display[:len(s.Display)-sz]
		}
	case k == KeyEquals:
		expr := strings.TrimSpace(s.Display)
		if expr == "" {
			s.Display = ""
			break
		}
		r, err := c.Evaluate(expr)
		if err != nil {
			c.log().WithFields(logrus.Fields{"expr": expr, "err": err}).Debug("evaluation failed")
			s = State{Display: ErrorMarker, Err: true}
			break
		}
		s.Display = calculator.FormatResult(r)
	case k.IsOperator():
		if endsWithOperator(s.Display) {
			return s
		}
		s.Display += string(rune(k))
	case k.appends():
		s.Display += string(rune(k))
	}
	if err := CheckLength(s.Display, c.displayLimit()); err != nil {
		c.log().WithFields(logrus.Fields{"display": s.Display, "err": err}).Debug("display limit exceeded")
		s = State{Display: LimitMarker, Err: true}
	}
	return s
}

// Evaluate computes the value of a display string the way the equals key
// does: keypad multiplication glyphs become *, the text passes Precheck, and
// the result passes CheckMagnitude.
func (c Calculator) Evaluate(display string) (float64, error) {
	expr := strings.ReplaceAll(strings.TrimSpace(display), string(calculator.AltMultiply), "*")
	if err := Precheck(expr); err != nil {
		return 0, err
	}
	r, err := calculator.Evaluate(expr)
	if err != nil {
		return 0, err
	}
	if err := CheckMagnitude(r, c.maxMagnitude()); err != nil {
		return 0, err
	}
	return r, nil
}

func endsWithOperator(display string) bool {
	if display == "" {
		return false
	}
	return strings.IndexByte(operatorGlyphs, display[len(display)-1]) >= 0
}
