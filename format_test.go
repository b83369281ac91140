package calculator_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/zephyrtronium/calculator"
)

func TestFormatResult(t *testing.T) {
	a, b := 0.1, 0.2
	cases := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{14, "14"},
		{-3, "-3"},
		{2.5, "2.5"},
		{a + b, "0.30000000000000004"},
		{1e21, "1000000000000000000000"},
		{1e-7, "0.0000001"},
	}
	for _, c := range cases {
		if got := calculator.FormatResult(c.v); got != c.want {
			t.Errorf("formatting %v: want %q, got %q", c.v, c.want, got)
		}
	}
}

func TestFormatResultRoundTrips(t *testing.T) {
	for _, v := range []float64{1.0 / 3, 2.0 / 7, 123456.789, 1e-9, 6.02214076e23} {
		s := calculator.FormatResult(v)
		r, err := strconv.ParseFloat(s, 64)
		if err != nil {
			t.Errorf("%q: %v", s, err)
			continue
		}
		if r != v {
			t.Errorf("%v formatted as %q, which parses as %v", v, s, r)
		}
	}
}
