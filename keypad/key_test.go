package keypad_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/calculator/keypad"
)

func TestParseKey(t *testing.T) {
	cases := []struct {
		label string
		want  keypad.Key
	}{
		{"0", keypad.Digit(0)},
		{"9", keypad.Digit(9)},
		{".", keypad.KeyPoint},
		{"+", keypad.KeyAdd},
		{"-", keypad.KeySub},
		{"x", keypad.KeyMul},
		{"X", keypad.KeyMul},
		{"*", keypad.KeyMul},
		{"×", keypad.KeyMul},
		{"/", keypad.KeyDiv},
		{"÷", keypad.KeyDiv},
		{"=", keypad.KeyEquals},
		{"equals", keypad.KeyEquals},
		{"C", keypad.KeyClear},
		{"clear", keypad.KeyClear},
		{"DEL", keypad.KeyDelete},
		{" delete ", keypad.KeyDelete},
	}
	for _, c := range cases {
		k, err := keypad.ParseKey(c.label)
		require.NoError(t, err, c.label)
		require.Equal(t, c.want, k, c.label)
	}
	for _, bad := range []string{"", "12", "(", "^", "y"} {
		_, err := keypad.ParseKey(bad)
		require.Error(t, err, bad)
	}
}

func TestParseKeys(t *testing.T) {
	keys, err := keypad.ParseKeys("12+3", "=", "clear", "4x")
	require.NoError(t, err)
	require.Equal(t, []keypad.Key{
		keypad.Digit(1), keypad.Digit(2), keypad.KeyAdd, keypad.Digit(3),
		keypad.KeyEquals, keypad.KeyClear, keypad.Digit(4), keypad.KeyMul,
	}, keys)

	_, err = keypad.ParseKeys("1+(2)")
	require.Error(t, err)
}

func TestKeyClasses(t *testing.T) {
	for d := 0; d <= 9; d++ {
		k := keypad.Digit(d)
		require.True(t, k.IsDigit())
		require.False(t, k.IsOperator())
	}
	for _, k := range []keypad.Key{keypad.KeyAdd, keypad.KeySub, keypad.KeyMul, keypad.KeyDiv} {
		require.True(t, k.IsOperator(), k.String())
		require.False(t, k.IsDigit())
	}
	require.False(t, keypad.KeyEquals.IsOperator())
	require.Equal(t, "x", keypad.KeyMul.String())
	require.Equal(t, "equals", keypad.KeyEquals.String())
	require.Panics(t, func() { keypad.Digit(10) })
}

func TestParseKeysRejectsEmpty(t *testing.T) {
	for _, labels := range [][]string{{""}, {"1", "", "2"}, {"  "}} {
		keys, err := keypad.ParseKeys(labels...)
		require.Error(t, err, "%q", labels)
		require.Nil(t, keys)
	}
}
