package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calculator"
	"github.com/zephyrtronium/calculator/keypad"
)

var (
	evalCmd = &cobra.Command{
		Use:   "eval EXPR...",
		Short: "Evaluate expressions without touching the display",
		Args:  cobra.MinimumNArgs(1),
		RunE:  eval,
	}
	pressCmd = &cobra.Command{
		Use:   "press KEY...",
		Short: "Press keys on the saved display",
		Long: `Press keys on the saved display and print the result.

Keys are 0-9 . + - x / = plus C (clear) and D (delete). An argument that is
not a single key is split into one key per character, so "12+3=" is five
presses.`,
		Args: cobra.MinimumNArgs(1),
		RunE: press,
	}
	showCmd = &cobra.Command{
		Use:   "show",
		Short: "Print the saved display",
		Args:  cobra.NoArgs,
		RunE:  show,
	}
	replCmd = &cobra.Command{
		Use:   "repl",
		Short: "Read keys from standard input, one line at a time",
		Args:  cobra.NoArgs,
		RunE:  repl,
	}

	verb string
)

func init() {
	evalCmd.Flags().StringVar(&verb, "fmt", "", "result formatting verb, e.g. %g (default shortest decimal)")
}

func eval(cmd *cobra.Command, args []string) error {
	c := cfg.Calculator(logrus.StandardLogger())
	out := cmd.OutOrStdout()
	var failed bool
	for _, arg := range args {
		r, err := c.Evaluate(arg)
		if err != nil {
			failed = true
			fmt.Fprintf(out, "%s: %v\n", arg, err)
			continue
		}
		if verb != "" {
			fmt.Fprintf(out, verb+"\n", r)
			continue
		}
		fmt.Fprintln(out, calculator.FormatResult(r))
	}
	if failed {
		return errors.New("some expressions failed to evaluate")
	}
	return nil
}

func press(cmd *cobra.Command, args []string) error {
	keys, err := keypad.ParseKeys(args...)
	if err != nil {
		return err
	}
	return withSession(cmd.Context(), func(s *keypad.Session) error {
		if err := s.Press(cmd.Context(), keys...); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s.State().Display)
		return nil
	})
}

func show(cmd *cobra.Command, args []string) error {
	return withSession(cmd.Context(), func(s *keypad.Session) error {
		fmt.Fprintln(cmd.OutOrStdout(), s.State().Display)
		return nil
	})
}

func repl(cmd *cobra.Command, args []string) error {
	return withSession(cmd.Context(), func(s *keypad.Session) error {
		return runREPL(cmd, cmd.InOrStdin(), s)
	})
}

func runREPL(cmd *cobra.Command, in io.Reader, s *keypad.Session) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, s.State().Display)
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		keys, err := keypad.ParseKeys(strings.Fields(line)...)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		if err := s.Press(cmd.Context(), keys...); err != nil {
			return err
		}
		fmt.Fprintln(out, s.State().Display)
	}
	return sc.Err()
}
