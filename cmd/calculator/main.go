package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calculator/config"
	"github.com/zephyrtronium/calculator/keypad"
	"github.com/zephyrtronium/calculator/store"
)

var (
	rootCmd = &cobra.Command{
		Use:   "calculator",
		Short: "Four-function calculator with a saved display",
		Long: `Four-function calculator with a saved display.

Expressions use decimal numbers and the operators + - * / (or x for
multiplication). Multiplication and division bind more tightly than addition
and subtraction. The display is saved after every key press and restored on
the next run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return before(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	mainContext = context.Background()
	cfg         *config.Config

	configPath     string
	globalLogLevel string
	databasePath   string
	ephemeral      bool
)

func init() {
	fl := rootCmd.PersistentFlags()
	fl.StringVar(&configPath, "config", config.DefaultPath, "path to configuration file")
	fl.StringVar(&globalLogLevel, "log-level", "", "logging level (overrides config)")
	fl.StringVar(&databasePath, "db", "", "SQLite file holding the saved display (overrides config)")
	fl.BoolVar(&ephemeral, "ephemeral", false, "keep the display in memory only")
	rootCmd.AddCommand(evalCmd, pressCmd, showCmd, replCmd)
}

func before(cmd *cobra.Command) error {
	c, err := config.Load(configPath)
	switch {
	case err == nil:
		cfg = c
	case errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config"):
		cfg = config.Default()
	default:
		return err
	}
	if globalLogLevel != "" {
		cfg.LogLevel = globalLogLevel
	}
	if databasePath != "" {
		cfg.Database = databasePath
	}
	parsedLogLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("parsing log level %q: %w", cfg.LogLevel, err)
	}
	logrus.SetLevel(parsedLogLevel)
	logrus.WithFields(logrus.Fields{"config": configPath, "db": cfg.Database, "slot": cfg.Slot}).Debug("configured")
	return nil
}

// openStore opens the configured store.
func openStore(ctx context.Context) (store.Store, error) {
	if ephemeral {
		return store.NewMemory(), nil
	}
	return store.OpenSQLite(ctx, cfg.Database)
}

// withSession runs f with a session restored from the configured slot and
// closes the store afterward.
func withSession(ctx context.Context, f func(*keypad.Session) error) (err error) {
	st, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			err = multierror.Append(err, cerr).ErrorOrNil()
		}
	}()
	s, err := keypad.Open(ctx, cfg.Calculator(logrus.StandardLogger()), st, cfg.Slot)
	if err != nil {
		return err
	}
	return f(s)
}

func main() {
	if err := rootCmd.ExecuteContext(mainContext); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
