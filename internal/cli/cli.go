package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
)

// ExitError is a custom error type that includes a specific exit code.
// An empty Message means the error was already reported.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Config is the parsed command line.
type Config struct {
	// UnitSet names the definition document, e.g. "length".
	UnitSet string
	// Value and Unit come from the VALUE argument, e.g. "5km".
	Value decimal.Decimal
	Unit  string
	// Destination is the unit to convert into.
	Destination string

	Explain     bool
	HistoryPath string
	ShowHistory int
	LogFormat   string
	LogLevel    string
}

// Converts reports whether a conversion was requested, as opposed to only
// listing history.
func (c *Config) Converts() bool {
	return c.UnitSet != ""
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("manada", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
manada - convert values between units of a unit set.

Usage:
  manada [options] UNIT_SET VALUE DESTINATION
  manada -history FILE -show-history N

Arguments:
  UNIT_SET     Name of a definition file in ~/.config/manada or $MANADA_CONFIG.
  VALUE        A number directly followed by its unit, e.g. 5km or 2.5h.
  DESTINATION  The unit to convert into.

Negative values need "--" before the arguments: manada -- temperature -40C F

Options:
`)
		flagSet.PrintDefaults()
	}

	explainFlag := flagSet.Bool("explain", false, "Print every conversion step.")
	historyFlag := flagSet.String("history", "", "SQLite file to record conversions in.")
	showHistoryFlag := flagSet.Int("show-history", 0, "Print the last N recorded conversions. Requires -history.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	if *showHistoryFlag < 0 {
		return nil, false, usageError("invalid show-history: must not be negative")
	}
	if *showHistoryFlag > 0 && *historyFlag == "" {
		return nil, false, usageError("show-history requires -history")
	}

	cfg := &Config{
		Explain:     *explainFlag,
		HistoryPath: *historyFlag,
		ShowHistory: *showHistoryFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	}

	switch flagSet.NArg() {
	case 0:
		if cfg.ShowHistory > 0 {
			return cfg, false, nil
		}
		flagSet.Usage()
		return nil, true, nil
	case 3:
	default:
		return nil, false, usageError("expected UNIT_SET VALUE DESTINATION, got %d argument(s)", flagSet.NArg())
	}

	value, unit, err := ParseValue(flagSet.Arg(1))
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	cfg.UnitSet = flagSet.Arg(0)
	cfg.Value = value
	cfg.Unit = unit
	cfg.Destination = flagSet.Arg(2)

	slog.Debug("CLI parser finished successfully.", "unit_set", cfg.UnitSet, "unit", cfg.Unit)
	return cfg, false, nil
}
