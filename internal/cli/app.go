package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"

	"github.com/randalmurphal/manada/pkg/manada"
	"github.com/randalmurphal/manada/pkg/manada/config"
	"github.com/randalmurphal/manada/pkg/manada/diag"
	"github.com/randalmurphal/manada/pkg/manada/history"
)

// App runs the manada command against a set of search directories.
type App struct {
	Stdout io.Writer
	Stderr io.Writer
	// Dirs are searched for unit sets and their settings.
	// Defaults to config.SearchDirs().
	Dirs []string
	// Color enables ANSI highlighting of definition errors.
	Color bool
}

// Run executes cfg. Failures are returned as *ExitError; definition errors
// are rendered to Stderr before returning.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	logger := NewLogger(cfg.LogLevel, cfg.LogFormat, a.Stderr)
	dirs := a.Dirs
	if dirs == nil {
		dirs = config.SearchDirs()
	}

	var store history.Store
	if cfg.HistoryPath != "" {
		s, err := history.NewSQLiteStore(cfg.HistoryPath)
		if err != nil {
			return &ExitError{Code: 1, Message: fmt.Sprintf("Can't open history %s (%v)", cfg.HistoryPath, err)}
		}
		defer s.Close()
		store = s
	}

	if cfg.Converts() {
		if err := a.convert(ctx, cfg, dirs, logger, store); err != nil {
			return err
		}
	}

	if cfg.ShowHistory > 0 && store != nil {
		return a.showHistory(store, cfg.ShowHistory)
	}
	return nil
}

func (a *App) convert(ctx context.Context, cfg *Config, dirs []string, logger *slog.Logger, store history.Store) error {
	path, err := config.Find(cfg.UnitSet, dirs...)
	if err != nil {
		return &ExitError{Code: 1, Message: err.Error()}
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return &ExitError{Code: 1, Message: fmt.Sprintf("Can't read file %s (%v)", path, err)}
	}

	g, err := manada.BuildContext(ctx, string(content), manada.WithLogger(logger))
	if err != nil {
		if rerr := diag.Render(a.Stderr, path, err, diag.Options{Color: a.Color}); rerr != nil {
			return &ExitError{Code: 1, Message: err.Error()}
		}
		return &ExitError{Code: 1}
	}

	settings, settingsPath, err := config.LoadSettings(cfg.UnitSet, dirs...)
	if err != nil {
		if settingsPath == "" {
			return &ExitError{Code: 1, Message: err.Error()}
		}
		return &ExitError{Code: 1, Message: fmt.Sprintf("Can't parse %s: %v", settingsPath, err)}
	}

	from := settings.Aliases.Resolve(cfg.Unit)
	to := settings.Aliases.Resolve(cfg.Destination)

	start, ok := g.Lookup(from)
	if !ok {
		return &ExitError{Code: 1, Message: fmt.Sprintf("There is no %s in %s", from, cfg.UnitSet)}
	}

	res, err := manada.NewResolver(g, manada.WithLogger(logger)).Resolve(ctx, start, to, cfg.Value)
	if err != nil {
		return conversionExit(cfg.UnitSet, from, to, err)
	}

	if cfg.Explain || settings.Explain {
		for _, s := range res.Steps {
			fmt.Fprintf(a.Stdout, "%s%s -> %s%s  (%s)\n", s.Input, s.From, s.Output, s.To, s.Expr)
		}
	}
	fmt.Fprintf(a.Stdout, "%s%s\n", format(res.Value, settings.Precision), to)

	if store != nil {
		r := history.NewRecord(cfg.UnitSet, from, to, cfg.Value, res.Value, len(res.Steps))
		if err := store.Save(r); err != nil {
			logger.Warn("conversion not recorded", slog.String("error", err.Error()))
		}
	}
	return nil
}

func (a *App) showHistory(store history.Store, n int) error {
	records, err := store.List(n)
	if err != nil {
		return &ExitError{Code: 1, Message: fmt.Sprintf("Can't read history (%v)", err)}
	}
	for _, r := range records {
		fmt.Fprintf(a.Stdout, "%s  %s\n", r.Timestamp.Local().Format("2006-01-02 15:04:05"), r)
	}
	return nil
}

// conversionExit maps a conversion failure to its user-facing message.
func conversionExit(unitSet, from, to string, err error) *ExitError {
	var msg string
	switch {
	case errors.Is(err, manada.ErrUnitNotFound):
		msg = fmt.Sprintf("There is no %s in %q", to, unitSet)
	case errors.Is(err, manada.ErrNoPathFound):
		msg = fmt.Sprintf("A conversion from %s to %s isn't possible.", from, to)
	case errors.Is(err, manada.ErrCalculationFailed):
		var calc *manada.CalculationError
		if errors.As(err, &calc) {
			msg = fmt.Sprintf("The calculation failed at %s -> %s: %s with x = %s (%v)",
				calc.From, calc.To, calc.Expr, calc.Input, calc.Err)
		} else {
			msg = "The calculation failed"
		}
	default:
		msg = err.Error()
	}
	return &ExitError{Code: 1, Message: msg}
}

// format rounds v to precision decimal places unless precision is negative.
func format(v decimal.Decimal, precision int) string {
	if precision >= 0 {
		v = v.Round(int32(precision))
	}
	return v.String()
}
