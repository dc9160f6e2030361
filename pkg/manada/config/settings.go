package config

import (
	"errors"
	"slices"
)

// Aliases maps a canonical unit name to its alternative names.
type Aliases map[string][]string

// Canonical returns the canonical unit for name. Keys match before any
// alias, and keys are tried in sorted order, so a name listed under several
// keys always resolves to the same one.
func (a Aliases) Canonical(name string) (string, bool) {
	if _, ok := a[name]; ok {
		return name, true
	}
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if slices.Contains(a[k], name) {
			return k, true
		}
	}
	return "", false
}

// Resolve returns the canonical unit for name, or name itself when it is
// not aliased.
func (a Aliases) Resolve(name string) string {
	if c, ok := a.Canonical(name); ok {
		return c
	}
	return name
}

// AliasesFrom reads the "aliases" table of cfg. Entries whose value is not a
// string or a list of strings are skipped.
func AliasesFrom(cfg Config) Aliases {
	table := cfg.Map("aliases")
	aliases := make(Aliases, len(table.Raw()))
	for _, k := range table.Keys() {
		if names := table.StringSlice(k, nil); names != nil {
			aliases[k] = names
		}
	}
	return aliases
}

// Settings are the per-unit-set options read from "<unit set>.toml" (or
// .yaml, .yml, .json) next to the definition document.
type Settings struct {
	// Aliases resolves abbreviations to unit names used in the document.
	Aliases Aliases
	// Precision is the number of decimal places results are rounded to,
	// or -1 to print them unrounded.
	Precision int
	// Explain prints every conversion step by default.
	Explain bool
}

// DefaultSettings returns the settings used when no settings file exists.
func DefaultSettings() Settings {
	return Settings{Aliases: Aliases{}, Precision: -1}
}

// SettingsFrom extracts Settings from cfg.
func SettingsFrom(cfg Config) Settings {
	return Settings{
		Aliases:   AliasesFrom(cfg),
		Precision: cfg.Int("precision", -1),
		Explain:   cfg.Bool("explain", false),
	}
}

// LoadSettings finds and reads the settings file for a unit set in dirs,
// returning it with the path it was read from. Earlier directories win over
// later ones; within a directory Extensions decides.
//
// A missing file yields DefaultSettings and no error. A file that exists
// but cannot be read or parsed is an error.
func LoadSettings(unitSet string, dirs ...string) (Settings, string, error) {
	for _, dir := range dirs {
		for _, ext := range Extensions {
			path, err := Find(unitSet+ext, dir)
			var nf *NotFoundError
			if errors.As(err, &nf) {
				continue
			}
			if err != nil {
				return Settings{}, "", err
			}
			cfg, err := FromFile(path)
			if err != nil {
				return Settings{}, path, err
			}
			return SettingsFrom(cfg), path, nil
		}
	}
	return DefaultSettings(), "", nil
}
