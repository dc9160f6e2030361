/*
Package config locates unit-set files and reads their settings.

# Search Path

Definition documents and settings files are looked up by name in two
directories, the first hit winning:

  - <user config dir>/manada, e.g. ~/.config/manada on Linux
  - $MANADA_CONFIG, or /etc/manada when the variable is unset

	path, err := config.FilePath("length")
	var nf *config.NotFoundError
	if errors.As(err, &nf) {
	    log.Fatal(nf) // neither ~/.config/manada/length nor /etc/manada/length exist
	}

# Settings

A unit set may have a settings file next to it named after the set with a
.toml, .yaml, .yml or .json extension:

	# length.toml
	precision = 3
	explain = false

	[aliases]
	m = ["meter", "metre"]
	km = ["kilometer"]

	s, path, err := config.LoadSettings("length", config.SearchDirs()...)
	unit := s.Aliases.Resolve("metre") // "m"

A missing settings file is not an error; DefaultSettings applies.

# Typed Access

Config wraps the decoded map and provides typed accessors that return a
default on a missing key or a type mismatch:

	cfg, err := config.FromFile("length.yaml")
	precision := cfg.Int("precision", -1)
	aliases := cfg.Map("aliases")

Int accepts int (YAML), int64 (TOML) and integral float64 (JSON) values.

# Thread Safety

Config is safe for concurrent read access. The underlying map is not
modified after creation.
*/
package config
