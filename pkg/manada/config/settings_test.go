package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/manada/pkg/manada/config"
)

func TestFind(t *testing.T) {
	home, system := t.TempDir(), t.TempDir()
	writeFile(t, system, "length", "km -> m: x * 1000")

	path, err := config.Find("length", home, system)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(system, "length"), path)

	writeFile(t, home, "length", "km -> m: x * 1000")
	path, err = config.Find("length", home, system)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "length"), path)
}

func TestFind_NotFound(t *testing.T) {
	home, system := t.TempDir(), t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(home, "time"), 0o755))

	_, err := config.Find("time", home, system)
	require.ErrorIs(t, err, os.ErrNotExist)

	var nf *config.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, []string{filepath.Join(home, "time"), filepath.Join(system, "time")}, nf.Candidates)
	assert.Equal(t, "neither "+nf.Candidates[0]+" nor "+nf.Candidates[1]+" exist", err.Error())

	_, err = config.Find("time", system)
	assert.Equal(t, filepath.Join(system, "time")+" doesn't exist", err.Error())
}

func TestSearchDirs(t *testing.T) {
	t.Setenv(config.EnvDir, "/opt/units")
	dirs := config.SearchDirs()
	require.NotEmpty(t, dirs)
	assert.Equal(t, "/opt/units", dirs[len(dirs)-1])

	t.Setenv(config.EnvDir, "")
	dirs = config.SearchDirs()
	assert.Equal(t, config.DefaultSystemDir, dirs[len(dirs)-1])
}

func TestFilePath(t *testing.T) {
	system := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(config.EnvDir, system)
	want := writeFile(t, system, "volume", "l -> ml: x * 1000")

	path, err := config.FilePath("volume")
	require.NoError(t, err)
	assert.Equal(t, want, path)
}

func TestAliases_Canonical(t *testing.T) {
	aliases := config.Aliases{
		"m":  {"meter", "metre"},
		"km": {"kilometer", "k"},
		"kg": {"kilogram", "k"},
		"s":  {"m"},
	}

	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"m", "m", true},
		{"metre", "m", true},
		{"kilometer", "km", true},
		{"k", "kg", true},
		{"furlong", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := aliases.Canonical(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, "furlong", aliases.Resolve("furlong"))
	assert.Equal(t, "m", aliases.Resolve("meter"))
}

func TestAliasesFrom(t *testing.T) {
	cfg := config.New(map[string]any{
		"aliases": map[string]any{
			"m":   []any{"meter"},
			"km":  "kilometer",
			"bad": 3,
		},
	})

	assert.Equal(t, config.Aliases{"m": {"meter"}, "km": {"kilometer"}}, config.AliasesFrom(cfg))
	assert.Empty(t, config.AliasesFrom(config.New(nil)))
}

func TestLoadSettings(t *testing.T) {
	home, system := t.TempDir(), t.TempDir()

	s, path, err := config.LoadSettings("length", home, system)
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, config.DefaultSettings(), s)

	writeFile(t, system, "length.toml", "precision = 1\n[aliases]\nm = [\"metre\"]\n")
	s, path, err = config.LoadSettings("length", home, system)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(system, "length.toml"), path)
	assert.Equal(t, 1, s.Precision)
	assert.Equal(t, "m", s.Aliases.Resolve("metre"))

	want := writeFile(t, home, "length.yaml", "explain: true\n")
	s, path, err = config.LoadSettings("length", home, system)
	require.NoError(t, err)
	assert.Equal(t, want, path)
	assert.True(t, s.Explain)
	assert.Equal(t, -1, s.Precision)
}

func TestLoadSettings_ParseError(t *testing.T) {
	dir := t.TempDir()
	want := writeFile(t, dir, "length.json", "{")

	_, path, err := config.LoadSettings("length", dir)
	assert.Error(t, err)
	assert.Equal(t, want, path)
}
