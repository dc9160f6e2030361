package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/manada/internal/cli"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, &bytes.Buffer{}, false, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, false, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
}

func TestRun_Convert(t *testing.T) {
	system := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MANADA_CONFIG", system)
	require.NoError(t, os.WriteFile(filepath.Join(system, "temperature"),
		[]byte("C -> F: x * 9 / 5 + 32\nF -> C: (x - 32) * 5 / 9\n"), 0o644))

	out := &bytes.Buffer{}
	err := run(out, &bytes.Buffer{}, false, []string{"--", "temperature", "-40C", "F"})

	require.NoError(t, err)
	require.Equal(t, "-40F\n", out.String())
}

func TestRun_DefinitionErrorColor(t *testing.T) {
	system := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MANADA_CONFIG", system)
	require.NoError(t, os.WriteFile(filepath.Join(system, "broken"), []byte("a -> b: x *\n"), 0o644))

	errOut := &bytes.Buffer{}
	err := run(&bytes.Buffer{}, errOut, true, []string{"broken", "1a", "b"})

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 1, exitErr.Code)
	require.Contains(t, errOut.String(), "\033[1;4m^\033[m")
}
