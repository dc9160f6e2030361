package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// EnvDir names the environment variable that overrides DefaultSystemDir.
const EnvDir = "MANADA_CONFIG"

// DefaultSystemDir is the system-wide directory searched after the user's.
const DefaultSystemDir = "/etc/manada"

// NotFoundError reports that no candidate path exists for a file.
type NotFoundError struct {
	Name string
	// Candidates lists every path that was tried, in search order.
	Candidates []string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	switch len(e.Candidates) {
	case 0:
		return fmt.Sprintf("no directory to look for %s in", e.Name)
	case 1:
		return fmt.Sprintf("%s doesn't exist", e.Candidates[0])
	default:
		return fmt.Sprintf("neither %s nor %s exist", e.Candidates[0], e.Candidates[1])
	}
}

// Is makes a NotFoundError match os.ErrNotExist.
func (e *NotFoundError) Is(target error) bool {
	return target == os.ErrNotExist
}

// SearchDirs returns the directories searched for definition and settings
// files: the user's config directory followed by $MANADA_CONFIG, or
// /etc/manada when that is unset. The user directory is left out when the
// platform has none.
func SearchDirs() []string {
	var dirs []string
	if home, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, "manada"))
	}
	system := os.Getenv(EnvDir)
	if system == "" {
		system = DefaultSystemDir
	}
	return append(dirs, system)
}

// FilePath returns the first existing path for name in SearchDirs.
//
// Example:
//
//	path, err := config.FilePath("length")
//	// ~/.config/manada/length, or /etc/manada/length
func FilePath(name string) (string, error) {
	return Find(name, SearchDirs()...)
}

// Find returns the first existing path for name in dirs.
// Returns *NotFoundError when none exists.
func Find(name string, dirs ...string) (string, error) {
	candidates := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("stat %s: %w", path, err)
		}
		candidates = append(candidates, path)
	}
	return "", &NotFoundError{Name: name, Candidates: candidates}
}
