// Package scummvm reads the externally owned ScummVM state: the scummvm.ini
// configuration file and the scummvm executable itself.
package scummvm

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/ini.v1"

	"scummvm-front/games"
)

// ErrConfigNotFound means no ScummVM configuration exists. Callers treat it
// as an empty library, not a failure.
var ErrConfigNotFound = errors.New("scummvm configuration not found")

// ParseError reports a malformed configuration file. The caller keeps the
// previous catalog when it sees one.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse scummvm config %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// DefaultConfigPath returns where ScummVM keeps its configuration on the
// current platform.
func DefaultConfigPath() (string, error) {
	switch runtime.GOOS {
	case "windows":
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "ScummVM", "scummvm.ini"), nil
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Preferences", "ScummVM", "Preferences"), nil
	default:
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "scummvm", "scummvm.ini"), nil
	}
}

// LoadCatalog parses the configuration file at path and returns one catalog
// entry per configured game target, in file order. The file is treated as
// opaque sectioned key/value data owned by ScummVM; only a handful of keys
// are read and nothing is ever written back.
func LoadCatalog(path string) (*games.Catalog, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w (looked at %s)", ErrConfigNotFound, path)
		}
		return nil, err
	}

	cfg, err := ini.Load(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	catalog := games.NewCatalog()
	for _, sec := range cfg.Sections() {
		name := sec.Name()
		if name == ini.DefaultSection || name == "scummvm" {
			// global ScummVM settings, not a game target
			continue
		}
		g := games.Game{
			ID:        name,
			Title:     sec.Key("description").String(),
			Engine:    sec.Key("engineid").String(),
			Platform:  sec.Key("platform").String(),
			Path:      sec.Key("path").String(),
			IconName:  sec.Key("gameid").String(),
			Installed: true,
		}
		if g.Title == "" {
			g.Title = name
		}
		if err := catalog.Add(g); err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
	}
	return catalog, nil
}
