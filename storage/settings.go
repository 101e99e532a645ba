package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Settings is the user-tunable application state. Zero values fall back to
// defaults at load time, so old files keep working when fields are added.
type Settings struct {
	ScummVMPath string `json:"scummvm_path"`
	// ConfigPath overrides the platform default location of scummvm.ini.
	ConfigPath  string `json:"config_path,omitempty"`
	Fullscreen  bool   `json:"fullscreen"`
	DefaultSort string `json:"default_sort"`
}

func DefaultSettings() Settings {
	return Settings{
		ScummVMPath: "scummvm",
		DefaultSort: "name_asc",
	}
}

// LoadSettings reads the settings document. A missing file is not an error;
// it returns the defaults.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return Settings{}, err
	}

	s := DefaultSettings()
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	if s.ScummVMPath == "" {
		s.ScummVMPath = "scummvm"
	}
	if s.DefaultSort == "" {
		s.DefaultSort = "name_asc"
	}
	return s, nil
}

func SaveSettings(path string, s Settings) error {
	return writeJSONAtomic(path, s)
}
