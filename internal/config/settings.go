package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/authsmith/authsmith/internal/defs"
	"github.com/authsmith/authsmith/internal/resolver"
)

// Settings are optional per-project defaults read from .authsmith.yaml at
// the project root. Command-line options take precedence over settings.
type Settings struct {
	// Model is a "Name table" override for the target data model.
	Model string `yaml:"model"`

	// Repo overrides the persistence-layer package import path.
	Repo string `yaml:"repo"`

	// MigrationDir overrides where migrations are written.
	MigrationDir string `yaml:"migration_dir"`

	// ConfigFile overrides the host config file to patch.
	ConfigFile string `yaml:"config_file"`

	// LoggedOutURL overrides the unauthenticated redirect target.
	LoggedOutURL string `yaml:"logged_out_url"`
}

// LoadSettings reads .authsmith.yaml from root. A missing file yields empty
// settings; a malformed file is an error.
func LoadSettings(root string) (*Settings, error) {
	path := filepath.Join(root, defs.SettingsYAML)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Settings{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	return &s, nil
}

// ControlOptions converts the settings into pipeline-control options. They
// are applied before any command-line option so the latter win.
func (s *Settings) ControlOptions() []resolver.Option {
	var opts []resolver.Option
	if s.Model != "" {
		opts = append(opts, resolver.String("model", s.Model))
	}
	if s.Repo != "" {
		opts = append(opts, resolver.String("repo", s.Repo))
	}
	if s.MigrationDir != "" {
		opts = append(opts, resolver.String("migration-dir", s.MigrationDir))
	}
	if s.ConfigFile != "" {
		opts = append(opts, resolver.String("config-file", s.ConfigFile))
	}
	if s.LoggedOutURL != "" {
		opts = append(opts, resolver.String("logged-out-url", s.LoggedOutURL))
	}
	return opts
}
