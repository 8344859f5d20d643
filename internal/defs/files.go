package defs

import "io/fs"

// Common file and directory names used across the installer.
const (
	// SettingsYAML is the optional per-project authsmith settings file.
	SettingsYAML = ".authsmith.yaml"

	// GoModFile is the host project's module definition file.
	GoModFile = "go.mod"

	// DefaultConfigFile is the host config file patched by the installer,
	// relative to the project root.
	DefaultConfigFile = "config/config.yaml"

	// DefaultMigrationDir is where generated migrations land, relative to
	// the project root.
	DefaultMigrationDir = "migrations"

	// DefaultModelDir is the package directory scanned for an existing
	// model declaration, relative to the project root.
	DefaultModelDir = "internal/models"
)

// File permissions for generated artifacts.
const (
	DirPerm  fs.FileMode = 0o755
	FilePerm fs.FileMode = 0o644
)
