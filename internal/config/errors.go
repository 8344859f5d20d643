// Package config builds the immutable run configuration that every
// generation stage receives. It combines the resolved capability set with
// environment facts discovered from the host project (module path, model
// and table names) and optional settings from .authsmith.yaml.
package config

import "errors"

// Sentinel errors for configuration building.
var (
	// ErrMissingModule indicates the host module path could not be
	// determined; it is a fatal precondition for every generation stage.
	ErrMissingModule = errors.New("config: host module path not found")

	// ErrInvalidModelSpec indicates a model override that does not parse
	// into exactly a (name, table) pair.
	ErrInvalidModelSpec = errors.New("config: model spec must be two tokens: \"Name table\"")

	// ErrInvalidSettings indicates the settings file could not be parsed.
	ErrInvalidSettings = errors.New("config: invalid settings file")
)
