package config

import (
	"github.com/authsmith/authsmith/internal/catalog"
)

// Stages holds the per-stage generation switches. Every switch defaults to
// on and is turned off through pipeline-control options.
type Stages struct {
	Config      bool
	Web         bool
	Views       bool
	Migrations  bool
	Templates   bool
	Models      bool
	Controllers bool
}

// allStages returns Stages with every switch enabled.
func allStages() Stages {
	return Stages{
		Config:      true,
		Web:         true,
		Views:       true,
		Migrations:  true,
		Templates:   true,
		Models:      true,
		Controllers: true,
	}
}

// Run is the resolved configuration threaded through the generation
// pipeline. It is treated as an immutable value: stages receive a Run and
// return an updated copy; only the timestamp counter advances.
type Run struct {
	// Capabilities is the final deduplicated set of enabled capabilities.
	Capabilities catalog.Set

	// RequireEmail is true iff an enabled capability needs email dispatch.
	RequireEmail bool

	// Module is the host project's module path (base namespace).
	Module string

	// ProjectRoot is the host project root directory.
	ProjectRoot string

	// ModelName and TableName identify the target data model.
	ModelName string
	TableName string

	// RepoPkg is the persistence-layer package import path.
	RepoPkg string

	// LoggedOutURL is where unauthenticated users are redirected.
	LoggedOutURL string

	// Stages holds the per-stage generation switches.
	Stages Stages

	// ConfigFile is the host config file to patch, relative to ProjectRoot.
	ConfigFile string

	// MigrationDir is where migrations are written, relative to ProjectRoot.
	MigrationDir string

	// ModelFound caches the model probe result. It decides the main
	// migration verb and whether a model scaffold is generated.
	ModelFound bool

	// Timestamp is the next migration timestamp (YYYYMMDDHHMMSS as an
	// integer). It strictly increases across plans within one run.
	Timestamp int64
}

// WithModelFound returns a copy of r with the probe result cached.
func (r Run) WithModelFound(found bool) Run {
	r.ModelFound = found
	return r
}

// NextTimestamp returns the timestamp to assign to the next migration and a
// copy of r with the counter advanced, guaranteeing strictly increasing
// values in generation order.
func (r Run) NextTimestamp() (int64, Run) {
	ts := r.Timestamp
	r.Timestamp = ts + 1
	return ts, r
}
