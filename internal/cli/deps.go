// Package cli provides the Cobra command tree and the dependency wiring
// for the authsmith CLI. This file is the Composition Root: the only place
// concrete types are instantiated and wired together.
package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/authsmith/authsmith/internal/migration"
	"github.com/authsmith/authsmith/internal/patcher"
	"github.com/authsmith/authsmith/internal/pipeline"
	"github.com/authsmith/authsmith/internal/probe"
	"github.com/authsmith/authsmith/internal/template"
	"github.com/authsmith/authsmith/internal/ui"
)

// Dependencies holds the services used by CLI commands. Commands access
// them through interfaces only.
type Dependencies struct {
	Headless *ui.HeadlessManager
	Printer  *ui.Printer
	Pipeline *pipeline.Pipeline
	Logger   *slog.Logger
}

// deps is the package-level dependencies instance, initialized by
// InitDependencies.
var deps *Dependencies

// InitDependencies creates and wires all dependencies. Called once during
// startup; verbose switches the discard logger for a stderr text handler.
func InitDependencies(verbose bool) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	headless := ui.NewHeadlessManager()
	confirmer := ui.NewConsoleConfirmer(headless)

	deps = &Dependencies{
		Headless: headless,
		Printer:  ui.NewPrinter(os.Stdout, headless),
		Pipeline: pipeline.New(pipeline.Options{
			Probe:      probe.New(logger),
			Planner:    migration.NewPlanner(logger),
			Patcher:    patcher.New(confirmer, logger),
			Scaffolder: template.NewScaffolder(logger),
			Logger:     logger,
		}),
		Logger: logger,
	}
}

// GetDeps returns the current Dependencies instance, or nil before
// InitDependencies has run.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the package-level dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}
