package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/authsmith/authsmith/internal/catalog"
	"github.com/authsmith/authsmith/internal/defs"
	"github.com/authsmith/authsmith/internal/resolver"
)

// timestampLayout encodes wall-clock time as a sortable integer seed.
const timestampLayout = "20060102150405"

var titleCaser = cases.Title(language.English, cases.NoLower)

// Build combines the resolved capability set, the pass-through control
// options, and the environment facts into one Run record. It is pure: no
// side effects, and the only failure paths are precondition violations
// (missing module path, malformed model spec).
func Build(caps catalog.Set, controls []resolver.Option, env Environment) (Run, error) {
	if env.Module == "" {
		return Run{}, ErrMissingModule
	}
	clock := env.Clock
	if clock == nil {
		clock = SystemClock{}
	}

	run := Run{
		Capabilities: caps.Clone(),
		RequireEmail: caps.RequiresEmail(),
		Module:       env.Module,
		ProjectRoot:  env.ProjectRoot,
		ModelName:    "User",
		TableName:    TableFor("User"),
		LoggedOutURL: "/",
		Stages:       allStages(),
		ConfigFile:   defs.DefaultConfigFile,
		MigrationDir: defs.DefaultMigrationDir,
	}

	for _, o := range controls {
		switch v := o.Value.(type) {
		case bool:
			applyStage(&run.Stages, o.Name, v)
		case string:
			switch o.Name {
			case "model":
				name, table, err := parseModelSpec(v)
				if err != nil {
					return Run{}, err
				}
				run.ModelName = name
				run.TableName = table
			case "repo":
				run.RepoPkg = v
			case "migration-dir":
				run.MigrationDir = v
			case "config-file":
				run.ConfigFile = v
			case "logged-out-url":
				run.LoggedOutURL = v
			}
		}
	}

	if run.RepoPkg == "" {
		run.RepoPkg = env.Module + "/internal/store"
	}

	seed, err := strconv.ParseInt(clock.Now().Format(timestampLayout), 10, 64)
	if err != nil {
		return Run{}, fmt.Errorf("config: timestamp seed: %w", err)
	}
	run.Timestamp = seed

	return run, nil
}

// applyStage flips a single stage switch by control name. Unknown boolean
// controls are ignored; the resolver has already validated names.
func applyStage(s *Stages, name string, v bool) {
	switch name {
	case "config":
		s.Config = v
	case "web":
		s.Web = v
	case "views":
		s.Views = v
	case "migrations":
		s.Migrations = v
	case "templates":
		s.Templates = v
	case "models":
		s.Models = v
	case "controllers":
		s.Controllers = v
	}
}

// parseModelSpec splits a model override into its (name, table) pair. The
// spec must contain exactly two whitespace-separated tokens. The name is
// title-cased to form an exported Go identifier; a bare name would leave
// the table ambiguous, so it is rejected rather than inflected silently.
func parseModelSpec(spec string) (string, string, error) {
	tokens := strings.Fields(spec)
	if len(tokens) != 2 {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidModelSpec, spec)
	}
	name := titleCaser.String(tokens[0])
	return name, tokens[1], nil
}

// TableFor derives a table name from a model name by inflection, e.g.
// "AdminUser" becomes "admin_users". Used when only a model name is known.
func TableFor(model string) string {
	return inflect.Tableize(model)
}
