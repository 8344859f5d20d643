package template

import (
	"slices"
	"time"

	"github.com/go-openapi/inflect"

	"github.com/authsmith/authsmith/internal/config"
	"github.com/authsmith/authsmith/pkg/version"
)

// Context provides the data visible to every template. All fields are
// exported for use with text/template.
type Context struct {
	// Host project
	Module  string
	RepoPkg string

	// Target model
	ModelName string // "User"
	ModelVar  string // "user"
	ModelFile string // "user" (snake case, file stem)
	TableName string // "users"

	// Resolved features
	Capabilities []string // canonical order
	RequireEmail bool

	LoggedOutURL string

	// Meta
	Version     string
	GeneratedAt string
}

// NewContext builds the template context from a run configuration.
func NewContext(run config.Run, now time.Time) *Context {
	return &Context{
		Module:       run.Module,
		RepoPkg:      run.RepoPkg,
		ModelName:    run.ModelName,
		ModelVar:     inflect.CamelizeDownFirst(run.ModelName),
		ModelFile:    inflect.Underscore(run.ModelName),
		TableName:    run.TableName,
		Capabilities: run.Capabilities.Names(),
		RequireEmail: run.RequireEmail,
		LoggedOutURL: run.LoggedOutURL,
		Version:      version.GetVersion(),
		GeneratedAt:  now.UTC().Format(time.RFC3339),
	}
}

// Has reports whether the named capability is enabled; used by templates to
// gate optional sections.
func (c *Context) Has(name string) bool {
	return slices.Contains(c.Capabilities, name)
}
