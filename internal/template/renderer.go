package template

import (
	"bytes"
	"fmt"
	"io/fs"
	"regexp"
	"text/template"

	"github.com/go-openapi/inflect"
)

// templateFuncMap provides custom functions available in all templates.
var templateFuncMap = template.FuncMap{
	// snake converts CamelCase to snake_case.
	"snake": inflect.Underscore,
	// tableize derives a plural table name from a model name.
	"tableize": inflect.Tableize,
	// camel lower-camel-cases an identifier.
	"camel": inflect.CamelizeDownFirst,
}

// unexpandedTokenPattern detects leftover dynamic tokens in rendered output.
var unexpandedTokenPattern = regexp.MustCompile(`\{\{\.?[A-Za-z_][A-Za-z0-9_.]*\}\}`)

// Renderer renders Go text/template files with strict mode enabled.
type Renderer interface {
	// Render parses the named template from the backing FS and executes
	// it with the given data. Returns ErrMissingTemplateKey if a key is
	// missing and ErrUnexpandedToken if tokens remain after rendering.
	Render(templateName string, data any) ([]byte, error)
}

// renderer is the concrete implementation of Renderer.
type renderer struct {
	fsys fs.FS
}

// NewRenderer creates a Renderer backed by the given filesystem. In
// production the fs.FS comes from go:embed; in tests use fstest.MapFS.
func NewRenderer(fsys fs.FS) Renderer {
	return &renderer{fsys: fsys}
}

// Render parses and executes a template with missingkey=error.
func (r *renderer) Render(templateName string, data any) ([]byte, error) {
	content, err := fs.ReadFile(r.fsys, templateName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateName)
	}

	tmpl, err := template.New(templateName).
		Funcs(templateFuncMap).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("template parse %q: %w", templateName, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingTemplateKey, err)
	}

	result := buf.Bytes()
	if loc := unexpandedTokenPattern.Find(result); loc != nil {
		return nil, fmt.Errorf("%w: found %q", ErrUnexpandedToken, string(loc))
	}

	return result, nil
}
