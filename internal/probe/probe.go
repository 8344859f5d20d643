// Package probe answers one question early in the pipeline: does a data
// model with the target name already exist in the host project? The answer
// decides the main migration verb and whether a model scaffold is written.
package probe

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/tools/go/packages"
)

// Probe reports whether a model declaration matching qualifiedName exists.
// qualifiedName is either a bare type name ("User") or a package-qualified
// one ("models.User"); searchPath is the directory scanned for it.
type Probe interface {
	Exists(qualifiedName, searchPath string) (bool, error)
}

// ModelProbe checks a compiled package load first and falls back to a
// textual scan of the source files under searchPath.
type ModelProbe struct {
	logger *slog.Logger
}

// New creates a ModelProbe.
func New(logger *slog.Logger) *ModelProbe {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ModelProbe{logger: logger}
}

// Exists probes for the model, preferring type information from a package
// load. Load failures are expected on half-generated projects, so they
// degrade to the textual scan instead of failing the run.
func (p *ModelProbe) Exists(qualifiedName, searchPath string) (bool, error) {
	typeName := qualifiedName
	if i := strings.LastIndex(qualifiedName, "."); i >= 0 {
		typeName = qualifiedName[i+1:]
	}
	if typeName == "" {
		return false, fmt.Errorf("probe: empty model name")
	}

	if found, err := p.lookupCompiled(typeName, searchPath); err == nil {
		if found {
			return true, nil
		}
	} else {
		p.logger.Debug("package load failed, falling back to source scan",
			"path", searchPath, "error", err)
	}

	return p.scanSource(typeName, searchPath)
}

// lookupCompiled loads the package rooted at searchPath and looks the type
// name up in its scope.
func (p *ModelProbe) lookupCompiled(typeName, searchPath string) (bool, error) {
	if _, err := os.Stat(searchPath); err != nil {
		return false, err
	}

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes,
		Dir:  searchPath,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return false, err
	}
	for _, pkg := range pkgs {
		if pkg.Types == nil {
			continue
		}
		if pkg.Types.Scope().Lookup(typeName) != nil {
			return true, nil
		}
	}
	return false, nil
}

// scanSource walks the Go files under searchPath looking for a struct
// declaration of the type name. Test files are skipped.
func (p *ModelProbe) scanSource(typeName, searchPath string) (bool, error) {
	pattern, err := regexp.Compile(`(?m)^type\s+` + regexp.QuoteMeta(typeName) + `\s+struct\b`)
	if err != nil {
		return false, fmt.Errorf("probe: compile pattern: %w", err)
	}

	found := false
	walkErr := filepath.WalkDir(searchPath, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if found {
			return fs.SkipAll
		}
		if entry.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return readErr
		}
		if pattern.Match(data) {
			found = true
		}
		return nil
	})
	if walkErr != nil {
		if errors.Is(walkErr, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("probe: scan %s: %w", searchPath, walkErr)
	}
	return found, nil
}
