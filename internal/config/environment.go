package config

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"

	"github.com/authsmith/authsmith/internal/defs"
)

// Environment holds the facts about the host project that the builder
// combines with the resolved capability set.
type Environment struct {
	// ProjectRoot is the host project root directory.
	ProjectRoot string

	// Module is the host module path, read from go.mod.
	Module string

	// Clock supplies the timestamp seed for migration ordering.
	Clock Clock
}

// DiscoverEnvironment reads the host go.mod under root and returns the
// environment facts. A missing or module-less go.mod yields
// ErrMissingModule.
func DiscoverEnvironment(root string, clock Clock) (Environment, error) {
	if clock == nil {
		clock = SystemClock{}
	}

	path := filepath.Join(root, defs.GoModFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return Environment{}, fmt.Errorf("%w: %v", ErrMissingModule, err)
	}

	module := modfile.ModulePath(data)
	if module == "" {
		return Environment{}, fmt.Errorf("%w: no module directive in %s", ErrMissingModule, path)
	}

	return Environment{
		ProjectRoot: root,
		Module:      module,
		Clock:       clock,
	}, nil
}
