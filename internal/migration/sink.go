package migration

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/authsmith/authsmith/internal/defs"
)

// Sink receives fully-rendered migration bodies. The planner computes the
// text; writing is external so tests can capture output in memory.
type Sink interface {
	CreateFile(path string, content []byte) error
}

// DirSink writes migration files under a base directory, creating it on
// first use.
type DirSink struct {
	Dir string
}

// CreateFile writes content to Dir/path. An existing file is a hard error:
// migrations are never silently overwritten.
func (s DirSink) CreateFile(path string, content []byte) error {
	if err := os.MkdirAll(s.Dir, defs.DirPerm); err != nil {
		return fmt.Errorf("migration: mkdir %s: %w", s.Dir, err)
	}
	dest := filepath.Join(s.Dir, path)
	if _, err := os.Stat(dest); err == nil {
		return fmt.Errorf("migration: %s already exists", dest)
	}
	if err := os.WriteFile(dest, content, defs.FilePerm); err != nil {
		return fmt.Errorf("migration: write %s: %w", dest, err)
	}
	return nil
}

// Emit writes the up and down files of a plan through the sink and returns
// the relative paths written.
func Emit(sink Sink, plan Plan) ([]string, error) {
	up := plan.UpFilename()
	if err := sink.CreateFile(up, []byte(plan.UpSQL())); err != nil {
		return nil, err
	}
	down := plan.DownFilename()
	if err := sink.CreateFile(down, []byte(plan.DownSQL())); err != nil {
		return nil, err
	}
	return []string{up, down}, nil
}
