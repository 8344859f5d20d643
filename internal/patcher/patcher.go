// Package patcher appends the generated auth configuration block to the
// host project's config file, guarded by start/end marker comments. A
// second confirmed run may append a duplicate block by design; an
// unconfirmed second run is a no-op.
package patcher

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/authsmith/authsmith/internal/defs"
)

// Marker comment lines wrapping the generated block.
const (
	StartMarker = "# -- authsmith config: begin --"
	EndMarker   = "# -- authsmith config: end --"
)

// ErrTargetMissing indicates the config file to patch does not exist. The
// patcher never creates it; the pipeline reports and continues.
var ErrTargetMissing = errors.New("patcher: target config file not found")

// Confirmer asks the operator to approve appending a second block when the
// start marker is already present.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// Result reports what the patcher did.
type Result struct {
	Applied bool
	Message string
}

// Patcher performs the marker-guarded append.
type Patcher struct {
	confirm Confirmer
	logger  *slog.Logger
}

// New creates a Patcher. confirm may be nil, in which case a duplicate
// block is always declined.
func New(confirm Confirmer, logger *slog.Logger) *Patcher {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Patcher{confirm: confirm, logger: logger}
}

// Patch appends block (wrapped between the markers) to targetFile. If the
// file already contains the start marker the operator is asked before a
// second block is appended; declining leaves the file byte-for-byte
// unchanged. A missing target yields ErrTargetMissing without creating it.
func (p *Patcher) Patch(block, targetFile string) (Result, error) {
	data, err := os.ReadFile(targetFile)
	if errors.Is(err, fs.ErrNotExist) {
		return Result{}, fmt.Errorf("%w: %s", ErrTargetMissing, targetFile)
	}
	if err != nil {
		return Result{}, fmt.Errorf("patcher: read %s: %w", targetFile, err)
	}

	wrapped := wrap(block)

	out := string(data)
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	out += "\n" + wrapped

	if strings.Contains(string(data), StartMarker) {
		ok := false
		if p.confirm != nil {
			prompt := fmt.Sprintf("%s already contains an authsmith block. Append another?\n\n%s",
				targetFile, RenderPreview(string(data), out))
			ok, err = p.confirm.Confirm(prompt)
			if err != nil {
				return Result{}, fmt.Errorf("patcher: confirm: %w", err)
			}
		}
		if !ok {
			p.logger.Info("existing block kept", "file", targetFile)
			return Result{Applied: false, Message: fmt.Sprintf("existing authsmith block in %s kept; file not modified", targetFile)}, nil
		}
	}

	if err := os.WriteFile(targetFile, []byte(out), defs.FilePerm); err != nil {
		return Result{}, fmt.Errorf("patcher: write %s: %w", targetFile, err)
	}

	p.logger.Info("config block appended", "file", targetFile)
	return Result{Applied: true, Message: fmt.Sprintf("auth config block appended to %s", targetFile)}, nil
}

// wrap surrounds the block with the marker lines, normalizing the trailing
// newline.
func wrap(block string) string {
	block = strings.TrimRight(block, "\n")
	return StartMarker + "\n" + block + "\n" + EndMarker + "\n"
}
