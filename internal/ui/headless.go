// Package ui owns the installer's terminal interaction: headless-mode
// detection, the overwrite confirmation prompt, and the styled final
// report.
package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// HeadlessManager manages headless (non-interactive) mode detection and the
// assume-yes default used when no prompt can be shown.
type HeadlessManager struct {
	forced    *bool
	assumeYes bool
}

// NewHeadlessManager creates a HeadlessManager that detects headless mode
// from the TTY state of os.Stdin.
func NewHeadlessManager() *HeadlessManager {
	return &HeadlessManager{}
}

// IsHeadless returns true when the UI should operate without prompting.
// ForceHeadless overrides TTY detection.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	return !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// ForceHeadless overrides TTY detection. Pass true to force headless mode,
// or false to force interactive mode regardless of TTY state.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}

// SetAssumeYes sets the answer returned for confirmations in headless mode.
func (h *HeadlessManager) SetAssumeYes(yes bool) {
	h.assumeYes = yes
}

// AssumeYes returns the headless confirmation default.
func (h *HeadlessManager) AssumeYes() bool {
	return h.assumeYes
}
