package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// ConsoleConfirmer asks yes/no questions through a huh form. In headless
// mode it answers with the configured assume-yes default without prompting.
type ConsoleConfirmer struct {
	headless *HeadlessManager
}

// NewConsoleConfirmer creates a ConsoleConfirmer.
func NewConsoleConfirmer(h *HeadlessManager) *ConsoleConfirmer {
	if h == nil {
		h = NewHeadlessManager()
	}
	return &ConsoleConfirmer{headless: h}
}

// Confirm shows the prompt and returns the operator's answer. Aborting the
// form (Esc/Ctrl-C) counts as a decline, not an error.
func (c *ConsoleConfirmer) Confirm(prompt string) (bool, error) {
	if c.headless.AssumeYes() {
		return true, nil
	}
	if c.headless.IsHeadless() {
		// No prompt possible; keep the file as it is.
		return false, nil
	}

	ok := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(prompt).
			Affirmative("Append").
			Negative("Keep as is").
			Value(&ok),
	))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("confirm prompt: %w", err)
	}
	return ok, nil
}
