package ui

import "testing"

func TestForceHeadless(t *testing.T) {
	t.Parallel()

	h := NewHeadlessManager()
	h.ForceHeadless(true)
	if !h.IsHeadless() {
		t.Error("forced headless must report headless")
	}
	h.ForceHeadless(false)
	if h.IsHeadless() {
		t.Error("forced interactive must report interactive even without a TTY")
	}
}

func TestAssumeYes(t *testing.T) {
	t.Parallel()

	h := NewHeadlessManager()
	if h.AssumeYes() {
		t.Error("assume-yes must default to false")
	}
	h.SetAssumeYes(true)
	if !h.AssumeYes() {
		t.Error("SetAssumeYes(true) not reflected")
	}
}

// --yes approves without a prompt; headless without --yes declines. Neither
// path touches the terminal.
func TestConsoleConfirmerNonInteractive(t *testing.T) {
	t.Parallel()

	h := NewHeadlessManager()
	h.ForceHeadless(true)
	c := NewConsoleConfirmer(h)

	ok, err := c.Confirm("append?")
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if ok {
		t.Error("headless confirm must decline by default")
	}

	h.SetAssumeYes(true)
	ok, err = c.Confirm("append?")
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if !ok {
		t.Error("assume-yes must approve without prompting")
	}
}
