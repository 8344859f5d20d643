package catalog

import (
	"slices"
	"testing"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	for _, c := range All {
		got, ok := Lookup(string(c))
		if !ok {
			t.Errorf("Lookup(%q): not found", c)
		}
		if got != c {
			t.Errorf("Lookup(%q) = %q", c, got)
		}
	}

	if _, ok := Lookup("omniauthable"); ok {
		t.Error("Lookup(omniauthable): want not found")
	}
}

func TestPresetFull(t *testing.T) {
	t.Parallel()

	exp, ok := Preset("full")
	if !ok {
		t.Fatal("preset full not found")
	}

	// full is everything except confirmable, invitable, rememberable.
	excluded := []Capability{Confirmable, Invitable, Rememberable}
	if want := len(All) - len(excluded); len(exp) != want {
		t.Fatalf("full preset size: got %d, want %d", len(exp), want)
	}
	for _, c := range excluded {
		if slices.Contains(exp, c) {
			t.Errorf("full preset must not contain %q", c)
		}
	}
}

func TestPresetVariants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		preset string
		extra  Capability
	}{
		{"full_confirmable", Confirmable},
		{"full_invitable", Invitable},
	}
	full, _ := Preset("full")

	for _, tt := range tests {
		exp, ok := Preset(tt.preset)
		if !ok {
			t.Fatalf("preset %q not found", tt.preset)
		}
		if len(exp) != len(full)+1 {
			t.Errorf("%s size: got %d, want %d", tt.preset, len(exp), len(full)+1)
		}
		if !slices.Contains(exp, tt.extra) {
			t.Errorf("%s must contain %q", tt.preset, tt.extra)
		}
	}
}

func TestPresetDefault(t *testing.T) {
	t.Parallel()

	exp, ok := Preset("default")
	if !ok {
		t.Fatal("preset default not found")
	}
	if len(exp) != 1 || exp[0] != Authenticatable {
		t.Errorf("default preset = %v, want [authenticatable]", exp)
	}
}

func TestRequiresEmail(t *testing.T) {
	t.Parallel()

	want := map[Capability]bool{
		Authenticatable:     false,
		Recoverable:         true,
		Lockable:            false,
		Trackable:           false,
		UnlockableWithToken: true,
		Confirmable:         true,
		Invitable:           true,
		Registerable:        false,
		Rememberable:        false,
	}
	for c, w := range want {
		if got := RequiresEmail(c); got != w {
			t.Errorf("RequiresEmail(%q) = %t, want %t", c, got, w)
		}
	}
}

func TestSetCanonicalOrder(t *testing.T) {
	t.Parallel()

	// Insertion order must not leak into canonical order.
	s := NewSet(Rememberable, Authenticatable, Lockable)
	got := s.Canonical()
	want := []Capability{Authenticatable, Lockable, Rememberable}
	if !slices.Equal(got, want) {
		t.Errorf("Canonical() = %v, want %v", got, want)
	}
}

func TestSetRequiresEmail(t *testing.T) {
	t.Parallel()

	if NewSet(Authenticatable, Trackable).RequiresEmail() {
		t.Error("authenticatable+trackable should not require email")
	}
	if !NewSet(Authenticatable, Recoverable).RequiresEmail() {
		t.Error("recoverable should require email")
	}
}

func TestContributedColumnsOrder(t *testing.T) {
	t.Parallel()

	// lockable declares before trackable in the catalog, so its columns
	// come first regardless of insertion order.
	s := NewSet(Trackable, Lockable)
	cols := ContributedColumns(s)

	var names []string
	for _, c := range cols {
		names = append(names, c.Name)
	}
	wantFirst := "failed_attempts"
	if len(names) == 0 || names[0] != wantFirst {
		t.Errorf("first contributed column = %v, want %q", names, wantFirst)
	}
	if got := len(cols); got != len(Columns(Lockable))+len(Columns(Trackable)) {
		t.Errorf("contributed column count = %d", got)
	}
}

func TestColumnsInvitableEmpty(t *testing.T) {
	t.Parallel()

	// invitable gets its own table; it contributes nothing to the target.
	if cols := Columns(Invitable); len(cols) != 0 {
		t.Errorf("invitable columns = %v, want none", cols)
	}
	if cols := Columns(Registerable); len(cols) != 0 {
		t.Errorf("registerable columns = %v, want none", cols)
	}
}
