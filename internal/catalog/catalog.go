// Package catalog holds the static domain knowledge of the installer: the
// full list of optional authentication capabilities, the named presets that
// expand to capability sets, the subset of capabilities that require email
// dispatch, and the schema columns each capability contributes.
//
// All tables are immutable package-level data initialized at startup and are
// safe for concurrent reads.
package catalog

// Capability is an enumerated authentication feature tag.
type Capability string

// The full set of known capabilities, in canonical declaration order.
// This order is used for all deterministic output: the opts list in the
// generated config block and the concatenation of contributed migration
// columns.
const (
	Authenticatable     Capability = "authenticatable"
	Recoverable         Capability = "recoverable"
	Lockable            Capability = "lockable"
	Trackable           Capability = "trackable"
	UnlockableWithToken Capability = "unlockable_with_token"
	Confirmable         Capability = "confirmable"
	Invitable           Capability = "invitable"
	Registerable        Capability = "registerable"
	Rememberable        Capability = "rememberable"
)

// All lists every capability in canonical order.
var All = []Capability{
	Authenticatable,
	Recoverable,
	Lockable,
	Trackable,
	UnlockableWithToken,
	Confirmable,
	Invitable,
	Registerable,
	Rememberable,
}

// known provides O(1) name lookup.
var known = func() map[Capability]struct{} {
	m := make(map[Capability]struct{}, len(All))
	for _, c := range All {
		m[c] = struct{}{}
	}
	return m
}()

// emailDependent lists the capabilities whose flows send email.
var emailDependent = map[Capability]struct{}{
	Recoverable:         {},
	UnlockableWithToken: {},
	Confirmable:         {},
	Invitable:           {},
}

// Lookup returns the capability for name, if it is known.
func Lookup(name string) (Capability, bool) {
	c := Capability(name)
	_, ok := known[c]
	return c, ok
}

// RequiresEmail reports whether c belongs to the email-dependent subset.
func RequiresEmail(c Capability) bool {
	_, ok := emailDependent[c]
	return ok
}

// presets maps preset names to their fixed, pre-enumerated expansions.
// Presets never nest.
var presets = map[string][]Capability{
	"default": {Authenticatable},
	"full": {
		Authenticatable,
		Recoverable,
		Lockable,
		Trackable,
		UnlockableWithToken,
		Registerable,
	},
	"full_confirmable": {
		Authenticatable,
		Recoverable,
		Lockable,
		Trackable,
		UnlockableWithToken,
		Registerable,
		Confirmable,
	},
	"full_invitable": {
		Authenticatable,
		Recoverable,
		Lockable,
		Trackable,
		UnlockableWithToken,
		Registerable,
		Invitable,
	},
}

// Preset returns the expansion of a preset name, if it is known.
// The returned slice must not be modified.
func Preset(name string) ([]Capability, bool) {
	exp, ok := presets[name]
	return exp, ok
}

// PresetNames returns the preset names in a stable display order.
func PresetNames() []string {
	return []string{"default", "full", "full_confirmable", "full_invitable"}
}
