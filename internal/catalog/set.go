package catalog

// Set is an unordered collection of enabled capabilities. Membership is all
// that matters; deterministic output is obtained through Canonical.
type Set map[Capability]struct{}

// NewSet creates a Set containing the given capabilities.
func NewSet(caps ...Capability) Set {
	s := make(Set, len(caps))
	for _, c := range caps {
		s[c] = struct{}{}
	}
	return s
}

// Add inserts c into the set.
func (s Set) Add(c Capability) {
	s[c] = struct{}{}
}

// Remove deletes c from the set.
func (s Set) Remove(c Capability) {
	delete(s, c)
}

// Has reports whether c is enabled.
func (s Set) Has(c Capability) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of enabled capabilities.
func (s Set) Len() int {
	return len(s)
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// Canonical returns the enabled capabilities in catalog declaration order.
func (s Set) Canonical() []Capability {
	out := make([]Capability, 0, len(s))
	for _, c := range All {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Names returns the enabled capability names in canonical order.
func (s Set) Names() []string {
	caps := s.Canonical()
	out := make([]string, len(caps))
	for i, c := range caps {
		out[i] = string(c)
	}
	return out
}

// RequiresEmail reports whether any enabled capability needs email dispatch.
func (s Set) RequiresEmail() bool {
	for c := range s {
		if RequiresEmail(c) {
			return true
		}
	}
	return false
}
