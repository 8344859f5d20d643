// Package resolver converts an ordered list of requested options into a
// final set of enabled capabilities plus a pass-through list of
// pipeline-control options. Options are applied strictly in the order
// received: a later explicit disable removes a capability even when an
// earlier preset enabled it.
package resolver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/authsmith/authsmith/internal/catalog"
)

// ErrUnknownOption indicates a requested name that is neither a preset, a
// capability, nor a pipeline-control option.
var ErrUnknownOption = errors.New("resolver: unknown option")

// Option is a single requested toggle or override. Value is bool for
// enable/disable toggles and string for overrides such as the model spec.
type Option struct {
	Name  string
	Value any
}

// Bool builds a boolean toggle option.
func Bool(name string, v bool) Option {
	return Option{Name: name, Value: v}
}

// String builds a string-valued override option.
func String(name, v string) Option {
	return Option{Name: name, Value: v}
}

// Pipeline-control option names recognized for pass-through. Boolean
// controls switch generation stages; string controls carry overrides.
var controlNames = map[string]struct{}{
	"config":         {},
	"web":            {},
	"views":          {},
	"migrations":     {},
	"templates":      {},
	"models":         {},
	"controllers":    {},
	"model":          {},
	"repo":           {},
	"migration-dir":  {},
	"config-file":    {},
	"logged-out-url": {},
}

// IsControl reports whether name is a recognized pipeline-control option.
func IsControl(name string) bool {
	_, ok := controlNames[name]
	return ok
}

// Resolve folds over opts in order, producing the deduplicated set of
// enabled capabilities and the list of pipeline-control options preserved
// verbatim. When no capability or preset option is supplied at all the set
// defaults to {authenticatable}; a set the user explicitly emptied through
// negations stays empty.
func Resolve(opts []Option) (catalog.Set, []Option, error) {
	enabled := catalog.NewSet()
	var controls []Option
	requested := false

	for _, o := range opts {
		switch v := o.Value.(type) {
		case bool:
			if exp, ok := catalog.Preset(o.Name); ok {
				// A disabled preset removes its expansion, the dual of
				// enabling it. Later options still win.
				requested = true
				for _, c := range exp {
					if v {
						enabled.Add(c)
					} else {
						enabled.Remove(c)
					}
				}
				continue
			}
			if c, ok := catalog.Lookup(o.Name); ok {
				requested = true
				if v {
					enabled.Add(c)
				} else {
					enabled.Remove(c)
				}
				continue
			}
			if IsControl(o.Name) {
				controls = append(controls, o)
				continue
			}
			return nil, nil, fmt.Errorf("%w: %q", ErrUnknownOption, o.Name)
		case string:
			if IsControl(o.Name) {
				controls = append(controls, o)
				continue
			}
			return nil, nil, fmt.Errorf("%w: %q", ErrUnknownOption, o.Name)
		default:
			return nil, nil, fmt.Errorf("%w: %q (unsupported value %T)", ErrUnknownOption, o.Name, o.Value)
		}
	}

	if !requested {
		enabled.Add(catalog.Authenticatable)
	}

	return enabled, controls, nil
}

// ParseArgs converts positional CLI arguments into ordered options. Each
// argument is a preset or capability name; a "no-" prefix disables it
// ("no-trackable" removes trackable even if a preceding preset enabled it).
func ParseArgs(args []string) []Option {
	opts := make([]Option, 0, len(args))
	for _, a := range args {
		if name, ok := strings.CutPrefix(a, "no-"); ok && name != "" {
			opts = append(opts, Bool(name, false))
			continue
		}
		opts = append(opts, Bool(a, true))
	}
	return opts
}
