package dispatchers

import (
	"strings"

	"github.com/chronois/avrora/internal/usage"
)

// FlagSpec names a flag the program accepts. Value flags take --name=value.
type FlagSpec struct {
	Name  string
	Value bool
}

// ParsedFlags gives typed access to --name and --name=value flags.
// For a repeated flag the first occurrence wins.
type ParsedFlags struct {
	order  []string
	values map[string]string
	bare   map[string]bool
}

// NewParsedFlags splits raw flag strings once.
func NewParsedFlags(flags []string) *ParsedFlags {
	pf := &ParsedFlags{values: map[string]string{}, bare: map[string]bool{}}
	for _, flag := range flags {
		name, value, hasValue := strings.Cut(flag, "=")
		if _, seen := pf.values[name]; seen || pf.bare[name] {
			continue
		}
		pf.order = append(pf.order, name)
		if hasValue {
			pf.values[name] = value
		} else {
			pf.bare[name] = true
		}
	}
	return pf
}

// Has reports whether a boolean flag was given. --name=value does not count.
func (f *ParsedFlags) Has(name string) bool {
	return f.bare[name]
}

// String returns the value of --name=value, or def.
func (f *ParsedFlags) String(name, def string) string {
	if v, ok := f.values[name]; ok {
		return v
	}
	return def
}

// Check rejects flags that are not in known, and flags used with the wrong
// shape (a value on a switch, or a bare value flag).
func (f *ParsedFlags) Check(known []FlagSpec) error {
	specs := make(map[string]FlagSpec, len(known))
	for _, s := range known {
		specs[s.Name] = s
	}

	for _, name := range f.order {
		spec, ok := specs[name]
		if !ok {
			return usage.InvalidFlag(name)
		}
		if _, hasValue := f.values[name]; hasValue != spec.Value {
			return usage.InvalidFlag(name)
		}
	}
	return nil
}
