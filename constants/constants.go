// Package constants generates symbolic action type tables.
package constants

import (
	"maps"
	"slices"
)

// Constants maps each name to itself.
type Constants map[string]string

// Create maps every name to itself. Duplicate names collapse into one entry.
func Create(names ...string) Constants {
	out := make(Constants, len(names))
	for _, n := range names {
		out[n] = n
	}
	return out
}

// Has reports whether name is defined.
func (c Constants) Has(name string) bool {
	_, ok := c[name]
	return ok
}

// Names returns the defined names, sorted.
func (c Constants) Names() []string {
	return slices.Sorted(maps.Keys(c))
}
