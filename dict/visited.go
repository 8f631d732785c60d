package dict

import (
	"reflect"
	"slices"
	"strings"

	"recdict/internal/schema"
)

// Visited is the set of record types already being serialized higher up
// the call chain. It is never mutated in place; With returns a copy.
type Visited map[reflect.Type]struct{}

// NewVisited builds a Visited set from sample records or reflect.Types.
func NewVisited(records ...any) Visited {
	v := make(Visited, len(records))
	for _, r := range records {
		t, ok := r.(reflect.Type)
		if !ok {
			t = reflect.TypeOf(r)
		}

		if t = schema.Base(t); t != nil {
			v[t] = struct{}{}
		}
	}

	return v
}

// Has reports whether t (or the type it points to) is in the set.
func (v Visited) Has(t reflect.Type) bool {
	_, ok := v[schema.Base(t)]
	return ok
}

// With returns a copy of v that also holds t.
func (v Visited) With(t reflect.Type) Visited {
	out := make(Visited, len(v)+1)
	for k := range v {
		out[k] = struct{}{}
	}

	out[schema.Base(t)] = struct{}{}

	return out
}

// String lists the type names in sorted order.
func (v Visited) String() string {
	names := make([]string, 0, len(v))
	for t := range v {
		names = append(names, t.String())
	}

	slices.Sort(names)

	return "{" + strings.Join(names, ", ") + "}"
}
