package orm

// Keyed is implemented by records that expose their primary key directly.
// A zero or nil key means the record has not been persisted.
type Keyed interface {
	PK() any
}

// Lazy is a single relation (foreign key, one-to-one) resolved on access.
// Get returns nil when the relation is unset.
type Lazy interface {
	Get() (any, error)
}

// RelatedSet is a multi relation (many-to-many, reverse many-to-one)
// resolved on access.
type RelatedSet interface {
	All() ([]any, error)
}

// FieldLister names the fields serialized when a record is reached through
// a relation and has no dict method of its own.
type FieldLister interface {
	DictFields() []string
}

// LazyFunc adapts a function to Lazy.
type LazyFunc func() (any, error)

// Get calls f.
func (f LazyFunc) Get() (any, error) {
	return f()
}

// SetFunc adapts a function to RelatedSet.
type SetFunc func() ([]any, error)

// All calls f.
func (f SetFunc) All() ([]any, error) {
	return f()
}

// Set is a RelatedSet over records that are already loaded.
type Set[T any] []T

// All returns the members of s as a slice of any.
func (s Set[T]) All() ([]any, error) {
	out := make([]any, len(s))
	for i := range s {
		out[i] = s[i]
	}

	return out, nil
}
