package schema

import (
	"fmt"
	"reflect"

	"recdict/internal/common"
	"recdict/internal/match"
)

// TypeID uniquely identifies a record type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "recdict/store"
	Name    string // e.g., "Order"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Short returns the name qualified by the package alias, e.g. "store.Order".
func (t TypeID) Short() string {
	if alias := common.PkgAlias(t.PkgPath); alias != "" {
		return alias + "." + t.Name
	}

	return t.Name
}

// Field describes one serializable field of a record.
type Field struct {
	Name   string            // dict key
	GoName string            // Go field name
	Kind   FieldKind         // ORM kind
	Type   reflect.Type      // declared Go type
	Tag    reflect.StructTag // raw struct tag
	Index  []int             // index path for reflect.Value.FieldByIndex
}

// Model is the schema of a record type.
type Model struct {
	ID     TypeID
	Type   reflect.Type
	Fields []Field
	PK     *Field // nil when the record has no identity column

	byName map[string]int
}

// Field returns the field with the given dict name or Go name.
func (m *Model) Field(name string) (*Field, error) {
	if i, ok := m.byName[name]; ok {
		return &m.Fields[i], nil
	}

	if guess, ok := match.Suggest(name, m.Names()); ok {
		return nil, fmt.Errorf("%s has no field named %q (did you mean %q?): %w", m.ID, name, guess, ErrFieldNotFound)
	}

	return nil, fmt.Errorf("%s has no field named %q: %w", m.ID, name, ErrFieldNotFound)
}

// Names returns the dict names of all fields in declaration order.
func (m *Model) Names() []string {
	names := make([]string, len(m.Fields))
	for i := range m.Fields {
		names[i] = m.Fields[i].Name
	}

	return names
}

// Value returns the field's value on rec, which must be a struct of the
// model's type. ok is false when the field sits behind a nil embedded pointer.
func (f *Field) Value(rec reflect.Value) (v reflect.Value, ok bool) {
	v, err := rec.FieldByIndexErr(f.Index)
	if err != nil {
		return reflect.Value{}, false
	}

	return v, true
}
