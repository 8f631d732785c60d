package analyze

import (
	"go/types"

	"recdict/internal/diagnostic"
	"recdict/internal/schema"
)

// Field describes one field of a statically inspected record.
type Field struct {
	Name     string           // dict key
	GoName   string           // Go field name, dotted for promoted fields
	Kind     schema.FieldKind // resolved kind
	Explicit bool             // kind came from the orm tag
	Type     types.Type       // declared type
}

// Model describes a record type found in a package.
type Model struct {
	ID     schema.TypeID
	Fields []Field
	PK     string // dict name of the primary key, empty when none
}

// Report is the result of inspecting a set of packages.
type Report struct {
	Models      []Model
	Diagnostics diagnostic.Diagnostics
}

// Model returns the model with the given package path and name, or nil.
func (r *Report) Model(pkgPath, name string) *Model {
	for i := range r.Models {
		if r.Models[i].ID.PkgPath == pkgPath && r.Models[i].ID.Name == name {
			return &r.Models[i]
		}
	}

	return nil
}

// Field returns the field with the given dict name, or nil.
func (m *Model) Field(name string) *Field {
	for i := range m.Fields {
		if m.Fields[i].Name == name {
			return &m.Fields[i]
		}
	}

	return nil
}
