package dict

import (
	"errors"
	"fmt"
	"reflect"

	"recdict/internal/schema"
	"recdict/orm"
)

// Scope carries the state of one Serialize call into its formatters.
type Scope struct {
	s *Serializer

	// Method is the dict method tried on related records.
	Method string
	// Visited is this call's own guard set, already holding the record's type.
	Visited Visited
}

// Serializer returns the serializer running this call.
func (sc *Scope) Serializer() *Serializer {
	return sc.s
}

// Related serializes a record reached through a relation.
//
// In order: a nil record gives {}; a record with a dict method named
// sc.Method is asked for its own Dict; a record implementing orm.FieldLister
// is serialized with its listed fields; anything else collapses to
// {"id": <pk>}. The method and field-list paths yield {} when the record's
// type is already in sc.Visited. A relation holding a bare key gives
// {"id": <key>}.
func (sc *Scope) Related(rel reflect.Value) (Dict, error) {
	rel = indirect(rel)
	if !rel.IsValid() {
		return Dict{}, nil
	}

	m, err := lookupMethod(rel, sc.Method)
	switch {
	case err == nil:
		if sc.Visited.Has(rel.Type()) {
			cyclesCut.Inc()
			return Dict{}, nil
		}

		d, err := m.call(sc.Visited)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", rel.Type(), m.name, err)
		}

		return d, nil
	case errors.Is(err, ErrNotDictMethod):
		sc.s.logger().Debug("dict.method.skipped", "type", rel.Type().String(), "error", err)
	}

	if lister, ok := receiver(rel).Interface().(orm.FieldLister); ok {
		return sc.s.serialize(rel, sc.Method, sc.Visited, lister.DictFields())
	}

	model, err := sc.s.inspector.Inspect(rel.Type())
	if errors.Is(err, schema.ErrNotStruct) {
		// A bare key stored in a relation field.
		return Dict{"id": rel.Interface()}, nil
	}

	if err != nil {
		return nil, err
	}

	pk, _ := primaryKey(rel, model)

	return Dict{"id": pk}, nil
}
