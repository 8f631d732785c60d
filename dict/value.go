package dict

import (
	"database/sql/driver"
	"fmt"
	"reflect"

	"github.com/spf13/cast"

	"recdict/internal/schema"
	"recdict/orm"
)

// indirect follows pointers and interfaces until it reaches a concrete value.
// It returns the zero Value when it meets a nil.
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}

		v = v.Elem()
	}

	return v
}

// isNull reports whether v holds no value: invalid, nil, the zero value, or a
// driver.Valuer that yields NULL.
func isNull(v reflect.Value) bool {
	v = indirect(v)
	if !v.IsValid() {
		return true
	}

	if v.CanInterface() {
		if valuer, ok := v.Interface().(driver.Valuer); ok {
			val, err := valuer.Value()
			return err == nil && val == nil
		}
	}

	return v.IsZero()
}

// primaryKey returns the record's identity. Keyed records answer for
// themselves; others use the model's primary key field. ok is false when the
// model has no identity column.
func primaryKey(rec reflect.Value, model *schema.Model) (pk any, ok bool) {
	if k, isKeyed := receiver(rec).Interface().(orm.Keyed); isKeyed {
		return k.PK(), true
	}

	if model.PK == nil {
		return nil, false
	}

	v, found := model.PK.Value(rec)
	if !found {
		return nil, true
	}

	v = indirect(v)
	if !v.IsValid() {
		return nil, true
	}

	return v.Interface(), true
}

// persisted reports whether a record has an identity. Records without any
// identity column are treated as persisted.
func persisted(rec reflect.Value, model *schema.Model) bool {
	pk, ok := primaryKey(rec, model)
	if !ok {
		return true
	}

	return !isNull(reflect.ValueOf(pk))
}

// Stringify renders any field value as a string. Nil pointers and NULL
// columns become "".
func Stringify(v reflect.Value) string {
	v = indirect(v)
	if !v.IsValid() || !v.CanInterface() {
		return ""
	}

	x := v.Interface()

	if valuer, ok := x.(driver.Valuer); ok {
		val, err := valuer.Value()
		if err == nil {
			if val == nil {
				return ""
			}

			x = val
		}
	}

	s, err := cast.ToStringE(x)
	if err != nil {
		return fmt.Sprint(x)
	}

	return s
}
