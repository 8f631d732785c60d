package dict

import (
	"database/sql"
	"fmt"
	"reflect"
	"time"

	"github.com/volatiletech/null/v8"

	"recdict/internal/schema"
	"recdict/orm"
)

// Default layouts for the temporal kinds.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
	TimeLayout     = "15:04:05"
)

// Formatter renders one field value. v is the field as read from the record
// and may be the zero Value when the field sits behind a nil embedded pointer.
type Formatter func(sc *Scope, f *schema.Field, v reflect.Value) (any, error)

func defaultFormatters() map[schema.FieldKind]Formatter {
	return map[schema.FieldKind]Formatter{
		schema.KindDate:         formatDate,
		schema.KindDateTime:     formatDateTime,
		schema.KindTime:         formatTime,
		schema.KindForeignKey:   formatSingleRelation,
		schema.KindOneToOne:     formatSingleRelation,
		schema.KindManyToMany:   formatMultiRelation,
		schema.KindManyToOneRel: formatMultiRelation,
		schema.KindFile:         formatFile,
		schema.KindImage:        formatFile,
	}
}

func formatDate(sc *Scope, _ *schema.Field, v reflect.Value) (any, error) {
	return sc.formatTemporal(v, sc.s.layouts.Date), nil
}

func formatDateTime(sc *Scope, _ *schema.Field, v reflect.Value) (any, error) {
	return sc.formatTemporal(v, sc.s.layouts.DateTime), nil
}

func formatTime(sc *Scope, _ *schema.Field, v reflect.Value) (any, error) {
	return sc.formatTemporal(v, sc.s.layouts.Time), nil
}

// midnight anchors durations formatted as a time of day.
var midnight = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

func (sc *Scope) formatTemporal(v reflect.Value, layout string) string {
	v = indirect(v)
	if !v.IsValid() || !v.CanInterface() {
		return ""
	}

	switch t := v.Interface().(type) {
	case time.Time:
		if t.IsZero() {
			return ""
		}

		return t.Format(layout)
	case null.Time:
		if !t.Valid || t.Time.IsZero() {
			return ""
		}

		return t.Time.Format(layout)
	case sql.NullTime:
		if !t.Valid || t.Time.IsZero() {
			return ""
		}

		return t.Time.Format(layout)
	case time.Duration:
		return midnight.Add(t).Format(layout)
	default:
		sc.s.logger().Debug("dict.temporal.fallback", "type", v.Type().String())
		return Stringify(v)
	}
}

func formatSingleRelation(sc *Scope, f *schema.Field, v reflect.Value) (any, error) {
	rel, err := loadOne(v)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", f.Name, err)
	}

	return sc.Related(rel)
}

func formatMultiRelation(sc *Scope, f *schema.Field, v reflect.Value) (any, error) {
	rels, err := loadMany(v)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", f.Name, err)
	}

	out := make([]Dict, 0, len(rels))
	for _, rel := range rels {
		d, err := sc.Related(rel)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.Name, err)
		}

		out = append(out, d)
	}

	return out, nil
}

// loadOne resolves a single relation field to the related record value.
func loadOne(v reflect.Value) (reflect.Value, error) {
	if !v.IsValid() {
		return reflect.Value{}, nil
	}

	switch v.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Func:
		if v.IsNil() {
			return reflect.Value{}, nil
		}
	}

	if lazy, ok := v.Interface().(orm.Lazy); ok {
		rec, err := lazy.Get()
		if err != nil {
			return reflect.Value{}, err
		}

		return indirect(reflect.ValueOf(rec)), nil
	}

	return indirect(v), nil
}

// loadMany resolves a multi relation field to its members.
func loadMany(v reflect.Value) ([]reflect.Value, error) {
	if !v.IsValid() {
		return nil, nil
	}

	switch v.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Func, reflect.Map:
		if v.IsNil() {
			return nil, nil
		}
	}

	if set, ok := v.Interface().(orm.RelatedSet); ok {
		all, err := set.All()
		if err != nil {
			return nil, err
		}

		out := make([]reflect.Value, len(all))
		for i, rec := range all {
			out[i] = reflect.ValueOf(rec)
		}

		return out, nil
	}

	v = indirect(v)
	if !v.IsValid() {
		return nil, nil
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]reflect.Value, v.Len())
		for i := 0; i < v.Len(); i++ {
			out[i] = v.Index(i)
		}

		return out, nil
	default:
		return nil, fmt.Errorf("%s is not a relation set", v.Type())
	}
}

// urler matches stored file values that know their public URL.
type urler interface {
	URL() string
}

func formatFile(sc *Scope, _ *schema.Field, v reflect.Value) (any, error) {
	v = indirect(v)
	if !v.IsValid() || !v.CanInterface() || isNull(v) {
		return Dict{}, nil
	}

	var url string

	switch file := v.Interface().(type) {
	case orm.File:
		url = sc.s.fileURL(file)
	case orm.Image:
		url = sc.s.fileURL(file.File)
	case urler:
		url = file.URL()
	default:
		name := Stringify(v)
		if name == "" {
			return Dict{}, nil
		}

		url = sc.s.fileURL(orm.File{Name: name})
	}

	if url == "" {
		return Dict{}, nil
	}

	return Dict{"url": url}, nil
}
