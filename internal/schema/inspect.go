package schema

import (
	"database/sql"
	"fmt"
	"reflect"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/volatiletech/null/v8"

	"recdict/orm"
)

var (
	timeType       = reflect.TypeOf((*time.Time)(nil)).Elem()
	nullTimeType   = reflect.TypeOf((*null.Time)(nil)).Elem()
	sqlTimeType    = reflect.TypeOf((*sql.NullTime)(nil)).Elem()
	fileType       = reflect.TypeOf((*orm.File)(nil)).Elem()
	imageType      = reflect.TypeOf((*orm.Image)(nil)).Elem()
	lazyType       = reflect.TypeOf((*orm.Lazy)(nil)).Elem()
	relatedSetType = reflect.TypeOf((*orm.RelatedSet)(nil)).Elem()
)

// Inspector builds and caches record models.
type Inspector struct {
	models *xsync.MapOf[reflect.Type, *Model]
}

// NewInspector creates an Inspector with an empty cache.
func NewInspector() *Inspector {
	return &Inspector{
		models: xsync.NewMapOf[reflect.Type, *Model](),
	}
}

var defaultInspector = NewInspector()

// Of returns the model of the record v using the shared inspector.
func Of(v any) (*Model, error) {
	return defaultInspector.Inspect(reflect.TypeOf(v))
}

// Inspect returns the model for t. Pointer types are dereferenced.
func (in *Inspector) Inspect(t reflect.Type) (*Model, error) {
	t = Base(t)
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%v: %w", t, ErrNotStruct)
	}

	if m, ok := in.models.Load(t); ok {
		return m, nil
	}

	m, err := build(t)
	if err != nil {
		return nil, err
	}

	m, _ = in.models.LoadOrStore(t, m)

	return m, nil
}

func build(t reflect.Type) (*Model, error) {
	m := &Model{
		ID:     TypeID{PkgPath: t.PkgPath(), Name: t.Name()},
		Type:   t,
		byName: make(map[string]int),
	}

	pk := -1

	for _, sf := range reflect.VisibleFields(t) {
		if !sf.IsExported() {
			continue
		}

		tag, err := ParseTag(sf.Tag.Get(TagKey))
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", m.ID, sf.Name, err)
		}

		if tag.Skip {
			continue
		}

		// Promoted fields of an embedded struct are listed on their own.
		if sf.Anonymous && !tag.HasKind && Base(sf.Type).Kind() == reflect.Struct && !isValueStruct(Base(sf.Type)) {
			continue
		}

		kind := tag.Kind
		if !tag.HasKind {
			kind = Infer(sf.Name, sf.Type)
		}

		f := Field{
			Name:   DictName(sf.Name, sf.Tag, tag),
			GoName: sf.Name,
			Kind:   kind,
			Type:   sf.Type,
			Tag:    sf.Tag,
			Index:  sf.Index,
		}

		if _, dup := m.byName[f.Name]; dup {
			return nil, fmt.Errorf("%s: %w %q", m.ID, ErrDuplicateField, f.Name)
		}

		i := len(m.Fields)
		m.Fields = append(m.Fields, f)
		m.byName[f.Name] = i

		if kind == KindPrimaryKey && pk < 0 {
			pk = i
		}
	}

	// Go names are accepted as aliases unless they collide with a dict name.
	for i := range m.Fields {
		if _, taken := m.byName[m.Fields[i].GoName]; !taken {
			m.byName[m.Fields[i].GoName] = i
		}
	}

	if pk >= 0 {
		m.PK = &m.Fields[pk]
	}

	return m, nil
}

// Infer picks a FieldKind from the Go type of a field without an explicit kind.
func Infer(goName string, t reflect.Type) FieldKind {
	elem := Base(t)

	switch {
	case elem == timeType, elem == nullTimeType, elem == sqlTimeType:
		return KindDateTime
	case elem == imageType:
		return KindImage
	case elem == fileType:
		return KindFile
	case t.Implements(relatedSetType):
		return KindManyToMany
	case t.Implements(lazyType):
		return KindForeignKey
	case t.Kind() == reflect.Pointer && elem.Kind() == reflect.Struct:
		return KindForeignKey
	case (t.Kind() == reflect.Slice || t.Kind() == reflect.Array) && isRecordElem(t.Elem()):
		return KindManyToMany
	case goName == "ID":
		return KindPrimaryKey
	default:
		return KindPlain
	}
}

func isRecordElem(t reflect.Type) bool {
	b := Base(t)
	return b.Kind() == reflect.Struct && !isValueStruct(b)
}

// isValueStruct reports struct types that are column values rather than records.
func isValueStruct(t reflect.Type) bool {
	switch t {
	case timeType, nullTimeType, sqlTimeType, fileType, imageType:
		return true
	default:
		return false
	}
}

// Base strips all pointer levels from t.
func Base(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t
}
