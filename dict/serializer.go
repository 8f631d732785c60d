package dict

import (
	"fmt"
	"log/slog"
	"reflect"

	"recdict/internal/logger"
	"recdict/internal/schema"
	"recdict/orm"
)

// Dict is the serialized form of a record.
type Dict = map[string]any

// DefaultMethod is the dict method looked up on related records when the
// caller does not name one.
const DefaultMethod = "Dict"

// Layouts holds the time layouts used by the temporal formatters.
type Layouts struct {
	Date     string
	DateTime string
	Time     string
}

// Serializer converts records to Dicts. It is safe for concurrent use once
// configured; Register must not be called while serializing.
type Serializer struct {
	method     string
	layouts    Layouts
	storage    orm.Storage
	log        *slog.Logger
	inspector  *schema.Inspector
	formatters map[schema.FieldKind]Formatter
}

// Option configures a Serializer.
type Option func(*Serializer)

// WithMethod sets the dict method used when Serialize is called with an
// empty method name.
func WithMethod(name string) Option {
	return func(s *Serializer) {
		s.method = name
	}
}

// WithLayouts overrides the temporal layouts. Empty entries keep the default.
func WithLayouts(l Layouts) Option {
	return func(s *Serializer) {
		if l.Date != "" {
			s.layouts.Date = l.Date
		}

		if l.DateTime != "" {
			s.layouts.DateTime = l.DateTime
		}

		if l.Time != "" {
			s.layouts.Time = l.Time
		}
	}
}

// WithStorage sets the storage used for files that carry no storage of
// their own and for file columns stored as bare names.
func WithStorage(st orm.Storage) Option {
	return func(s *Serializer) {
		s.storage = st
	}
}

// WithLogger sets the logger. The process logger is used otherwise.
func WithLogger(l *slog.Logger) Option {
	return func(s *Serializer) {
		s.log = l
	}
}

// WithInspector shares a schema cache between serializers.
func WithInspector(in *schema.Inspector) Option {
	return func(s *Serializer) {
		s.inspector = in
	}
}

// WithFormatter replaces the formatter for kind.
func WithFormatter(kind schema.FieldKind, fn Formatter) Option {
	return func(s *Serializer) {
		s.Register(kind, fn)
	}
}

// New creates a Serializer with the default formatter table.
func New(opts ...Option) *Serializer {
	s := &Serializer{
		method: DefaultMethod,
		layouts: Layouts{
			Date:     DateLayout,
			DateTime: DateTimeLayout,
			Time:     TimeLayout,
		},
		inspector:  schema.NewInspector(),
		formatters: defaultFormatters(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Register sets the formatter for kind. A nil fn removes it, so the kind
// falls back to its string form.
func (s *Serializer) Register(kind schema.FieldKind, fn Formatter) {
	if fn == nil {
		delete(s.formatters, kind)
		return
	}

	s.formatters[kind] = fn
}

var defaultSerializer = New()

// Serialize converts record using the default Serializer.
func Serialize(record any, methodName string, visited Visited, fields ...string) (Dict, error) {
	return defaultSerializer.Serialize(record, methodName, visited, fields...)
}

// Serialize converts the named fields of record into a Dict.
//
// An unsaved record (nil, or with a zero primary key) and a record whose type
// is already in visited both yield an empty Dict. methodName names the dict
// method tried on related records; empty means the serializer's default.
// visited is never modified. record may also be a reflect.Value.
//
// An unknown field name is an error wrapping schema.ErrFieldNotFound.
func (s *Serializer) Serialize(record any, methodName string, visited Visited, fields ...string) (Dict, error) {
	rec, ok := record.(reflect.Value)
	if !ok {
		rec = reflect.ValueOf(record)
	}

	return s.serialize(indirect(rec), methodName, visited, fields)
}

func (s *Serializer) serialize(rec reflect.Value, methodName string, visited Visited, fields []string) (Dict, error) {
	if !rec.IsValid() {
		unsavedTotal.Inc()
		return Dict{}, nil
	}

	model, err := s.inspector.Inspect(rec.Type())
	if err != nil {
		return nil, err
	}

	if !persisted(rec, model) {
		unsavedTotal.Inc()
		s.logger().Debug("dict.unsaved", "model", model.ID.Short())

		return Dict{}, nil
	}

	if visited.Has(model.Type) {
		cyclesCut.Inc()
		s.logger().Debug("dict.cycle", "model", model.ID.Short(), "visited", visited.String())

		return Dict{}, nil
	}

	if methodName == "" {
		methodName = s.method
	}

	sc := &Scope{
		s:       s,
		Method:  methodName,
		Visited: visited.With(model.Type),
	}

	recordsTotal.Inc()

	out := make(Dict, len(fields))
	for _, name := range fields {
		f, err := model.Field(name)
		if err != nil {
			return nil, err
		}

		v, _ := f.Value(rec)

		val, err := s.format(sc, f, v)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", model.ID, name, err)
		}

		out[name] = val
	}

	return out, nil
}

func (s *Serializer) format(sc *Scope, f *schema.Field, v reflect.Value) (any, error) {
	if fn := s.formatters[f.Kind]; fn != nil {
		return fn(sc, f, v)
	}

	fallbackTotal.Inc()

	return Stringify(v), nil
}

func (s *Serializer) fileURL(f orm.File) string {
	if f.IsZero() {
		return ""
	}

	if f.Storage == nil && s.storage != nil {
		return s.storage.URL(f.Name)
	}

	return f.URL()
}

func (s *Serializer) logger() *slog.Logger {
	if s.log != nil {
		return s.log
	}

	return logger.L()
}
