package dict

import (
	"fmt"
	"reflect"
)

var (
	dictType    = reflect.TypeOf((*map[string]any)(nil)).Elem()
	visitedType = reflect.TypeOf((*Visited)(nil)).Elem()
	errorType   = reflect.TypeOf((*error)(nil)).Elem()
)

// method is a resolved dict method bound to a record.
type method struct {
	name         string
	fn           reflect.Value
	takesVisited bool
	hasErr       bool
}

// lookupMethod finds the method called name on rec and checks its signature.
//
// Supports signatures:
//   - func() map[string]any
//   - func() (map[string]any, error)
//   - func(Visited) map[string]any
//   - func(Visited) (map[string]any, error)
func lookupMethod(rec reflect.Value, name string) (method, error) {
	if name == "" {
		return method{}, ErrNoMethod
	}

	fn := receiver(rec).MethodByName(name)
	if !fn.IsValid() {
		return method{}, fmt.Errorf("%s.%s: %w", rec.Type(), name, ErrNoMethod)
	}

	m := method{name: name, fn: fn}
	fnType := fn.Type()

	switch fnType.NumIn() {
	default:
		return method{}, fmt.Errorf("%s.%s: %w", rec.Type(), name, ErrNotDictMethod)
	case 0:
	case 1:
		if fnType.In(0) != visitedType {
			return method{}, fmt.Errorf("%s.%s: %w", rec.Type(), name, ErrNotDictMethod)
		}

		m.takesVisited = true
	}

	switch {
	default:
		return method{}, fmt.Errorf("%s.%s: %w", rec.Type(), name, ErrNotDictMethod)
	case fnType.NumOut() == 1 && fnType.Out(0) == dictType:
	case fnType.NumOut() == 2 && fnType.Out(0) == dictType && fnType.Out(1) == errorType:
		m.hasErr = true
	}

	return m, nil
}

// call invokes the method, handing it visited when it accepts one.
func (m method) call(visited Visited) (Dict, error) {
	var in []reflect.Value
	if m.takesVisited {
		in = []reflect.Value{reflect.ValueOf(visited)}
	}

	out := m.fn.Call(in)

	if m.hasErr {
		if err, _ := out[1].Interface().(error); err != nil {
			return nil, err
		}
	}

	d, _ := out[0].Interface().(map[string]any)
	if d == nil {
		d = Dict{}
	}

	return d, nil
}

// receiver returns an addressable pointer to rec so that both value and
// pointer receiver methods are reachable.
func receiver(rec reflect.Value) reflect.Value {
	if rec.Kind() == reflect.Pointer {
		return rec
	}

	if rec.CanAddr() {
		return rec.Addr()
	}

	p := reflect.New(rec.Type())
	p.Elem().Set(rec)

	return p
}
