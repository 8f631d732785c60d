package analyze

import (
	"fmt"
	"go/types"

	"recdict/internal/schema"
)

const (
	ormPkg  = "recdict/orm"
	nullPkg = "github.com/volatiletech/null/v8"
)

// infer mirrors schema.Infer for go/types types.
func infer(goName string, t types.Type) schema.FieldKind {
	elem := deref(t)

	switch {
	case isTimeValue(elem):
		return schema.KindDateTime
	case isNamed(elem, ormPkg, "Image"):
		return schema.KindImage
	case isNamed(elem, ormPkg, "File"):
		return schema.KindFile
	case hasLoader(t, "All"):
		return schema.KindManyToMany
	case hasLoader(t, "Get"):
		return schema.KindForeignKey
	case isPointer(t) && isStruct(elem):
		return schema.KindForeignKey
	case isRecordList(t):
		return schema.KindManyToMany
	case goName == "ID":
		return schema.KindPrimaryKey
	default:
		return schema.KindPlain
	}
}

// checkKind explains why an explicit kind does not fit t, or returns "".
func checkKind(kind schema.FieldKind, t types.Type) string {
	elem := deref(t)

	switch {
	case kind == schema.KindTime:
		if isTimeValue(elem) || isNamed(elem, "time", "Duration") {
			return ""
		}
	case kind.IsTemporal():
		if isTimeValue(elem) {
			return ""
		}
	case kind.IsSingleRelation():
		if hasLoader(t, "Get") || isStruct(elem) || isBasic(elem) {
			return ""
		}
	case kind.IsMultiRelation():
		if hasLoader(t, "All") || isRecordList(t) {
			return ""
		}
	case kind.IsFile():
		if isNamed(elem, ormPkg, "File") || isNamed(elem, ormPkg, "Image") || hasMethod(elem, "URL") || isString(elem) {
			return ""
		}
	default:
		return ""
	}

	return fmt.Sprintf("kind %s does not fit type %s; the value will be stringified", kind, t)
}

func isTimeValue(t types.Type) bool {
	return isNamed(t, "time", "Time") || isNamed(t, nullPkg, "Time") || isNamed(t, "database/sql", "NullTime")
}

// isValueStruct reports struct types that are column values rather than records.
func isValueStruct(t types.Type) bool {
	return isTimeValue(t) || isNamed(t, ormPkg, "File") || isNamed(t, ormPkg, "Image")
}

func isNamed(t types.Type, pkgPath, name string) bool {
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}

	obj := named.Obj()

	return obj.Pkg() != nil && obj.Pkg().Path() == pkgPath && obj.Name() == name
}

func deref(t types.Type) types.Type {
	for {
		p, ok := t.(*types.Pointer)
		if !ok {
			return t
		}

		t = p.Elem()
	}
}

func isPointer(t types.Type) bool {
	_, ok := t.(*types.Pointer)
	return ok
}

func isStruct(t types.Type) bool {
	_, ok := t.Underlying().(*types.Struct)
	return ok
}

func isBasic(t types.Type) bool {
	_, ok := t.Underlying().(*types.Basic)
	return ok
}

func isString(t types.Type) bool {
	b, ok := t.Underlying().(*types.Basic)
	return ok && b.Info()&types.IsString != 0
}

func isRecordList(t types.Type) bool {
	var elem types.Type

	switch u := t.Underlying().(type) {
	case *types.Slice:
		elem = u.Elem()
	case *types.Array:
		elem = u.Elem()
	default:
		return false
	}

	elem = deref(elem)

	return isStruct(elem) && !isValueStruct(elem)
}

// hasLoader reports whether t has a method name() (X, error), the shape of
// orm.Lazy.Get and orm.RelatedSet.All.
func hasLoader(t types.Type, name string) bool {
	sig := methodSig(t, name)
	if sig == nil || sig.Params().Len() != 0 || sig.Results().Len() != 2 {
		return false
	}

	return types.Identical(sig.Results().At(1).Type(), types.Universe.Lookup("error").Type())
}

func hasMethod(t types.Type, name string) bool {
	return methodSig(t, name) != nil
}

func methodSig(t types.Type, name string) *types.Signature {
	obj, _, _ := types.LookupFieldOrMethod(t, false, nil, name)

	fn, ok := obj.(*types.Func)
	if !ok {
		return nil
	}

	sig, _ := fn.Type().(*types.Signature)

	return sig
}
