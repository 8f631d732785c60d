package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// TagKey is the struct tag key read for ORM field metadata.
const TagKey = "orm"

// Tag is a parsed `orm` struct tag.
//
// Format: `orm:"<kind>[,name=<dict name>]"` or `orm:"-"`. The kind may be
// left empty (`orm:",name=x"`) to keep type-based inference.
type Tag struct {
	Kind    FieldKind
	HasKind bool
	Name    string
	Skip    bool
}

// ParseTag parses the value of an `orm` struct tag.
func ParseTag(value string) (Tag, error) {
	var tag Tag

	if value == "-" {
		tag.Skip = true
		return tag, nil
	}

	if value == "" {
		return tag, nil
	}

	parts := strings.Split(value, ",")

	if head := strings.TrimSpace(parts[0]); head != "" {
		kind, ok := ParseKind(head)
		if !ok {
			return Tag{}, fmt.Errorf("%w: unknown kind %q", ErrBadTag, head)
		}

		tag.Kind = kind
		tag.HasKind = true
	}

	for _, opt := range parts[1:] {
		opt = strings.TrimSpace(opt)
		key, val, found := strings.Cut(opt, "=")

		switch {
		case opt == "":
			continue
		case found && key == "name" && val != "":
			tag.Name = val
		default:
			return Tag{}, fmt.Errorf("%w: unknown option %q", ErrBadTag, opt)
		}
	}

	return tag, nil
}

// JSONName returns the name part of a json struct tag, or "" when the tag
// is absent or "-".
func JSONName(st reflect.StructTag) string {
	tag := st.Get("json")
	if tag == "" || tag == "-" {
		return ""
	}

	name, _, _ := strings.Cut(tag, ",")

	return name
}

// DictName picks the dict key for a field: the `orm` name option, then the
// json tag name, then the Go field name.
func DictName(goName string, st reflect.StructTag, tag Tag) string {
	if tag.Name != "" {
		return tag.Name
	}

	if name := JSONName(st); name != "" {
		return name
	}

	return goName
}
