package schema

import "errors"

var (
	ErrNotStruct      = errors.New("record type is not a struct")
	ErrBadTag         = errors.New("malformed orm tag")
	ErrDuplicateField = errors.New("duplicate dict field name")
	ErrFieldNotFound  = errors.New("field does not exist")
)
