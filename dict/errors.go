package dict

import "errors"

var (
	ErrNoMethod      = errors.New("record has no such method")
	ErrNotDictMethod = errors.New("method is not a recognizable dict method")
)
