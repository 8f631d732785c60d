// Package dict turns ORM records into plain map[string]any values ready for
// JSON encoding.
//
// Only the requested fields are emitted. Each field is formatted according to
// its schema kind:
//
//	date       -> "2006-01-02"
//	datetime   -> "2006-01-02 15:04:05"
//	time       -> "15:04:05"
//	fk, o2o    -> related record via its dict method, or {"id": <pk>}
//	m2m, rel   -> []Dict of the above
//	file/image -> {"url": <url>} or {} when no file is set
//	other      -> string form of the value
//
// Null values never fail: scalars become "" and mappings become {}.
//
// Reference cycles are cut with a Visited set of record types. Every call
// works on its own copy of the set, so sibling relations do not affect each
// other. A record type that is already in the set serializes to an empty Dict.
package dict
