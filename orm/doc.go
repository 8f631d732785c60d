// Package orm describes the boundary between recdict and the object-relational
// layer that owns record schemas.
//
// Records are plain Go structs. Their schema is read from struct tags and field
// types (see the dict package), and the few behaviours that belong to the ORM
// itself are expressed as small interfaces:
//   - Keyed: a record reports its own primary key
//   - Lazy: a single relation fetched on demand
//   - RelatedSet: a multi relation fetched on demand
//   - FieldLister: the default field set used when a record is nested
//
// File and Image hold references to stored files; a Storage turns the stored
// name into a URL.
package orm
