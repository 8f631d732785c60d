// Package schema reads record schemas from Go struct types.
//
// A record is a struct whose exported fields are its columns and relations.
// Each field gets a FieldKind, either from an explicit `orm` struct tag or
// inferred from the Go type:
//
//	type Order struct {
//		ID        int64              `json:"id"`                // pk (by name)
//		PlacedOn  time.Time          `json:"placed_on" orm:"date"`
//		Customer  *Customer          `json:"customer"`          // fk (pointer to struct)
//		Products  orm.Set[*Product]  `json:"products"`          // m2m (RelatedSet)
//		Invoice   orm.File           `json:"invoice"`           // file
//		Internal  string             `orm:"-"`                  // skipped
//	}
//
// Models are cached per reflect.Type; the cache is safe for concurrent use.
package schema
