// Package analyze inspects record schemas statically, without running the
// program that defines them.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to find the
// exported structs of the loaded packages and applies the same tag and
// type rules as the runtime schema package.
//
// Key types:
//   - Model: one record type with its fields and primary key
//   - Field: dict name, Go name, kind and declared type of a field
//   - Report: all models found plus diagnostics
package analyze
