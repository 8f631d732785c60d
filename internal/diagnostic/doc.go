// Package diagnostic provides structured errors, warnings and notes found
// while inspecting record schemas.
//
// Key capabilities:
//   - Malformed or conflicting orm tags
//   - Field kinds that do not fit the Go type they are declared on
//   - Records without an identity column
package diagnostic
