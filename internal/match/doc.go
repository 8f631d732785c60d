// Package match finds the closest known name to a mistyped one.
//
// Names are compared after folding case and dropping separators, so
// "fullName", "full_name" and "FullName" are the same name.
package match
