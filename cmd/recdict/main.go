// Package main provides the CLI entrypoint for recdict.
//
// recdict turns ORM-style Go records into plain maps:
//   - dump serializes a record loaded from a YAML fixture and prints JSON
//   - inspect statically reports record schemas and their field kinds
package main

func main() {
	Execute()
}
