// Package main provides the entry point for the devcheck CLI.
//
// devcheck bundles the code-quality checks used by the expenses project:
// a Prisma schema check and a regex based accessibility scanner for
// React/TSX components.
//
// Usage:
//
//	devcheck schema [schema-path]
//	devcheck a11y <file>...
//
// See --help for all available options.
package main

// main is the entry point for devcheck.
func main() {
	Execute()
}
