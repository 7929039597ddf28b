// Package model defines the data structures shared by the checks and the
// report writers.
//
// This package contains the following main types:
//   - Severity: The level attached to every accessibility issue
//   - Issue: A single rule hit produced by the accessibility scanner
//   - A11yReport: The result of scanning one source file
//   - SchemaReport: The result of the simulated schema check
//
// The checks (a11y, schema) produce these values and the report package
// renders them, so keeping them here avoids import cycles between the two.
//
// All report types serialize to JSON for the --json output.
package model
