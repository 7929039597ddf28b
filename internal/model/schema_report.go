package model

import "time"

// SchemaCheck is one labelled line of the schema report.
type SchemaCheck struct {
	// Name is the check label, e.g. "Relations".
	Name string `json:"name"`

	// Status is the localized status text printed after the label.
	Status string `json:"status"`
}

// SchemaReport is the result of the schema integrity check.
type SchemaReport struct {
	// SchemaPath is the schema path the check was run for.
	SchemaPath string `json:"schema_path"`

	// DateChecked is when the check was performed.
	DateChecked time.Time `json:"date_checked"`

	// Checks holds the check lines in print order.
	Checks []SchemaCheck `json:"checks"`
}

// NewSchemaReport creates a SchemaReport for the given path and checks.
func NewSchemaReport(schemaPath string, checks []SchemaCheck) *SchemaReport {
	return &SchemaReport{
		SchemaPath:  schemaPath,
		DateChecked: time.Now(),
		Checks:      checks,
	}
}
