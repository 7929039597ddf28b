// Package config provides configuration structures and utilities for devcheck.
// It holds the options shared by the schema and accessibility checks, the
// optional .devcheck YAML file and report output preferences.
package config
