package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// emptyConfigFile writes an empty .devcheck so tests never pick up a
// config file from the working or home directory.
func emptyConfigFile(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".devcheck")
	if err := os.WriteFile(path, nil, 0600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

// writeFile writes content to name in a temporary directory.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

// runCheck executes the root command with args and an isolated config file,
// returning everything written to stdout.
func runCheck(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs(append(args, "--config", emptyConfigFile(t)))

	err := cmd.Execute()
	return buf.String(), err
}
