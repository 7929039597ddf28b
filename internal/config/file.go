package config

// A11yConfig holds the accessibility section of the config file.
type A11yConfig struct {
	// DisabledRules lists rule IDs that are never reported.
	DisabledRules []string `yaml:"disabledRules,omitempty"`
}

// File represents the structure of the .devcheck configuration file.
type File struct {
	// Lang is the message language ("fr" or "en").
	Lang string `yaml:"lang,omitempty"`

	// Schema is the Prisma schema path used when none is given on the
	// command line.
	Schema string `yaml:"schema,omitempty"`

	// A11y configures the accessibility scanner.
	A11y A11yConfig `yaml:"a11y,omitempty"`
}
