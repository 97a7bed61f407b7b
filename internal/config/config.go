// Package config loads the optional per-project session file that
// configures how the solis CLI runs a program, mirroring the
// yaml-driven configuration of the teacher's ext package but scoped to
// the much smaller surface this language needs: a prelude path
// override and the color toggle.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Version is the solis language/toolchain version reported by the CLI.
const Version = "0.1.0"

// FileExtension is the canonical source file suffix for solis programs.
const FileExtension = ".solis"

// SessionFileName is the optional project-level config file name,
// analogous to the teacher's funxy.yaml.
const SessionFileName = ".solis.yaml"

// SessionConfig describes a project's .solis.yaml session configuration.
type SessionConfig struct {
	// Entry is the source file to load when no file argument is given.
	Entry string `yaml:"entry,omitempty"`

	// Prelude is the path of a prelude source file the CLI loads before
	// Entry (or before a -e expression).
	Prelude string `yaml:"prelude,omitempty"`

	// Repl forces a REPL prompt after loading Entry, even when stdin
	// isn't a terminal.
	Repl bool `yaml:"repl,omitempty"`

	// PrintBinding names a top-level binding to render and print after
	// loading, useful for a non-interactive "run and show result" mode.
	PrintBinding string `yaml:"print,omitempty"`

	// NoColor disables ANSI output even when stderr is a terminal.
	NoColor bool `yaml:"no_color,omitempty"`
}

// LoadSessionConfig reads and parses the session file at
// dir/SessionFileName. A missing file is not an error: it returns a
// zero-value SessionConfig so callers can fall back to command-line
// defaults.
func LoadSessionConfig(dir string) (*SessionConfig, error) {
	path := filepath.Join(dir, SessionFileName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &SessionConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var sess SessionConfig
	if err := yaml.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return &sess, nil
}
