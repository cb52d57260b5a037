// Package config locates and decodes .ethlintrc.toml files into the raw
// configuration the lint engine validates.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/olehManboy/Ethlint/internal/lint"
	"github.com/olehManboy/Ethlint/internal/rules"
)

// FileName is the configuration file looked for in the linted directory and
// its ancestors.
const FileName = ".ethlintrc.toml"

// ErrNotFound is returned by Find when no configuration file exists between
// the start directory and the filesystem root.
var ErrNotFound = errors.New("no " + FileName + " found")

type fileShape struct {
	Options struct {
		ReturnInternalIssues bool `toml:"return-internal-issues"`
	} `toml:"options"`
	Rules map[string]any `toml:"rules"`
}

// Find walks from dir upwards and returns the nearest configuration file.
func Find(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(abs, FileName)
		if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", ErrNotFound
		}
		abs = parent
	}
}

// Load decodes a configuration file. Decoding is shape-level only; rule
// names and option values are validated by the engine against the registry.
func Load(path string) (lint.RawConfig, error) {
	var shape fileShape
	if _, err := toml.DecodeFile(path, &shape); err != nil {
		return lint.RawConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	raw := lint.RawConfig{Rules: shape.Rules}
	raw.Options.ReturnInternalIssues = shape.Options.ReturnInternalIssues
	if raw.Rules == nil {
		raw.Rules = map[string]any{}
	}
	return raw, nil
}

// LoadOrDefault resolves the effective configuration for a directory: the
// nearest file when one exists, otherwise the recommended rule set.
func LoadOrDefault(dir string) (lint.RawConfig, error) {
	path, err := Find(dir)
	if errors.Is(err, ErrNotFound) {
		return Default(), nil
	}
	if err != nil {
		return lint.RawConfig{}, err
	}
	return Load(path)
}

// Default returns the recommended builtin rule set.
func Default() lint.RawConfig {
	return lint.RawConfig{Rules: rules.Recommended()}
}

// WriteDefault creates a starter configuration file at dir. Refuses to
// overwrite an existing one.
func WriteDefault(dir string) (string, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("%s already exists", path)
	}

	names := make([]string, 0)
	for name := range rules.Recommended() {
		names = append(names, name)
	}
	sort.Strings(names)

	content := "# Ethlint configuration.\n#\n# Values per rule: true/false, a severity (\"warning\"/\"error\"),\n# or [severity, option...].\n\n[rules]\n"
	for _, name := range names {
		content += name + " = true\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return path, err
	}
	return path, nil
}
