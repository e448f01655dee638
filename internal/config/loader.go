package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// LoadWalkthrough loads, parses and validates a walkthrough from a YAML file.
func LoadWalkthrough(path string) (*Walkthrough, error) {
	// Security: Use os.OpenRoot so the file cannot escape its directory via symlinks
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open walkthrough directory: %w", err)
	}
	defer func() {
		_ = root.Close() // Best-effort cleanup
	}()

	file, err := root.Open(base)
	if err != nil {
		return nil, fmt.Errorf("failed to open walkthrough: %w", err)
	}
	defer func() {
		_ = file.Close() // Best-effort cleanup
	}()

	return LoadWalkthroughFromReader(file)
}

// LoadWalkthroughFromReader parses and validates a walkthrough from an io.Reader.
func LoadWalkthroughFromReader(r io.Reader) (*Walkthrough, error) {
	var w Walkthrough

	decoder := yaml.NewDecoder(r, yaml.DisallowUnknownField())
	if err := decoder.Decode(&w); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := Validate(&w); err != nil {
		return nil, err
	}
	if err := ValidateSchema(&w); err != nil {
		return nil, err
	}

	return &w, nil
}
