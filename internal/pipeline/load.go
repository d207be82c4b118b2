// internal/pipeline/load.go

// Package pipeline loads declarative scan -> read -> write pipeline
// definitions from YAML and builds the corresponding topology through
// the public binding API.
package pipeline

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and decodes a pipeline definition file.
// Unknown YAML keys are rejected.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pipeline: read %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("pipeline: decode %s: %w", path, err)
	}
	return &cfg, nil
}
