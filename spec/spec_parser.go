// Package spec loads the canonical recipe/dish-list test corpus used to
// exercise the engine end to end against canonical.yaml.
package spec

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// ParseSpecFile reads a YAML canonical-test file and unmarshals it.
func ParseSpecFile(path string, out *CanonicalTests) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read spec file %s: %w", path, err)
	}
	return ParseSpecData(data, out)
}

// ParseSpecData unmarshals YAML canonical-test content.
func ParseSpecData(data []byte, out *CanonicalTests) error {
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal spec: %w", err)
	}
	return nil
}
