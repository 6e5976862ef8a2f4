package problem

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a problem definition from a YAML file and validates it.
func LoadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read problem file: %w", err)
	}

	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse problem file: %w", err)
	}

	if err := Validate(&def); err != nil {
		return nil, err
	}

	return &def, nil
}
