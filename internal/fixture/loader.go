package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"recdict/orm"
)

// LoadFile reads and links a fixture file. Files and images are attached to
// storage when it is not nil.
func LoadFile(path string, storage orm.Storage) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture file %s: %w", path, err)
	}

	set, err := Parse(data, storage)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return set, nil
}

// Parse decodes fixture YAML and links the records it describes.
func Parse(data []byte, storage orm.Storage) (*Set, error) {
	var dto YAMLFixture

	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("failed to parse fixture YAML: %w", err)
	}

	return Map(dto, storage)
}
