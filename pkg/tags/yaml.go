package tags

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk YAML shape of a tag catalog.
type catalogFile struct {
	Tags []string `yaml:"tags"`
}

// LoadFile reads a YAML tag catalog from path.
//
// Expected shape:
//
//	tags:
//	  - work
//	  - work/errands
//	  - home
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tag catalog: %w", err)
	}
	return loadYAML(data)
}

func loadYAML(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse tag catalog: %w", err)
	}
	catalog, err := NewCatalog(file.Tags)
	if err != nil {
		return nil, fmt.Errorf("invalid tag catalog: %w", err)
	}
	return catalog, nil
}
