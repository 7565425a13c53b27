package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"pia-backend/internal/assessment"
)

// ErrCatalogNotFound is returned when the catalog file does not exist.
// Callers decide whether that is fatal based on whether the path was
// explicitly configured.
var ErrCatalogNotFound = errors.New("catalog file not found")

type catalogFile struct {
	Tools []assessment.ToolRecord `yaml:"tools"`
}

// LoadFile loads tool records from a YAML file and validates them with the
// same completeness rules as the built-in data.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // operator-provided catalog path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrCatalogNotFound
		}
		return nil, err
	}

	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if len(cf.Tools) == 0 {
		return nil, fmt.Errorf("%w: %s defines no tools", ErrMalformedEntry, path)
	}
	return New(cf.Tools)
}
