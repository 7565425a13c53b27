// Package catalog holds the static capability catalog: every known tool and
// its raw capability scores across the three public interest dimensions.
// The catalog is loaded once at startup, validated for completeness, and
// read-only afterwards, so it is safe to share across sessions without
// locking.
package catalog

import (
	"errors"
	"fmt"

	"pia-backend/internal/assessment"
)

var (
	// ErrMalformedEntry is returned at load time when a record is missing a
	// required dimension score or sub-criterion. Fatal: downstream
	// computation assumes complete records.
	ErrMalformedEntry = errors.New("malformed catalog entry")

	// ErrToolNotFound is returned by Lookup for an unknown tool name.
	ErrToolNotFound = errors.New("tool not found")
)

// Catalog is an immutable, ordered collection of tool records.
type Catalog struct {
	tools  []assessment.ToolRecord
	byName map[string]assessment.ToolRecord
}

// New validates the records and builds a catalog. Record order is preserved;
// it doubles as the deterministic tie-break order for recommendation ranking.
func New(records []assessment.ToolRecord) (*Catalog, error) {
	c := &Catalog{
		tools:  make([]assessment.ToolRecord, 0, len(records)),
		byName: make(map[string]assessment.ToolRecord, len(records)),
	}
	for i, rec := range records {
		normalized, err := validateRecord(i, rec)
		if err != nil {
			return nil, err
		}
		if _, dup := c.byName[normalized.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate tool %q", ErrMalformedEntry, normalized.Name)
		}
		c.tools = append(c.tools, normalized)
		c.byName[normalized.Name] = normalized
	}
	return c, nil
}

// Lookup returns the record for the given tool name.
func (c *Catalog) Lookup(name string) (assessment.ToolRecord, error) {
	rec, ok := c.byName[name]
	if !ok {
		return assessment.ToolRecord{}, fmt.Errorf("%w: %q", ErrToolNotFound, name)
	}
	return rec, nil
}

// All returns every record in catalog order. The slice is a copy; the
// records themselves are shared and must not be mutated.
func (c *Catalog) All() []assessment.ToolRecord {
	out := make([]assessment.ToolRecord, len(c.tools))
	copy(out, c.tools)
	return out
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.tools)
}

func validateRecord(index int, rec assessment.ToolRecord) (assessment.ToolRecord, error) {
	if rec.Name == "" {
		return rec, fmt.Errorf("%w: record %d has no name", ErrMalformedEntry, index)
	}
	for _, d := range assessment.Dimensions() {
		if _, ok := rec.Scores[d]; !ok {
			return rec, fmt.Errorf("%w: %q missing %s score", ErrMalformedEntry, rec.Name, d)
		}
		if len(rec.SubCriteriaFor(d)) == 0 {
			return rec, fmt.Errorf("%w: %q has no %s sub-criterion", ErrMalformedEntry, rec.Name, d)
		}
	}
	// Records that omit context requirements are viable everywhere.
	if rec.RequiresConnectivity == "" {
		rec.RequiresConnectivity = assessment.LevelLow
	}
	if rec.RequiresLiteracy == "" {
		rec.RequiresLiteracy = assessment.LevelLow
	}
	return rec, nil
}
