package assessment

// ToolRecord is one immutable catalog entry: a tool and its raw capability
// scores across the three dimensions, on a 0-100 scale.
type ToolRecord struct {
	Name        string                `json:"name" yaml:"name"`
	Scores      map[Dimension]float64 `json:"scores" yaml:"scores"`
	SubCriteria []SubCriterion        `json:"subCriteria" yaml:"subCriteria"`

	// Minimum operating context the tool is viable in. A profile below
	// either level filters the tool out of recommendations entirely.
	RequiresConnectivity Level `json:"requiresConnectivity" yaml:"requiresConnectivity"`
	RequiresLiteracy     Level `json:"requiresLiteracy" yaml:"requiresLiteracy"`
}

// SubCriterion is a named capability under one dimension, used to justify
// recommendations referencing the tool.
type SubCriterion struct {
	Dimension Dimension `json:"dimension" yaml:"dimension"`
	Name      string    `json:"name" yaml:"name"`
	Score     float64   `json:"score" yaml:"score"`
}

// Score returns the tool's raw score for the dimension.
func (t ToolRecord) Score(d Dimension) float64 {
	return t.Scores[d]
}

// SubCriteriaFor returns the tool's sub-criteria under the dimension,
// preserving declaration order.
func (t ToolRecord) SubCriteriaFor(d Dimension) []SubCriterion {
	var out []SubCriterion
	for _, sc := range t.SubCriteria {
		if sc.Dimension == d {
			out = append(out, sc)
		}
	}
	return out
}
