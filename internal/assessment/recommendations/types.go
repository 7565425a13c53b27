package recommendations

import "pia-backend/internal/assessment"

// Recommendation is one suggested tool or practice change, tied to the
// dimension whose gap it addresses.
type Recommendation struct {
	ID             string               `json:"id"`
	Tool           string               `json:"tool,omitempty"`
	Dimension      assessment.Dimension `json:"dimension"`
	Action         string               `json:"action"`
	Rationale      string               `json:"rationale"`
	EstimatedDelta float64              `json:"estimatedDelta"`
	Generic        bool                 `json:"generic"`
	Order          int                  `json:"order"`
}

// Input bundles everything recommendation generation needs. All fields are
// read-only; generation is pure.
type Input struct {
	Gaps      []assessment.Gap
	Profile   assessment.Profile
	Catalog   []assessment.ToolRecord
	Selection []assessment.ToolRecord
}
