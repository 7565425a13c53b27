package assessments

import (
	"time"

	"pia-backend/internal/assessment"
	"pia-backend/internal/assessment/recommendations"
)

// Assessment is one session's stored state: the profile and tool selection
// the user supplied. Scores, gaps, and recommendations are derived on every
// read and never stored, so they cannot go stale.
type Assessment struct {
	ID        string
	Profile   assessment.Profile
	Selection []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Snapshot is the fully computed view of an assessment returned to clients.
type Snapshot struct {
	ID              string                           `json:"id"`
	Profile         assessment.Profile               `json:"profile"`
	Selection       []string                         `json:"selection"`
	Scores          assessment.ScoreResult           `json:"scores"`
	Targets         map[assessment.Dimension]float64 `json:"targets"`
	Gaps            []assessment.Gap                 `json:"gaps"`
	Recommendations []recommendations.Recommendation `json:"recommendations"`
	CreatedAt       time.Time                        `json:"createdAt"`
	UpdatedAt       time.Time                        `json:"updatedAt"`
}
