package assessment

import "strings"

// OrgType classifies the organization being assessed.
type OrgType string

const (
	OrgCommunityMedia  OrgType = "community_media"
	OrgDigitalNewsroom OrgType = "digital_newsroom"
	OrgCitizenForum    OrgType = "citizen_forum"
	OrgOther           OrgType = "other"
)

// Level is a three-step ordinal scale used for connectivity, digital
// literacy, and regulatory pressure.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// Weights maps each dimension to its user-supplied priority weight. Relative
// magnitude expresses priority; the sum need not be 1.
type Weights map[Dimension]float64

// Profile is the session-scoped organizational context. It is owned by a
// single session and never shared; the engine treats it as read-only input.
type Profile struct {
	OrgName            string  `json:"orgName"`
	OrgType            OrgType `json:"orgType"`
	Region             string  `json:"region"`
	Connectivity       Level   `json:"connectivity"`
	Literacy           Level   `json:"literacy"`
	RegulatoryPressure Level   `json:"regulatoryPressure"`
	Weights            Weights `json:"weights"`
}

// ParseOrgType converts a wire value into an OrgType.
func ParseOrgType(raw string) (OrgType, error) {
	switch OrgType(normalize(raw)) {
	case OrgCommunityMedia:
		return OrgCommunityMedia, nil
	case OrgDigitalNewsroom:
		return OrgDigitalNewsroom, nil
	case OrgCitizenForum:
		return OrgCitizenForum, nil
	case OrgOther:
		return OrgOther, nil
	}
	return "", fieldError("orgType", raw)
}

// ParseLevel converts a wire value into a Level. The field name is carried
// into the validation error so the boundary can point at the bad input.
func ParseLevel(field, raw string) (Level, error) {
	switch Level(normalize(raw)) {
	case LevelLow:
		return LevelLow, nil
	case LevelMedium:
		return LevelMedium, nil
	case LevelHigh:
		return LevelHigh, nil
	}
	return "", fieldError(field, raw)
}

// Rank returns the ordinal position of the level, low first. Unknown levels
// rank below low so a zero value never satisfies a requirement.
func (l Level) Rank() int {
	switch l {
	case LevelLow:
		return 1
	case LevelMedium:
		return 2
	case LevelHigh:
		return 3
	default:
		return 0
	}
}

// AtLeast reports whether l meets or exceeds the required level.
func (l Level) AtLeast(required Level) bool {
	return l.Rank() >= required.Rank()
}

// Validate checks every enumerated field and the weight mapping. It returns
// ErrInvalidProfileField or ErrInvalidWeight on the first violation.
func (p Profile) Validate() error {
	if _, err := ParseOrgType(string(p.OrgType)); err != nil {
		return err
	}
	if _, err := ParseLevel("connectivity", string(p.Connectivity)); err != nil {
		return err
	}
	if _, err := ParseLevel("literacy", string(p.Literacy)); err != nil {
		return err
	}
	if _, err := ParseLevel("regulatoryPressure", string(p.RegulatoryPressure)); err != nil {
		return err
	}
	return p.Weights.Validate()
}

// Validate rejects negative weights and unknown dimensions.
func (w Weights) Validate() error {
	for d, v := range w {
		if !d.Valid() {
			return fieldError("weights", string(d))
		}
		if v < 0 {
			return ErrInvalidWeight
		}
	}
	return nil
}

// Normalized returns per-dimension weights scaled to sum to 1. Missing
// dimensions count as 0. If every weight is 0 (or the map is empty), all
// dimensions fall back to equal weighting.
func (w Weights) Normalized() map[Dimension]float64 {
	dims := Dimensions()
	out := make(map[Dimension]float64, len(dims))

	total := 0.0
	for _, d := range dims {
		total += w[d]
	}
	if total == 0 {
		for _, d := range dims {
			out[d] = 1.0 / float64(len(dims))
		}
		return out
	}
	for _, d := range dims {
		out[d] = w[d] / total
	}
	return out
}

func normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
