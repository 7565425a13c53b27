package assessment

// Dimension is one of the three public interest evaluation axes.
type Dimension string

const (
	DimensionPrivacy        Dimension = "privacy"
	DimensionCommunity      Dimension = "community"
	DimensionSustainability Dimension = "sustainability"
)

// Dimensions returns all dimensions in declaration order. The order is part
// of the contract: ties in gap urgency and ranking are broken by it.
func Dimensions() []Dimension {
	return []Dimension{DimensionPrivacy, DimensionCommunity, DimensionSustainability}
}

// Target returns the fixed target score (0-100 scale) for the dimension.
func (d Dimension) Target() float64 {
	switch d {
	case DimensionPrivacy:
		return 80
	case DimensionCommunity:
		return 75
	case DimensionSustainability:
		return 70
	default:
		return 0
	}
}

// Label returns the human-readable dimension name.
func (d Dimension) Label() string {
	switch d {
	case DimensionPrivacy:
		return "Privacy & Security"
	case DimensionCommunity:
		return "Community Ownership"
	case DimensionSustainability:
		return "Sustainability"
	default:
		return string(d)
	}
}

// Criteria returns the evaluation criteria presented alongside the dimension.
func (d Dimension) Criteria() []string {
	switch d {
	case DimensionPrivacy:
		return []string{
			"End-to-end encryption for sensitive communications",
			"Anonymity options for sources and contributors",
			"Resistance to surveillance and data requests",
			"User data minimization",
		}
	case DimensionCommunity:
		return []string{
			"Community participation in platform governance",
			"Local language support",
			"Ability to shape features and moderation",
			"Independence from external platform policies",
		}
	case DimensionSustainability:
		return []string{
			"Low operating cost",
			"No lock-in to commercial vendors",
			"Maintainable with local technical capacity",
			"Usable under poor connectivity",
		}
	default:
		return nil
	}
}

// Valid reports whether d is one of the known dimensions.
func (d Dimension) Valid() bool {
	switch d {
	case DimensionPrivacy, DimensionCommunity, DimensionSustainability:
		return true
	}
	return false
}

// ParseDimension converts a wire value into a Dimension.
func ParseDimension(raw string) (Dimension, error) {
	d := Dimension(raw)
	if !d.Valid() {
		return "", fieldError("dimension", raw)
	}
	return d, nil
}
