package recommendations

import "pia-backend/internal/assessment"

// fallbackKey selects the generic recommendation for a dimension under one
// context factor level. Each dimension is paired with the context factor
// that most constrains it: privacy with regulatory pressure, community
// ownership with digital literacy, sustainability with connectivity.
type fallbackKey struct {
	Dimension assessment.Dimension
	Level     assessment.Level
}

type fallbackText struct {
	Action    string
	Rationale string
}

// fallbackTable is consulted when every candidate for a gapped dimension is
// filtered out. New context rules are added here without touching the
// ranking algorithm.
var fallbackTable = map[fallbackKey]fallbackText{
	{assessment.DimensionPrivacy, assessment.LevelHigh}: {
		Action:    "Introduce encrypted channels for sensitive communications",
		Rationale: "Under high regulatory pressure, sources and contributors need encrypted, anonymity-preserving channels even if general outreach stays on existing platforms.",
	},
	{assessment.DimensionPrivacy, assessment.LevelMedium}: {
		Action:    "Audit data retention across current tools",
		Rationale: "Reducing what your current platforms retain lowers exposure before any new tool is adopted.",
	},
	{assessment.DimensionPrivacy, assessment.LevelLow}: {
		Action:    "Adopt baseline privacy practices on existing tools",
		Rationale: "Enable available encryption features and minimize collected personal data on the tools already in use.",
	},
	{assessment.DimensionCommunity, assessment.LevelLow}: {
		Action:    "Build low-literacy community channels",
		Rationale: "Voice-first and local-language formats let the community participate without assuming reading or technical fluency.",
	},
	{assessment.DimensionCommunity, assessment.LevelMedium}: {
		Action:    "Open governance of existing channels to the community",
		Rationale: "Shared moderation and feedback structures increase community control without new infrastructure.",
	},
	{assessment.DimensionCommunity, assessment.LevelHigh}: {
		Action:    "Stand up community-owned infrastructure",
		Rationale: "With a digitally fluent audience, self-managed forums or mailing lists move control from platforms to the community.",
	},
	{assessment.DimensionSustainability, assessment.LevelLow}: {
		Action:    "Seek offline-capable alternatives",
		Rationale: "With low connectivity, offline-first distribution keeps the platform running independently of network access and data costs.",
	},
	{assessment.DimensionSustainability, assessment.LevelMedium}: {
		Action:    "Reduce dependence on commercial platforms",
		Rationale: "Migrating core workflows to self-hosted or community-maintained services cuts recurring costs and lock-in.",
	},
	{assessment.DimensionSustainability, assessment.LevelHigh}: {
		Action:    "Consolidate on independently hosted services",
		Rationale: "Good connectivity makes self-hosted alternatives viable, removing per-seat licensing and vendor dependence.",
	},
}

// fallbackRecommendation builds the generic recommendation for a gapped
// dimension whose candidate list came up empty. Every urgent gap is
// guaranteed at least one actionable item.
func fallbackRecommendation(d assessment.Dimension, profile assessment.Profile) Recommendation {
	text, ok := fallbackTable[fallbackKey{d, fallbackFactor(d, profile)}]
	if !ok {
		text = fallbackText{
			Action:    "Review " + d.Label() + " practices",
			Rationale: "No catalog tool fits the current operating context; improving practices on existing tools is the available lever.",
		}
	}
	return Recommendation{
		ID:        slugify("practice-" + string(d) + "-" + text.Action),
		Dimension: d,
		Action:    text.Action,
		Rationale: text.Rationale,
		Generic:   true,
	}
}

func fallbackFactor(d assessment.Dimension, profile assessment.Profile) assessment.Level {
	switch d {
	case assessment.DimensionPrivacy:
		return profile.RegulatoryPressure
	case assessment.DimensionCommunity:
		return profile.Literacy
	default:
		return profile.Connectivity
	}
}
