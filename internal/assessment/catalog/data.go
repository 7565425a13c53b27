package catalog

import "pia-backend/internal/assessment"

// BuiltIn returns the catalog of built-in tool records. Scores reflect the
// reference assessment table for tools commonly used by community media and
// alternative platforms.
func BuiltIn() *Catalog {
	c, err := New(builtInRecords())
	if err != nil {
		// Built-in data is authored alongside the validation rules; a
		// malformed entry here is a programming error.
		panic(err)
	}
	return c
}

func builtInRecords() []assessment.ToolRecord {
	const (
		privacy        = assessment.DimensionPrivacy
		community      = assessment.DimensionCommunity
		sustainability = assessment.DimensionSustainability

		low    = assessment.LevelLow
		medium = assessment.LevelMedium
		high   = assessment.LevelHigh
	)

	return []assessment.ToolRecord{
		{
			Name: "WhatsApp",
			Scores: map[assessment.Dimension]float64{
				privacy: 20, community: 10, sustainability: 90,
			},
			SubCriteria: []assessment.SubCriterion{
				{Dimension: privacy, Name: "transport encryption", Score: 60},
				{Dimension: privacy, Name: "metadata protection", Score: 10},
				{Dimension: community, Name: "platform control", Score: 10},
				{Dimension: sustainability, Name: "cost efficiency", Score: 90},
			},
			RequiresConnectivity: low,
			RequiresLiteracy:     low,
		},
		{
			Name: "Signal",
			Scores: map[assessment.Dimension]float64{
				privacy: 90, community: 70, sustainability: 90,
			},
			SubCriteria: []assessment.SubCriterion{
				{Dimension: privacy, Name: "end-to-end encryption", Score: 95},
				{Dimension: privacy, Name: "source anonymity", Score: 80},
				{Dimension: community, Name: "open source governance", Score: 75},
				{Dimension: sustainability, Name: "cost efficiency", Score: 90},
			},
			RequiresConnectivity: low,
			RequiresLiteracy:     medium,
		},
		{
			Name: "Telegram",
			Scores: map[assessment.Dimension]float64{
				privacy: 60, community: 50, sustainability: 80,
			},
			SubCriteria: []assessment.SubCriterion{
				{Dimension: privacy, Name: "optional secret chats", Score: 70},
				{Dimension: community, Name: "channel ownership", Score: 50},
				{Dimension: sustainability, Name: "cost efficiency", Score: 80},
			},
			RequiresConnectivity: low,
			RequiresLiteracy:     low,
		},
		{
			Name: "Facebook",
			Scores: map[assessment.Dimension]float64{
				privacy: 10, community: 5, sustainability: 80,
			},
			SubCriteria: []assessment.SubCriterion{
				{Dimension: privacy, Name: "data harvesting exposure", Score: 5},
				{Dimension: community, Name: "platform control", Score: 5},
				{Dimension: sustainability, Name: "cost efficiency", Score: 80},
			},
			RequiresConnectivity: medium,
			RequiresLiteracy:     low,
		},
		{
			Name: "Twitter/X",
			Scores: map[assessment.Dimension]float64{
				privacy: 20, community: 10, sustainability: 90,
			},
			SubCriteria: []assessment.SubCriterion{
				{Dimension: privacy, Name: "metadata protection", Score: 15},
				{Dimension: community, Name: "platform control", Score: 10},
				{Dimension: sustainability, Name: "cost efficiency", Score: 90},
			},
			RequiresConnectivity: medium,
			RequiresLiteracy:     low,
		},
		{
			Name: "Email Lists",
			Scores: map[assessment.Dimension]float64{
				privacy: 40, community: 80, sustainability: 60,
			},
			SubCriteria: []assessment.SubCriterion{
				{Dimension: privacy, Name: "optional PGP encryption", Score: 50},
				{Dimension: community, Name: "subscriber list ownership", Score: 85},
				{Dimension: sustainability, Name: "low running cost", Score: 65},
			},
			RequiresConnectivity: low,
			RequiresLiteracy:     medium,
		},
		{
			Name: "Forums",
			Scores: map[assessment.Dimension]float64{
				privacy: 70, community: 90, sustainability: 40,
			},
			SubCriteria: []assessment.SubCriterion{
				{Dimension: privacy, Name: "pseudonymous participation", Score: 75},
				{Dimension: community, Name: "community moderation", Score: 90},
				{Dimension: community, Name: "local language support", Score: 80},
				{Dimension: sustainability, Name: "hosting cost", Score: 40},
			},
			RequiresConnectivity: medium,
			RequiresLiteracy:     medium,
		},
		{
			Name: "WordPress",
			Scores: map[assessment.Dimension]float64{
				privacy: 60, community: 80, sustainability: 50,
			},
			SubCriteria: []assessment.SubCriterion{
				{Dimension: privacy, Name: "self-hosted data control", Score: 65},
				{Dimension: community, Name: "content ownership", Score: 85},
				{Dimension: community, Name: "local language support", Score: 75},
				{Dimension: sustainability, Name: "hosting cost", Score: 50},
			},
			RequiresConnectivity: medium,
			RequiresLiteracy:     medium,
		},
		{
			Name: "Custom Platform",
			Scores: map[assessment.Dimension]float64{
				privacy: 80, community: 100, sustainability: 20,
			},
			SubCriteria: []assessment.SubCriterion{
				{Dimension: privacy, Name: "full data control", Score: 85},
				{Dimension: community, Name: "community governance", Score: 100},
				{Dimension: community, Name: "local language support", Score: 95},
				{Dimension: sustainability, Name: "development cost", Score: 15},
			},
			RequiresConnectivity: high,
			RequiresLiteracy:     high,
		},
		{
			Name: "Bluetooth Share",
			Scores: map[assessment.Dimension]float64{
				privacy: 90, community: 80, sustainability: 95,
			},
			SubCriteria: []assessment.SubCriterion{
				{Dimension: privacy, Name: "no network surveillance surface", Score: 95},
				{Dimension: community, Name: "device-to-device control", Score: 80},
				{Dimension: sustainability, Name: "offline capability", Score: 100},
				{Dimension: sustainability, Name: "zero running cost", Score: 95},
			},
			RequiresConnectivity: low,
			RequiresLiteracy:     low,
		},
		{
			Name: "SMS",
			Scores: map[assessment.Dimension]float64{
				privacy: 30, community: 20, sustainability: 70,
			},
			SubCriteria: []assessment.SubCriterion{
				{Dimension: privacy, Name: "carrier interception exposure", Score: 25},
				{Dimension: community, Name: "carrier dependence", Score: 20},
				{Dimension: sustainability, Name: "offline capability", Score: 80},
			},
			RequiresConnectivity: low,
			RequiresLiteracy:     low,
		},
		{
			Name: "Radio",
			Scores: map[assessment.Dimension]float64{
				privacy: 50, community: 40, sustainability: 30,
			},
			SubCriteria: []assessment.SubCriterion{
				{Dimension: privacy, Name: "anonymous listening", Score: 70},
				{Dimension: community, Name: "local language broadcast", Score: 60},
				{Dimension: sustainability, Name: "transmission cost", Score: 30},
			},
			RequiresConnectivity: low,
			RequiresLiteracy:     low,
		},
	}
}
