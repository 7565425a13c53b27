package assessment

// ScoreResult is the computed outcome of scoring a tool selection: one value
// per dimension plus the weighted overall score, all on a 0-100 scale.
// ScoreResult is derived data; callers recompute it whenever the selection or
// weights change rather than caching it.
type ScoreResult struct {
	ByDimension map[Dimension]float64 `json:"byDimension"`
	Overall     float64               `json:"overall"`
}

// ComputeScores aggregates the selection's raw capability scores into
// per-dimension scores and a weighted overall score.
//
// Each dimension score is the unweighted mean of the selected tools' raw
// scores for that dimension; an empty selection yields 0 for every dimension.
// The overall score is the weighted mean of the dimension scores using
// normalized weights (equal weighting when all weights are 0). The function
// is pure: identical inputs always produce identical results.
func ComputeScores(selection []ToolRecord, weights Weights) (ScoreResult, error) {
	if err := weights.Validate(); err != nil {
		return ScoreResult{}, err
	}

	result := ScoreResult{ByDimension: make(map[Dimension]float64, 3)}
	for _, d := range Dimensions() {
		result.ByDimension[d] = DimensionAverage(selection, d)
	}

	norm := weights.Normalized()
	for _, d := range Dimensions() {
		result.Overall += result.ByDimension[d] * norm[d]
	}
	return result, nil
}

// DimensionAverage returns the unweighted mean of the selection's raw scores
// for the dimension, or 0 for an empty selection. The recommendation engine
// uses the same rule to estimate adoption deltas.
func DimensionAverage(selection []ToolRecord, d Dimension) float64 {
	if len(selection) == 0 {
		return 0
	}
	total := 0.0
	for _, t := range selection {
		total += t.Score(d)
	}
	return total / float64(len(selection))
}
