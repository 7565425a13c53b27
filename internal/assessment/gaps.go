package assessment

import "sort"

// Gap is the shortfall between a dimension's computed score and its fixed
// target, ranked by urgency.
type Gap struct {
	Dimension Dimension `json:"dimension"`
	Score     float64   `json:"score"`
	Target    float64   `json:"target"`
	Gap       float64   `json:"gap"`
	Urgency   float64   `json:"urgency"`
}

// ComputeGaps compares a score result against the fixed dimension targets.
// Dimensions that already meet or exceed their target are excluded: there is
// nothing to recommend for them. Urgency is gap size times the normalized
// priority weight, and the output is ordered by descending urgency with ties
// broken by dimension declaration order.
func ComputeGaps(scores ScoreResult, weights Weights) ([]Gap, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}

	norm := weights.Normalized()
	gaps := make([]Gap, 0, 3)
	for _, d := range Dimensions() {
		score := scores.ByDimension[d]
		gap := d.Target() - score
		if gap <= 0 {
			continue
		}
		gaps = append(gaps, Gap{
			Dimension: d,
			Score:     score,
			Target:    d.Target(),
			Gap:       gap,
			Urgency:   gap * norm[d],
		})
	}

	// The pre-sort slice is in declaration order, so a stable sort gives the
	// deterministic tie-break.
	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].Urgency > gaps[j].Urgency
	})
	return gaps, nil
}
