package assessment

import (
	"errors"
	"testing"
)

func scoreResult(privacy, community, sustainability float64) ScoreResult {
	return ScoreResult{
		ByDimension: map[Dimension]float64{
			DimensionPrivacy:        privacy,
			DimensionCommunity:      community,
			DimensionSustainability: sustainability,
		},
	}
}

func TestComputeGapsEmptySelectionGapsEveryDimension(t *testing.T) {
	gaps, err := ComputeGaps(scoreResult(0, 0, 0), Weights{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gaps) != 3 {
		t.Fatalf("expected 3 gaps, got %d", len(gaps))
	}
	// Equal weights: urgency follows gap size, so targets order the output.
	if gaps[0].Dimension != DimensionPrivacy {
		t.Fatalf("expected privacy first (largest target), got %s", gaps[0].Dimension)
	}
	if gaps[2].Dimension != DimensionSustainability {
		t.Fatalf("expected sustainability last, got %s", gaps[2].Dimension)
	}
}

func TestComputeGapsExcludesMetTargets(t *testing.T) {
	gaps, err := ComputeGaps(scoreResult(85, 50, 70), Weights{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gaps) != 1 {
		t.Fatalf("expected 1 gap, got %d", len(gaps))
	}
	if gaps[0].Dimension != DimensionCommunity {
		t.Fatalf("expected community gap, got %s", gaps[0].Dimension)
	}
	if !almostEqual(gaps[0].Gap, 25) {
		t.Fatalf("expected gap 25, got %v", gaps[0].Gap)
	}
}

func TestComputeGapsAllTargetsMet(t *testing.T) {
	gaps, err := ComputeGaps(scoreResult(90, 80, 75), Weights{DimensionPrivacy: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gaps) != 0 {
		t.Fatalf("expected no gaps, got %d", len(gaps))
	}
}

func TestComputeGapsWeightReordersUrgency(t *testing.T) {
	// Sustainability has the smallest raw gap but an overwhelming weight.
	weights := Weights{
		DimensionPrivacy:        1,
		DimensionCommunity:      1,
		DimensionSustainability: 20,
	}
	gaps, err := ComputeGaps(scoreResult(40, 40, 60), weights)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gaps) != 3 {
		t.Fatalf("expected 3 gaps, got %d", len(gaps))
	}
	if gaps[0].Dimension != DimensionSustainability {
		t.Fatalf("expected sustainability first by weighted urgency, got %s", gaps[0].Dimension)
	}
	for i := 1; i < len(gaps); i++ {
		if gaps[i].Urgency > gaps[i-1].Urgency {
			t.Fatalf("gaps not sorted by urgency at index %d", i)
		}
	}
}

func TestComputeGapsTieBreakDeclarationOrder(t *testing.T) {
	// Scores chosen so privacy and community have identical weighted urgency.
	weights := Weights{
		DimensionPrivacy:        1,
		DimensionCommunity:      1,
		DimensionSustainability: 1,
	}
	gaps, err := ComputeGaps(scoreResult(60, 55, 75), weights)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gaps) != 2 {
		t.Fatalf("expected 2 gaps, got %d", len(gaps))
	}
	if gaps[0].Dimension != DimensionPrivacy || gaps[1].Dimension != DimensionCommunity {
		t.Fatalf("expected declaration-order tie break, got %s then %s", gaps[0].Dimension, gaps[1].Dimension)
	}
}

func TestComputeGapsNegativeWeight(t *testing.T) {
	_, err := ComputeGaps(scoreResult(0, 0, 0), Weights{DimensionCommunity: -2})
	if !errors.Is(err, ErrInvalidWeight) {
		t.Fatalf("expected ErrInvalidWeight, got %v", err)
	}
}
