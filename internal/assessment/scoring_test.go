package assessment

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func testTool(name string, privacy, community, sustainability float64) ToolRecord {
	return ToolRecord{
		Name: name,
		Scores: map[Dimension]float64{
			DimensionPrivacy:        privacy,
			DimensionCommunity:      community,
			DimensionSustainability: sustainability,
		},
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeScoresWorkedExample(t *testing.T) {
	selection := []ToolRecord{testTool("ToolA", 40, 50, 60)}
	weights := Weights{
		DimensionPrivacy:        2,
		DimensionCommunity:      1,
		DimensionSustainability: 1,
	}

	result, err := ComputeScores(selection, weights)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !almostEqual(result.ByDimension[DimensionPrivacy], 40) {
		t.Fatalf("expected privacy 40, got %v", result.ByDimension[DimensionPrivacy])
	}
	if !almostEqual(result.ByDimension[DimensionCommunity], 50) {
		t.Fatalf("expected community 50, got %v", result.ByDimension[DimensionCommunity])
	}
	if !almostEqual(result.ByDimension[DimensionSustainability], 60) {
		t.Fatalf("expected sustainability 60, got %v", result.ByDimension[DimensionSustainability])
	}
	if !almostEqual(result.Overall, 47.5) {
		t.Fatalf("expected overall 47.5, got %v", result.Overall)
	}
}

func TestComputeScoresAveragesAcrossTools(t *testing.T) {
	selection := []ToolRecord{
		testTool("A", 20, 40, 60),
		testTool("B", 80, 60, 20),
	}

	result, err := ComputeScores(selection, Weights{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(result.ByDimension[DimensionPrivacy], 50) {
		t.Fatalf("expected privacy 50, got %v", result.ByDimension[DimensionPrivacy])
	}
	if !almostEqual(result.ByDimension[DimensionCommunity], 50) {
		t.Fatalf("expected community 50, got %v", result.ByDimension[DimensionCommunity])
	}
	if !almostEqual(result.ByDimension[DimensionSustainability], 40) {
		t.Fatalf("expected sustainability 40, got %v", result.ByDimension[DimensionSustainability])
	}
}

func TestComputeScoresEmptySelection(t *testing.T) {
	result, err := ComputeScores(nil, Weights{DimensionPrivacy: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, d := range Dimensions() {
		if result.ByDimension[d] != 0 {
			t.Fatalf("expected %s score 0 for empty selection, got %v", d, result.ByDimension[d])
		}
	}
	if result.Overall != 0 {
		t.Fatalf("expected overall 0, got %v", result.Overall)
	}
}

func TestComputeScoresZeroWeightsFallBackToEqual(t *testing.T) {
	selection := []ToolRecord{testTool("A", 30, 60, 90)}

	result, err := ComputeScores(selection, Weights{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(result.Overall, 60) {
		t.Fatalf("expected overall 60 with equal weighting, got %v", result.Overall)
	}
}

func TestComputeScoresNegativeWeight(t *testing.T) {
	_, err := ComputeScores(nil, Weights{DimensionPrivacy: -1})
	if !errors.Is(err, ErrInvalidWeight) {
		t.Fatalf("expected ErrInvalidWeight, got %v", err)
	}
}

func TestComputeScoresDeterministic(t *testing.T) {
	selection := []ToolRecord{
		testTool("A", 33, 44, 55),
		testTool("B", 66, 77, 88),
	}
	weights := Weights{DimensionPrivacy: 3, DimensionCommunity: 2, DimensionSustainability: 5}

	first, err := ComputeScores(selection, weights)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ComputeScores(selection, weights)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected deterministic score results")
	}
}

func TestDimensionAverageEmptySelection(t *testing.T) {
	if got := DimensionAverage(nil, DimensionPrivacy); got != 0 {
		t.Fatalf("expected 0 for empty selection, got %v", got)
	}
}
