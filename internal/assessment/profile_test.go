package assessment

import (
	"errors"
	"testing"
)

func validProfile() Profile {
	return Profile{
		OrgName:            "Test Org",
		OrgType:            OrgCommunityMedia,
		Region:             "East Africa",
		Connectivity:       LevelMedium,
		Literacy:           LevelMedium,
		RegulatoryPressure: LevelLow,
		Weights:            Weights{DimensionPrivacy: 35, DimensionCommunity: 35, DimensionSustainability: 30},
	}
}

func TestParseOrgType(t *testing.T) {
	cases := []struct {
		raw     string
		want    OrgType
		wantErr bool
	}{
		{"community_media", OrgCommunityMedia, false},
		{"Digital_Newsroom", OrgDigitalNewsroom, false},
		{" citizen_forum ", OrgCitizenForum, false},
		{"other", OrgOther, false},
		{"ngo", "", true},
		{"", "", true},
	}

	for _, tc := range cases {
		got, err := ParseOrgType(tc.raw)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidProfileField) {
				t.Fatalf("%q: expected ErrInvalidProfileField, got %v", tc.raw, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("%q: expected %s, got %s", tc.raw, tc.want, got)
		}
	}
}

func TestParseLevelRejectsOutOfRange(t *testing.T) {
	if _, err := ParseLevel("connectivity", "severe"); !errors.Is(err, ErrInvalidProfileField) {
		t.Fatalf("expected ErrInvalidProfileField, got %v", err)
	}
	got, err := ParseLevel("literacy", "HIGH")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != LevelHigh {
		t.Fatalf("expected high, got %s", got)
	}
}

func TestLevelAtLeast(t *testing.T) {
	if !LevelHigh.AtLeast(LevelLow) {
		t.Fatalf("high should satisfy low")
	}
	if LevelLow.AtLeast(LevelMedium) {
		t.Fatalf("low should not satisfy medium")
	}
	if Level("").AtLeast(LevelLow) {
		t.Fatalf("zero level should not satisfy low")
	}
}

func TestProfileValidate(t *testing.T) {
	p := validProfile()
	if err := p.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p = validProfile()
	p.Connectivity = "offline"
	if err := p.Validate(); !errors.Is(err, ErrInvalidProfileField) {
		t.Fatalf("expected ErrInvalidProfileField, got %v", err)
	}

	p = validProfile()
	p.Weights[DimensionPrivacy] = -5
	if err := p.Validate(); !errors.Is(err, ErrInvalidWeight) {
		t.Fatalf("expected ErrInvalidWeight, got %v", err)
	}

	p = validProfile()
	p.Weights[Dimension("reach")] = 1
	if err := p.Validate(); !errors.Is(err, ErrInvalidProfileField) {
		t.Fatalf("expected ErrInvalidProfileField for unknown dimension, got %v", err)
	}
}

func TestWeightsNormalized(t *testing.T) {
	norm := Weights{DimensionPrivacy: 2, DimensionCommunity: 1, DimensionSustainability: 1}.Normalized()
	if !almostEqual(norm[DimensionPrivacy], 0.5) {
		t.Fatalf("expected privacy 0.5, got %v", norm[DimensionPrivacy])
	}
	if !almostEqual(norm[DimensionCommunity], 0.25) || !almostEqual(norm[DimensionSustainability], 0.25) {
		t.Fatalf("expected 0.25 for community and sustainability")
	}

	equal := Weights{}.Normalized()
	for _, d := range Dimensions() {
		if !almostEqual(equal[d], 1.0/3.0) {
			t.Fatalf("expected equal fallback for %s, got %v", d, equal[d])
		}
	}
}
