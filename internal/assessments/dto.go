package assessments

import "pia-backend/internal/assessment"

// profileRequest carries profile fields on the wire. Enumerated values are
// parsed at this boundary; nothing out of range reaches the engine.
type profileRequest struct {
	OrgName            string             `json:"orgName"`
	OrgType            string             `json:"orgType"`
	Region             string             `json:"region"`
	Connectivity       string             `json:"connectivity"`
	Literacy           string             `json:"literacy"`
	RegulatoryPressure string             `json:"regulatoryPressure"`
	Weights            map[string]float64 `json:"weights"`
}

type createRequest struct {
	profileRequest
	Tools []string `json:"tools"`
}

type selectionRequest struct {
	Tools []string `json:"tools"`
}

func (r profileRequest) toProfile() (assessment.Profile, error) {
	orgType, err := assessment.ParseOrgType(r.OrgType)
	if err != nil {
		return assessment.Profile{}, err
	}
	connectivity, err := assessment.ParseLevel("connectivity", r.Connectivity)
	if err != nil {
		return assessment.Profile{}, err
	}
	literacy, err := assessment.ParseLevel("literacy", r.Literacy)
	if err != nil {
		return assessment.Profile{}, err
	}
	pressure, err := assessment.ParseLevel("regulatoryPressure", r.RegulatoryPressure)
	if err != nil {
		return assessment.Profile{}, err
	}

	weights := make(assessment.Weights, len(r.Weights))
	for raw, value := range r.Weights {
		d, err := assessment.ParseDimension(raw)
		if err != nil {
			return assessment.Profile{}, err
		}
		weights[d] = value
	}
	if err := weights.Validate(); err != nil {
		return assessment.Profile{}, err
	}

	return assessment.Profile{
		OrgName:            r.OrgName,
		OrgType:            orgType,
		Region:             r.Region,
		Connectivity:       connectivity,
		Literacy:           literacy,
		RegulatoryPressure: pressure,
		Weights:            weights,
	}, nil
}
