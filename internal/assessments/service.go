package assessments

import (
	"context"
	"time"

	"github.com/google/uuid"

	"pia-backend/internal/assessment"
	"pia-backend/internal/assessment/catalog"
	"pia-backend/internal/assessment/recommendations"
)

// Service orchestrates assessment sessions over the pure engine. It owns no
// state of its own; all session state lives in the Repo and all reference
// data in the read-only Catalog.
type Service struct {
	Repo    Repo
	Catalog *catalog.Catalog
}

// Create validates the profile and selection, stores a new session, and
// returns its computed snapshot.
func (s *Service) Create(ctx context.Context, profile assessment.Profile, selection []string) (Snapshot, error) {
	if err := profile.Validate(); err != nil {
		return Snapshot{}, err
	}
	if _, err := s.resolve(selection); err != nil {
		return Snapshot{}, err
	}

	now := time.Now().UTC()
	a := Assessment{
		ID:        uuid.NewString(),
		Profile:   profile,
		Selection: normalizeSelection(selection),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, a); err != nil {
		return Snapshot{}, err
	}
	return s.snapshot(a)
}

// Get recomputes and returns the snapshot for an existing session.
func (s *Service) Get(ctx context.Context, id string) (Snapshot, error) {
	a, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Snapshot{}, err
	}
	return s.snapshot(a)
}

// UpdateProfile replaces the session's profile and returns the recomputed
// snapshot.
func (s *Service) UpdateProfile(ctx context.Context, id string, profile assessment.Profile) (Snapshot, error) {
	if err := profile.Validate(); err != nil {
		return Snapshot{}, err
	}
	a, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Snapshot{}, err
	}
	a.Profile = profile
	a.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, a); err != nil {
		return Snapshot{}, err
	}
	return s.snapshot(a)
}

// UpdateSelection replaces the session's tool selection and returns the
// recomputed snapshot. Unknown tool names are rejected before anything is
// stored.
func (s *Service) UpdateSelection(ctx context.Context, id string, selection []string) (Snapshot, error) {
	if _, err := s.resolve(selection); err != nil {
		return Snapshot{}, err
	}
	a, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Snapshot{}, err
	}
	a.Selection = normalizeSelection(selection)
	a.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, a); err != nil {
		return Snapshot{}, err
	}
	return s.snapshot(a)
}

// Delete ends a session.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// snapshot derives scores, gaps, and recommendations from stored state. The
// three engine calls are pure; nothing here is cached.
func (s *Service) snapshot(a Assessment) (Snapshot, error) {
	tools, err := s.resolve(a.Selection)
	if err != nil {
		return Snapshot{}, err
	}

	scores, err := assessment.ComputeScores(tools, a.Profile.Weights)
	if err != nil {
		return Snapshot{}, err
	}
	gaps, err := assessment.ComputeGaps(scores, a.Profile.Weights)
	if err != nil {
		return Snapshot{}, err
	}
	recs := recommendations.Generate(recommendations.Input{
		Gaps:      gaps,
		Profile:   a.Profile,
		Catalog:   s.Catalog.All(),
		Selection: tools,
	})

	targets := make(map[assessment.Dimension]float64, 3)
	for _, d := range assessment.Dimensions() {
		targets[d] = d.Target()
	}

	return Snapshot{
		ID:              a.ID,
		Profile:         a.Profile,
		Selection:       a.Selection,
		Scores:          scores,
		Targets:         targets,
		Gaps:            gaps,
		Recommendations: recs,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}, nil
}

func (s *Service) resolve(selection []string) ([]assessment.ToolRecord, error) {
	tools := make([]assessment.ToolRecord, 0, len(selection))
	for _, name := range selection {
		rec, err := s.Catalog.Lookup(name)
		if err != nil {
			return nil, err
		}
		tools = append(tools, rec)
	}
	return tools, nil
}

func normalizeSelection(selection []string) []string {
	out := make([]string, 0, len(selection))
	seen := make(map[string]bool, len(selection))
	for _, name := range selection {
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
