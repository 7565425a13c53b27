package assessments

import (
	"context"
	"sync"
)

// MemoryRepo stores assessments in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]Assessment
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Assessment)}
}

// Create stores the assessment.
func (r *MemoryRepo) Create(ctx context.Context, a Assessment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[a.ID] = a
	return nil
}

// GetByID returns an assessment by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Assessment, error) {
	if err := ctx.Err(); err != nil {
		return Assessment{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.byID[id]
	if !ok {
		return Assessment{}, ErrNotFound
	}
	return a, nil
}

// Update replaces an existing assessment.
func (r *MemoryRepo) Update(ctx context.Context, a Assessment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[a.ID]; !ok {
		return ErrNotFound
	}
	r.byID[a.ID] = a
	return nil
}

// Delete removes an assessment.
func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
