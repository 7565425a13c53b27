package assessments

import "context"

// Repo stores assessment sessions. The only implementation is in-memory:
// sessions are discarded when the process ends, there is no persistence
// layer. The interface keeps the service testable and leaves room for a
// durable store if the system ever grows one.
type Repo interface {
	Create(ctx context.Context, a Assessment) error
	GetByID(ctx context.Context, id string) (Assessment, error)
	Update(ctx context.Context, a Assessment) error
	Delete(ctx context.Context, id string) error
}
