package interfaces

import (
	"context"

	"osms-portal/internal/domain/entities"
)

// IRfqRepository abstracts durable persistence for Rfq records.
//
// Conventions shared by all implementations:
//   - GetByID returns a zero-value Rfq (empty ID) when the id is unknown.
//   - List returns a newest-first snapshot; concurrent inserts do not
//     mutate an already returned slice.
//   - Update loads the current record, applies mutate, and persists the
//     result atomically with respect to other Update calls on the same id.
//     An error returned by mutate aborts the update with nothing written.
//     A zero-value result with nil error means the id is unknown.

type IRfqRepository interface {
	Create(ctx context.Context, r entities.Rfq) (entities.Rfq, error)
	GetByID(ctx context.Context, id string) (entities.Rfq, error)
	List(ctx context.Context) ([]entities.Rfq, error)
	Update(ctx context.Context, id string, mutate func(r *entities.Rfq) error) (entities.Rfq, error)
}
