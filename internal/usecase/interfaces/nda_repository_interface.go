package interfaces

import (
	"context"

	"osms-portal/internal/domain/entities"
)

// INdaRepository abstracts persistence for NDA acceptance records.
//
// Acceptances are append-only; there is no update or delete.

type INdaRepository interface {
	Create(ctx context.Context, n entities.Nda) (entities.Nda, error)
	ListByEmail(ctx context.Context, email string) ([]entities.Nda, error)
}
