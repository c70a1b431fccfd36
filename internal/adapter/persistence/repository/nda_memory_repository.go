package repository

import (
	"context"
	"strings"
	"sync"

	"osms-portal/internal/domain/entities"
	"osms-portal/internal/usecase/interfaces"
)

// NdaMemoryRepository is the in-process NDA store for local mode and tests.

type NdaMemoryRepository struct {
	mu      sync.RWMutex
	records []entities.Nda
}

var _ interfaces.INdaRepository = (*NdaMemoryRepository)(nil)

func NewNdaMemoryRepository() *NdaMemoryRepository {
	return &NdaMemoryRepository{}
}

func (r *NdaMemoryRepository) Create(_ context.Context, n entities.Nda) (entities.Nda, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, n)
	return n, nil
}

func (r *NdaMemoryRepository) ListByEmail(_ context.Context, email string) ([]entities.Nda, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Nda, 0)
	for _, n := range r.records {
		if strings.EqualFold(n.Email, email) {
			out = append(out, n)
		}
	}
	return out, nil
}
