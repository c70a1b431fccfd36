package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"osms-portal/internal/domain/entities"
	"osms-portal/internal/usecase/interfaces"
)

// RfqMemoryRepository is the in-process Rfq store used when the portal runs
// without DynamoDB (RFQ_STORE=memory) and by tests. A single mutex
// serializes every Update, which trivially satisfies the per-id
// serialization contract; List returns a detached snapshot.

type RfqMemoryRepository struct {
	mu      sync.RWMutex
	records map[string]entities.Rfq
	order   []string // insertion order, oldest first
}

var _ interfaces.IRfqRepository = (*RfqMemoryRepository)(nil)

func NewRfqMemoryRepository() *RfqMemoryRepository {
	return &RfqMemoryRepository{records: make(map[string]entities.Rfq)}
}

func (r *RfqMemoryRepository) Create(_ context.Context, rec entities.Rfq) (entities.Rfq, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.records[rec.ID]; exists {
		return entities.Rfq{}, errors.New("rfq id already exists")
	}
	r.records[rec.ID] = cloneRfq(rec)
	r.order = append(r.order, rec.ID)
	return rec, nil
}

func (r *RfqMemoryRepository) GetByID(_ context.Context, id string) (entities.Rfq, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[id]
	if !ok {
		return entities.Rfq{}, nil
	}
	return cloneRfq(rec), nil
}

func (r *RfqMemoryRepository) List(_ context.Context) ([]entities.Rfq, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Rfq, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		out = append(out, cloneRfq(r.records[r.order[i]]))
	}
	return out, nil
}

func (r *RfqMemoryRepository) Update(_ context.Context, id string, mutate func(rec *entities.Rfq) error) (entities.Rfq, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.records[id]
	if !ok {
		return entities.Rfq{}, nil
	}

	next := cloneRfq(current)
	if err := mutate(&next); err != nil {
		return entities.Rfq{}, err
	}
	next.Version = current.Version + 1
	next.UpdatedAt = time.Now().UTC()
	r.records[id] = cloneRfq(next)
	return next, nil
}

func cloneRfq(rec entities.Rfq) entities.Rfq {
	out := rec
	if rec.VendorUnitPrice != nil {
		v := *rec.VendorUnitPrice
		out.VendorUnitPrice = &v
	}
	if rec.CustomerUnitPrice != nil {
		v := *rec.CustomerUnitPrice
		out.CustomerUnitPrice = &v
	}
	return out
}
