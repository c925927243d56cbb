package repository

import (
	"context"
	"maps"
	"slices"
	"sync"

	"vehicles-api/internal/domain"
)

// MemoryRepository provides thread-safe in-memory storage.
type MemoryRepository struct {
	mu     sync.RWMutex
	data   map[int64]*domain.Vehicle
	lastID int64
}

// NewMemoryRepository creates a new in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		data: make(map[int64]*domain.Vehicle),
	}
}

// Create stores a copy of v under the next ID.
func (r *MemoryRepository) Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	stored := v.Clone()
	stored.ID = r.lastID
	r.data[stored.ID] = stored

	return stored.Clone(), nil
}

// FindByID retrieves a vehicle by its ID.
func (r *MemoryRepository) FindByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	v, exists := r.data[id]
	if !exists {
		return nil, domain.ErrNotFound
	}

	return v.Clone(), nil
}

// Update replaces the stored fields of the vehicle with v.ID.
func (r *MemoryRepository) Update(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[v.ID]; !exists {
		return nil, domain.ErrNotFound
	}

	r.data[v.ID] = v.Clone()
	return v.Clone(), nil
}

// Delete removes the vehicle with the given ID.
func (r *MemoryRepository) Delete(ctx context.Context, id int64) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[id]; !exists {
		return domain.ErrNotFound
	}

	delete(r.data, id)
	return nil
}

// List returns copies of the vehicles kept by pred, ordered by ID.
func (r *MemoryRepository) List(ctx context.Context, pred domain.Predicate) ([]*domain.Vehicle, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*domain.Vehicle, 0, len(r.data))
	for _, id := range slices.Sorted(maps.Keys(r.data)) {
		all = append(all, r.data[id].Clone())
	}

	return pred.Apply(all), nil
}
