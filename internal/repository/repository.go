package repository

import (
	"context"

	"vehicles-api/internal/domain"
)

// Repository defines the contract for vehicle storage operations.
// All implementations must be thread-safe for concurrent access.
type Repository interface {
	// Create stores a copy of v under a newly assigned ID and returns it.
	// IDs increase monotonically and are never reused, even after deletes.
	Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error)

	// FindByID retrieves a vehicle by its ID.
	// Returns domain.ErrNotFound if the ID doesn't exist.
	FindByID(ctx context.Context, id int64) (*domain.Vehicle, error)

	// Update replaces the year, make and model of the vehicle with v.ID.
	// Returns domain.ErrNotFound if the ID doesn't exist.
	Update(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error)

	// Delete permanently removes the vehicle with the given ID.
	// Returns domain.ErrNotFound if the ID doesn't exist.
	Delete(ctx context.Context, id int64) error

	// List returns the vehicles kept by pred in ascending ID order.
	// A nil pred returns every vehicle.
	List(ctx context.Context, pred domain.Predicate) ([]*domain.Vehicle, error)
}
