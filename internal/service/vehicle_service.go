package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"vehicles-api/internal/domain"
	"vehicles-api/internal/repository"
)

var tracer = otel.Tracer("vehicles-api/internal/service")

// VehicleService handles vehicle business logic.
type VehicleService struct {
	repo   repository.Repository
	logger *slog.Logger
}

// NewVehicleService creates a new VehicleService backed by repo.
// A nil logger falls back to slog.Default().
func NewVehicleService(repo repository.Repository, logger *slog.Logger) *VehicleService {
	if logger == nil {
		logger = slog.Default()
	}
	return &VehicleService{
		repo:   repo,
		logger: logger,
	}
}

// Create validates v and stores it under a new ID.
// Any ID already set on v is ignored.
// Returns a *domain.ValidationError when v breaks the vehicle rules.
func (s *VehicleService) Create(ctx context.Context, v *domain.Vehicle) (_ *domain.Vehicle, err error) {
	ctx, span := tracer.Start(ctx, "VehicleService.Create")
	defer func() { endSpan(span, err) }()

	if err := domain.Validate(v); err != nil {
		return nil, err
	}

	candidate := v.Clone()
	candidate.ID = 0

	created, err := s.repo.Create(ctx, candidate)
	if err != nil {
		return nil, fmt.Errorf("saving vehicle: %w", err)
	}

	span.SetAttributes(attribute.Int64("vehicle.id", created.ID))
	s.logger.DebugContext(ctx, "vehicle created", "id", created.ID)
	return created, nil
}

// Get returns the vehicle with the given ID.
// Returns domain.ErrNotFound if it doesn't exist.
func (s *VehicleService) Get(ctx context.Context, id int64) (_ *domain.Vehicle, err error) {
	ctx, span := tracer.Start(ctx, "VehicleService.Get")
	span.SetAttributes(attribute.Int64("vehicle.id", id))
	defer func() { endSpan(span, err) }()

	return s.repo.FindByID(ctx, id)
}

// Update validates v and replaces the stored vehicle with the given ID.
// Validation runs before the existence check.
func (s *VehicleService) Update(ctx context.Context, id int64, v *domain.Vehicle) (_ *domain.Vehicle, err error) {
	ctx, span := tracer.Start(ctx, "VehicleService.Update")
	span.SetAttributes(attribute.Int64("vehicle.id", id))
	defer func() { endSpan(span, err) }()

	if err := domain.Validate(v); err != nil {
		return nil, err
	}

	candidate := v.Clone()
	candidate.ID = id

	updated, err := s.repo.Update(ctx, candidate)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("updating vehicle: %w", err)
	}

	s.logger.DebugContext(ctx, "vehicle updated", "id", id)
	return updated, nil
}

// Delete permanently removes the vehicle with the given ID.
func (s *VehicleService) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := tracer.Start(ctx, "VehicleService.Delete")
	span.SetAttributes(attribute.Int64("vehicle.id", id))
	defer func() { endSpan(span, err) }()

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.DebugContext(ctx, "vehicle deleted", "id", id)
	return nil
}

// List returns the vehicles matching every active criterion in f.
// Empty filters return every vehicle.
// Returns a *domain.MalformedInputError when a year criterion is out of range.
func (s *VehicleService) List(ctx context.Context, f domain.Filters) (_ []*domain.Vehicle, err error) {
	ctx, span := tracer.Start(ctx, "VehicleService.List")
	defer func() { endSpan(span, err) }()

	if err := f.Validate(); err != nil {
		return nil, err
	}

	vehicles, err := s.repo.List(ctx, f.Predicate())
	if err != nil {
		return nil, fmt.Errorf("listing vehicles: %w", err)
	}

	span.SetAttributes(
		attribute.Bool("filters.empty", f.IsEmpty()),
		attribute.Int("vehicles.count", len(vehicles)),
	)
	return vehicles, nil
}

// endSpan records unexpected errors on span before ending it.
// Domain errors are client mistakes and leave the span status unset.
func endSpan(span trace.Span, err error) {
	if err != nil && !isDomainError(err) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func isDomainError(err error) bool {
	return errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrMalformedInput)
}
