package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/opensocial/social-data-service/internal/domain"
	"github.com/opensocial/social-data-service/internal/storage"
)

const defaultLocationSort = "city"

// LocationService is the entity resolver for locations. Locations carry no
// required fields; an empty create input is a valid location.
type LocationService struct {
	locations storage.Store[domain.Location]
	logger    zerolog.Logger
}

// NewLocationService creates a location service over the given store.
func NewLocationService(locations storage.Store[domain.Location], logger zerolog.Logger) *LocationService {
	return &LocationService{
		locations: locations,
		logger:    logger.With().Str("component", "location-service").Logger(),
	}
}

// List returns one page of locations in the standard envelope.
func (s *LocationService) List(ctx context.Context, p PageParams) (*domain.Page[*domain.Location], error) {
	req, page := Normalize(p, defaultLocationSort)
	locations, total, err := s.locations.FindAll(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return domain.NewPage(locations, total, page, req.Size), nil
}

// Get retrieves a single location by id.
func (s *LocationService) Get(ctx context.Context, id string) (*domain.Location, error) {
	return s.locations.FindByID(ctx, id)
}

// Create persists a new location.
func (s *LocationService) Create(ctx context.Context, in domain.LocationCreate) (*domain.Location, error) {
	loc := &domain.Location{
		Street:   in.Street,
		City:     in.City,
		State:    in.State,
		Country:  in.Country,
		Timezone: in.Timezone,
	}

	saved, err := s.locations.Save(ctx, loc)
	if err != nil {
		return nil, fmt.Errorf("create location: %w", err)
	}

	s.logger.Debug().Str("location_id", saved.ID).Msg("location created")
	return saved, nil
}

// Update applies a merge patch to an existing location.
func (s *LocationService) Update(ctx context.Context, id string, patch domain.LocationPatch) (*domain.Location, error) {
	loc, err := s.locations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Street != nil {
		loc.Street = *patch.Street
	}
	if patch.City != nil {
		loc.City = *patch.City
	}
	if patch.State != nil {
		loc.State = *patch.State
	}
	if patch.Country != nil {
		loc.Country = *patch.Country
	}
	if patch.Timezone != nil {
		loc.Timezone = *patch.Timezone
	}

	saved, err := s.locations.Save(ctx, loc)
	if err != nil {
		return nil, fmt.Errorf("update location %s: %w", id, err)
	}
	return saved, nil
}

// Delete removes a location by id. Deleting an absent id is not an error.
func (s *LocationService) Delete(ctx context.Context, id string) error {
	if err := s.locations.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete location %s: %w", id, err)
	}
	return nil
}
