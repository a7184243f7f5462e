package service

import (
	"context"
	"errors"
	"fmt"

	"workbrew/internal/models"
	"workbrew/internal/repository"
)

// ErrNotFound is returned when the cafe to act on does not exist.
var ErrNotFound = errors.New("service: cafe not found")

// CafeService contains the listing, submission and removal logic for cafes
type CafeService struct {
	repo CafeRepository
}

// CafeRepository interface for dependency injection
type CafeRepository interface {
	ListWithLocations(ctx context.Context, filter models.CafeFilter) ([]models.Cafe, []string, error)
	Insert(ctx context.Context, cafe *models.Cafe) error
	DeleteByID(ctx context.Context, id int64) (*models.Cafe, error)
}

// NewCafeService creates a new cafe service
func NewCafeService(repo CafeRepository) *CafeService {
	return &CafeService{repo: repo}
}

// List returns the cafes matching filter together with the marker projection and every known location.
func (s *CafeService) List(ctx context.Context, filter models.CafeFilter) (*Listing, error) {
	cafes, locations, err := s.repo.ListWithLocations(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list cafes: %w", err)
	}

	return Present(cafes, locations, filter), nil
}

// Submit validates and stores a new listing. Invalid input comes back as ValidationErrors and nothing is stored.
func (s *CafeService) Submit(ctx context.Context, sub CafeSubmission) (*models.Cafe, error) {
	sub = sub.Trimmed()
	if errs := sub.Validate(); errs != nil {
		return nil, errs
	}

	cafe := sub.Cafe()
	if err := s.repo.Insert(ctx, cafe); err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return nil, ValidationErrors{"name": duplicateNameMessage}
		}
		return nil, fmt.Errorf("service: failed to insert cafe: %w", err)
	}

	return cafe, nil
}

// Delete removes the cafe with the given id and returns it.
func (s *CafeService) Delete(ctx context.Context, id int64) (*models.Cafe, error) {
	if id <= 0 {
		return nil, ErrNotFound
	}

	cafe, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("service: failed to delete cafe: %w", err)
	}

	return cafe, nil
}
