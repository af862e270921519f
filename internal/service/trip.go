// Package service contains the business logic for the travel agency API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"

	"github.com/mzielinski/travel-agency/internal/domain"
	"github.com/mzielinski/travel-agency/internal/repo"
)

// TripService implements business logic for the trip listing.
type TripService struct {
	trips repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(r repo.TripRepo) *TripService {
	return &TripService{trips: r}
}

// List returns one page of trip aggregates plus paging metadata.
// AllPages is the ceiling of total/pageSize, computed from the grand total,
// so pages past the end still report the correct page count with an empty
// trip list. PageSize must be positive; the HTTP layer guarantees this.
func (s *TripService) List(ctx context.Context, p domain.PaginationParams) (domain.TripPage, error) {
	total, err := s.trips.Count(ctx)
	if err != nil {
		return domain.TripPage{}, err
	}

	trips, err := s.trips.ListPage(ctx, p)
	if err != nil {
		return domain.TripPage{}, err
	}

	return domain.TripPage{
		PageNum:  p.Page,
		PageSize: p.PageSize,
		AllPages: (total + p.PageSize - 1) / p.PageSize,
		Trips:    trips,
	}, nil
}
