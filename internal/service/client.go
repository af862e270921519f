package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mzielinski/travel-agency/internal/domain"
	"github.com/mzielinski/travel-agency/internal/repo"
)

// ClientService implements business logic for Client operations.
type ClientService struct {
	clients repo.ClientRepo
}

// NewClientService constructs a ClientService backed by the provided ClientRepo.
func NewClientService(r repo.ClientRepo) *ClientService {
	return &ClientService{clients: r}
}

// Delete removes a client that is not enrolled in any trip.
// Returns domain.ErrNotFound when the client does not exist and
// domain.ErrInvalidState when it still has at least one enrollment.
//
// The existence check, the enrollment check, and the delete run as three
// separate statements without a transaction. An enrollment inserted between
// the check and the delete would be caught by the foreign key from
// client_trip, so the window cannot orphan an enrollment row.
func (s *ClientService) Delete(ctx context.Context, id int) error {
	if _, err := s.clients.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("service.ClientService.Delete: client %d %w", id, domain.ErrNotFound)
		}
		return err
	}

	n, err := s.clients.CountEnrollments(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("service.ClientService.Delete: %w: client is assigned to at least one trip", domain.ErrInvalidState)
	}

	return s.clients.Delete(ctx, id)
}
